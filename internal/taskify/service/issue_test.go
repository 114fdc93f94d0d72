package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/stretchr/testify/require"
)

func TestIssueTicketNumbers(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	admin := e.user(t, "admin@example.com")
	w := e.workspace(t, admin, "acme")
	p := e.project(t, admin, w)
	other := e.project(t, admin, w)

	t.Run("sequential per project", func(t *testing.T) {
		a := e.issue(t, admin, p, "first")
		b := e.issue(t, admin, p, "second")
		c := e.issue(t, admin, other, "elsewhere")

		require.Equal(t, int64(1), a.TicketNumber)
		require.Equal(t, int64(2), b.TicketNumber)
		require.Equal(t, int64(1), c.TicketNumber)
		require.Equal(t, float64(2), b.ListPosition)
		require.Equal(t, domain.IssueTodo, a.Status)
		require.Equal(t, admin.UserID, a.ReporterID)
	})

	t.Run("concurrent creates get distinct consecutive numbers", func(t *testing.T) {
		fresh := e.project(t, admin, w)

		const n = 10
		numbers := make(chan int64, n)
		errs := make(chan error, n)
		var wg sync.WaitGroup
		for k := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				i, err := e.issues.CreateIssue(ctx, admin, fresh.ID, NewIssue{Title: fmt.Sprintf("issue %d", k)})
				errs <- err
				numbers <- i.TicketNumber
			}()
		}
		wg.Wait()
		close(errs)
		close(numbers)

		for err := range errs {
			require.NoError(t, err)
		}
		var got []int64
		for num := range numbers {
			got = append(got, num)
		}
		slices.Sort(got)

		want := make([]int64, n)
		for k := range want {
			want[k] = int64(k + 1)
		}
		require.Equal(t, want, got)
	})
}

func TestIssuePermissions(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	admin := e.user(t, "admin@example.com")
	alice := e.user(t, "alice@example.com")
	bob := e.user(t, "bob@example.com")
	guest := e.user(t, "guest@example.com")
	w := e.workspace(t, admin, "acme")
	e.join(t, admin, w, alice, domain.RoleMember)
	e.join(t, admin, w, bob, domain.RoleMember)
	e.join(t, admin, w, guest, domain.RoleGuest)
	p := e.project(t, admin, w)

	t.Run("guest cannot create", func(t *testing.T) {
		_, err := e.issues.CreateIssue(ctx, guest, p.ID, NewIssue{Title: "x"})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("member edits issues they did not report", func(t *testing.T) {
		i := e.issue(t, alice, p, "alice's")
		got, err := e.issues.UpdateIssue(ctx, bob, i.ID, IssuePatch{Status: ptr(domain.IssueInProgress)})
		require.NoError(t, err)
		require.Equal(t, domain.IssueInProgress, got.Status)
		require.Equal(t, alice.UserID, got.ReporterID)
	})

	t.Run("non-reporter member cannot delete", func(t *testing.T) {
		i := e.issue(t, alice, p, "keep me")
		err := e.issues.DeleteIssue(ctx, bob, i.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("reporter deletes own issue", func(t *testing.T) {
		i := e.issue(t, alice, p, "mine")
		require.NoError(t, e.issues.DeleteIssue(ctx, alice, i.ID))

		_, err := e.issues.GetIssue(ctx, alice, i.ID)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("admin deletes any issue", func(t *testing.T) {
		i := e.issue(t, alice, p, "admin removes")
		require.NoError(t, e.issues.DeleteIssue(ctx, admin, i.ID))
	})

	t.Run("demoted reporter keeps the override", func(t *testing.T) {
		i := e.issue(t, bob, p, "bob's")
		_, err := e.members.UpdateRole(ctx, admin, w.ID, bob.UserID, domain.RoleGuest)
		require.NoError(t, err)

		_, err = e.issues.UpdateIssue(ctx, bob, i.ID, IssuePatch{Title: ptr("still mine")})
		require.NoError(t, err)

		// guest without ownership gets nothing
		_, err = e.issues.UpdateIssue(ctx, guest, i.ID, IssuePatch{Title: ptr("not mine")})
		require.ErrorIs(t, err, ErrForbidden)

		require.NoError(t, e.issues.DeleteIssue(ctx, bob, i.ID))
	})
}

func TestIssueReferences(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	admin := e.user(t, "admin@example.com")
	pending := e.user(t, "pending@example.com")
	member := e.user(t, "member@example.com")
	w := e.workspace(t, admin, "acme")
	e.join(t, admin, w, member, domain.RoleMember)
	_, err := e.members.Invite(ctx, admin, w.ID, InviteTarget{UserID: pending.UserID}, domain.RoleMember)
	require.NoError(t, err)

	p := e.project(t, admin, w)
	other := e.project(t, admin, w)
	foreign, err := e.sprints.CreateSprint(ctx, admin, other.ID, "other", nil, nil)
	require.NoError(t, err)
	sp, err := e.sprints.CreateSprint(ctx, admin, p.ID, "mine", nil, nil)
	require.NoError(t, err)

	t.Run("sprint from another project", func(t *testing.T) {
		_, err := e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{Title: "x", SprintID: &foreign.ID})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("assignee must have accepted", func(t *testing.T) {
		_, err := e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{Title: "x", AssigneeID: &pending.UserID})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("explicit null clears sprint and assignee", func(t *testing.T) {
		i, err := e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{
			Title:      "planned",
			SprintID:   &sp.ID,
			AssigneeID: &member.UserID,
		})
		require.NoError(t, err)

		got, err := e.issues.UpdateIssue(ctx, admin, i.ID, IssuePatch{
			SprintID:   Nullable[string]{Set: true},
			AssigneeID: Nullable[string]{Set: true},
		})
		require.NoError(t, err)
		require.Nil(t, got.SprintID)
		require.Nil(t, got.AssigneeID)

		stored, err := e.issues.GetIssue(ctx, admin, i.ID)
		require.NoError(t, err)
		require.Nil(t, stored.SprintID)
		require.Nil(t, stored.AssigneeID)
	})

	t.Run("description is sanitised", func(t *testing.T) {
		i, err := e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{
			Title:       "xss",
			Description: `<p>hello</p><script>alert(1)</script>`,
		})
		require.NoError(t, err)
		require.Equal(t, "<p>hello</p>", i.Description)
	})

	t.Run("description keeps plain text", func(t *testing.T) {
		i, err := e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{Title: "cmp", Description: "x < y"})
		require.NoError(t, err)
		require.Equal(t, "x < y", i.Description)

		updated, err := e.issues.UpdateIssue(ctx, admin, i.ID, IssuePatch{Description: ptr(`"a" & 'b'`)})
		require.NoError(t, err)
		require.Equal(t, `"a" & 'b'`, updated.Description)

		stored, err := e.issues.GetIssue(ctx, admin, i.ID)
		require.NoError(t, err)
		require.Equal(t, `"a" & 'b'`, stored.Description)
	})

	t.Run("invalid enums", func(t *testing.T) {
		_, err := e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{Title: "x", Type: "EPIC"})
		require.ErrorIs(t, err, ErrInvalidRequest)
		_, err = e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{Title: "x", Priority: "URGENT"})
		require.ErrorIs(t, err, ErrInvalidRequest)
		_, err = e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{Title: "  "})
		require.ErrorIs(t, err, ErrInvalidRequest)
	})
}

func TestListIssues(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	admin := e.user(t, "admin@example.com")
	member := e.user(t, "member@example.com")
	w := e.workspace(t, admin, "acme")
	e.join(t, admin, w, member, domain.RoleMember)
	p := e.project(t, admin, w)

	sp, err := e.sprints.CreateSprint(ctx, admin, p.ID, "current", nil, nil)
	require.NoError(t, err)
	_, err = e.sprints.UpdateSprint(ctx, admin, sp.ID, ptr(domain.SprintActive), nil)
	require.NoError(t, err)

	inSprint, err := e.issues.CreateIssue(ctx, admin, p.ID, NewIssue{Title: "sprint", SprintID: &sp.ID, AssigneeID: &member.UserID})
	require.NoError(t, err)
	backlog := e.issue(t, admin, p, "backlog")
	done := e.issue(t, admin, p, "done")
	_, err = e.issues.UpdateIssue(ctx, admin, done.ID, IssuePatch{Status: ptr(domain.IssueDone)})
	require.NoError(t, err)

	ids := func(list []domain.Issue) []string {
		out := make([]string, 0, len(list))
		for _, i := range list {
			out = append(out, i.ID)
		}
		return out
	}

	all, err := e.issues.ListIssues(ctx, member, p.ID, IssueQuery{})
	require.NoError(t, err)
	require.Equal(t, []string{inSprint.ID, backlog.ID, done.ID}, ids(all))

	active, err := e.issues.ListIssues(ctx, member, p.ID, IssueQuery{Sprint: "active"})
	require.NoError(t, err)
	require.Equal(t, []string{inSprint.ID}, ids(active))

	bl, err := e.issues.ListIssues(ctx, member, p.ID, IssueQuery{Sprint: "backlog"})
	require.NoError(t, err)
	require.Equal(t, []string{backlog.ID, done.ID}, ids(bl))

	mine, err := e.issues.ListIssues(ctx, member, p.ID, IssueQuery{Assignee: "me"})
	require.NoError(t, err)
	require.Equal(t, []string{inSprint.ID}, ids(mine))

	finished, err := e.issues.ListIssues(ctx, member, p.ID, IssueQuery{Status: "done"})
	require.NoError(t, err)
	require.Equal(t, []string{done.ID}, ids(finished))

	_, err = e.issues.ListIssues(ctx, member, p.ID, IssueQuery{Status: "blocked"})
	require.ErrorIs(t, err, ErrInvalidRequest)

	t.Run("reordering changes list order", func(t *testing.T) {
		_, err := e.issues.UpdateIssue(ctx, admin, done.ID, IssuePatch{ListPosition: ptr(0.5)})
		require.NoError(t, err)

		all, err := e.issues.ListIssues(ctx, member, p.ID, IssueQuery{})
		require.NoError(t, err)
		require.Equal(t, done.ID, all[0].ID)
	})

	t.Run("assigned open", func(t *testing.T) {
		open, err := e.issues.ListAssignedOpen(ctx, member)
		require.NoError(t, err)
		require.Len(t, open, 1)
		require.Equal(t, inSprint.ID, open[0].ID)
	})
}
