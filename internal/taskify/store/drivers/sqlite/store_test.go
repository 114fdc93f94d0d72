package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
	"github.com/aussiebroadwan/taskify/internal/taskify/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskify/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()
	now := time.Now().UTC()
	u := domain.User{ID: idx.NewString(), Email: email, Name: email, PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

func seedWorkspace(t *testing.T, s store.Store, owner domain.User, slug string) domain.Workspace {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	w := domain.Workspace{ID: idx.NewString(), Name: slug, URL: slug, OwnerID: owner.ID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Workspaces().CreateWorkspace(ctx, w))
	require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
		WorkspaceID: w.ID, UserID: owner.ID, Role: domain.RoleAdmin, Status: domain.InviteAccepted,
		CreatedAt: now, UpdatedAt: now,
	}))
	return w
}

func seedProject(t *testing.T, s store.Store, w domain.Workspace) domain.Project {
	t.Helper()
	now := time.Now().UTC()
	p := domain.Project{ID: idx.NewString(), WorkspaceID: w.ID, Name: "Web", Key: "WEB", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Projects().CreateProject(context.Background(), p))
	return p
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	u := seedUser(t, s, "Ada@Example.com")

	got, err := s.Users().GetUserByEmail(ctx, "ADA@example.COM")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.Equal(t, "ada@example.com", got.Email)

	err = s.Users().CreateUser(ctx, domain.User{ID: idx.NewString(), Email: "ada@example.com", Name: "dup", PasswordHash: "x"})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	require.NoError(t, s.Users().UpdateProfile(ctx, u.ID, "Ada L", "https://img/ada.png"))
	got, err = s.Users().GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, "Ada L", got.Name)
	require.Equal(t, "https://img/ada.png", got.AvatarURL)

	_, err = s.Users().GetUserByID(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)
	require.ErrorIs(t, s.Users().UpdatePasswordHash(ctx, "missing", "h"), store.ErrNotFound)
}

func TestMembershipUniqueness(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	owner := seedUser(t, s, "owner@example.com")
	guest := seedUser(t, s, "guest@example.com")
	w := seedWorkspace(t, s, owner, "acme")

	m := domain.Membership{
		WorkspaceID: w.ID, UserID: guest.ID, Role: domain.RoleGuest, Status: domain.InvitePending,
		InvitedBy: owner.ID, CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}
	require.NoError(t, s.Memberships().CreateMembership(ctx, m))
	require.ErrorIs(t, s.Memberships().CreateMembership(ctx, m), store.ErrAlreadyExists)

	t.Run("status transition is conditional", func(t *testing.T) {
		require.NoError(t, s.Memberships().UpdateMembershipStatus(ctx, w.ID, guest.ID, domain.InvitePending, domain.InviteAccepted))
		err := s.Memberships().UpdateMembershipStatus(ctx, w.ID, guest.ID, domain.InvitePending, domain.InviteAccepted)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Memberships().DeletePendingMembership(ctx, w.ID, guest.ID), store.ErrNotFound)
	})

	t.Run("members are joined with users", func(t *testing.T) {
		members, err := s.Memberships().ListMembers(ctx, w.ID)
		require.NoError(t, err)
		require.Len(t, members, 2)
		require.Equal(t, "owner@example.com", members[0].Email)
		require.Empty(t, members[0].InvitedBy)
		require.Equal(t, owner.ID, members[1].InvitedBy)
	})
}

func TestListMembershipsByUser(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	owner := seedUser(t, s, "owner@example.com")
	user := seedUser(t, s, "user@example.com")
	acme := seedWorkspace(t, s, owner, "acme")
	globex := seedWorkspace(t, s, owner, "globex")
	seedWorkspace(t, s, owner, "initech")

	now := time.Now().UTC()
	require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
		WorkspaceID: acme.ID, UserID: user.ID, Role: domain.RoleMember, Status: domain.InviteAccepted,
		InvitedBy: owner.ID, CreatedAt: now, UpdatedAt: now,
	}))
	require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
		WorkspaceID: globex.ID, UserID: user.ID, Role: domain.RoleGuest, Status: domain.InvitePending,
		InvitedBy: owner.ID, CreatedAt: now.Add(time.Second), UpdatedAt: now.Add(time.Second),
	}))

	got, err := s.Memberships().ListMembershipsByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, acme.ID, got[0].WorkspaceID)
	require.Equal(t, domain.InviteAccepted, got[0].Status)
	require.Equal(t, globex.ID, got[1].WorkspaceID)
	require.Equal(t, domain.InvitePending, got[1].Status)
	require.Equal(t, domain.RoleGuest, got[1].Role)

	owned, err := s.Memberships().ListMembershipsByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, owned, 3)

	none, err := s.Memberships().ListMembershipsByUser(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestConcurrentMembershipInsertsYieldOneRow(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	owner := seedUser(t, s, "owner@example.com")
	invitee := seedUser(t, s, "invitee@example.com")
	w := seedWorkspace(t, s, owner, "race")

	const n = 8
	var (
		wg   sync.WaitGroup
		errs = make(chan error, n)
	)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- s.Memberships().CreateMembership(ctx, domain.Membership{
				WorkspaceID: w.ID, UserID: invitee.ID, Role: domain.RoleMember, Status: domain.InvitePending,
				CreatedAt: time.Now(), UpdatedAt: time.Now(),
			})
		}()
	}
	wg.Wait()
	close(errs)

	var successes, duplicates int
	for err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, store.ErrAlreadyExists):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	require.Equal(t, 1, successes)
	require.Equal(t, n-1, duplicates)
}

func TestListWorkspacesForUser(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	owner := seedUser(t, s, "owner@example.com")
	other := seedUser(t, s, "other@example.com")
	w1 := seedWorkspace(t, s, owner, "one")
	seedWorkspace(t, s, other, "two")

	require.NoError(t, s.Memberships().CreateMembership(ctx, domain.Membership{
		WorkspaceID: w1.ID, UserID: other.ID, Role: domain.RoleMember, Status: domain.InvitePending,
		CreatedAt: time.Now(), UpdatedAt: time.Now(),
	}))

	views, err := s.Workspaces().ListWorkspacesForUser(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	require.Equal(t, domain.InvitePending, views[0].Status)
	require.Equal(t, domain.InviteAccepted, views[1].Status)

	pending, err := s.Memberships().ListPendingInvites(ctx, other.ID)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, "one", pending[0].WorkspaceName)

	require.ErrorIs(t, s.Workspaces().CreateWorkspace(ctx, domain.Workspace{ID: idx.NewString(), Name: "x", URL: "ONE", OwnerID: owner.ID}), store.ErrAlreadyExists)
}

func TestTicketCounter(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	owner := seedUser(t, s, "owner@example.com")
	p := seedProject(t, s, seedWorkspace(t, s, owner, "acme"))

	for want := int64(1); want <= 3; want++ {
		n, err := s.Projects().NextTicketNumber(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, want, n)
	}

	_, err := s.Projects().NextTicketNumber(ctx, "missing")
	require.ErrorIs(t, err, store.ErrNotFound)

	now := time.Now().UTC()
	issue := domain.Issue{
		ID: idx.NewString(), ProjectID: p.ID, WorkspaceID: p.WorkspaceID, TicketNumber: 1, Title: "a",
		Type: domain.IssueTask, Priority: domain.PriorityLow, Status: domain.IssueTodo, ReporterID: owner.ID,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, s.Issues().CreateIssue(ctx, issue))
	issue.ID = idx.NewString()
	require.ErrorIs(t, s.Issues().CreateIssue(ctx, issue), store.ErrAlreadyExists)
}

func TestIssueFiltersAndSprintDeletion(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	owner := seedUser(t, s, "owner@example.com")
	w := seedWorkspace(t, s, owner, "acme")
	p := seedProject(t, s, w)
	now := time.Now().UTC()

	active := domain.Sprint{ID: idx.NewString(), ProjectID: p.ID, Name: "S1", Status: domain.SprintActive, StartDate: &now, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Sprints().CreateSprint(ctx, active))

	mk := func(n int64, sprint *string, assignee *string, status domain.IssueStatus) domain.Issue {
		i := domain.Issue{
			ID: idx.NewString(), ProjectID: p.ID, WorkspaceID: w.ID, TicketNumber: n, Title: "t",
			Type: domain.IssueBug, Priority: domain.PriorityHigh, Status: status, SprintID: sprint,
			AssigneeID: assignee, ReporterID: owner.ID, ListPosition: float64(10 - n), CreatedAt: now, UpdatedAt: now,
		}
		require.NoError(t, s.Issues().CreateIssue(ctx, i))
		return i
	}
	inSprint := mk(1, &active.ID, &owner.ID, domain.IssueTodo)
	backlog := mk(2, nil, nil, domain.IssueTodo)
	mk(3, nil, &owner.ID, domain.IssueDone)

	all, err := s.Issues().ListIssues(ctx, p.ID, domain.IssueFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.EqualValues(t, 3, all[0].TicketNumber) // lowest list position first

	got, err := s.Issues().ListIssues(ctx, p.ID, domain.IssueFilter{ActiveSprint: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, inSprint.ID, got[0].ID)

	got, err = s.Issues().ListIssues(ctx, p.ID, domain.IssueFilter{Backlog: true, AssigneeID: owner.ID})
	require.NoError(t, err)
	require.Len(t, got, 1)

	open, err := s.Issues().ListAssignedOpen(ctx, owner.ID, w.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	require.Equal(t, "WEB", open[0].ProjectKey)
	require.Equal(t, "acme", open[0].WorkspaceName)

	none, err := s.Issues().ListAssignedOpen(ctx, owner.ID)
	require.NoError(t, err)
	require.Empty(t, none)

	// deleting the sprint moves its issues to the backlog
	require.NoError(t, s.Sprints().DeleteSprint(ctx, active.ID))
	moved, err := s.Issues().GetIssue(ctx, inSprint.ID)
	require.NoError(t, err)
	require.Nil(t, moved.SprintID)

	_, err = s.Issues().GetIssue(ctx, backlog.ID)
	require.NoError(t, err)
}

func TestWorkspaceDeleteCascades(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	owner := seedUser(t, s, "owner@example.com")
	w := seedWorkspace(t, s, owner, "acme")
	p := seedProject(t, s, w)
	now := time.Now().UTC()

	issue := domain.Issue{
		ID: idx.NewString(), ProjectID: p.ID, WorkspaceID: w.ID, TicketNumber: 1, Title: "t",
		Type: domain.IssueTask, Priority: domain.PriorityLow, Status: domain.IssueTodo, ReporterID: owner.ID,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, s.Issues().CreateIssue(ctx, issue))
	c := domain.Comment{ID: idx.NewString(), IssueID: issue.ID, UserID: owner.ID, Content: "hi", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, s.Comments().CreateComment(ctx, c))

	views, err := s.Comments().ListCommentsByIssue(ctx, issue.ID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, "owner@example.com", views[0].AuthorName)

	require.NoError(t, s.Workspaces().DeleteWorkspace(ctx, w.ID))
	require.ErrorIs(t, s.Workspaces().DeleteWorkspace(ctx, w.ID), store.ErrNotFound)

	_, err = s.Memberships().GetMembership(ctx, w.ID, owner.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Projects().GetProject(ctx, p.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Issues().GetIssue(ctx, issue.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.Comments().GetComment(ctx, c.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestPasswordResets(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	u := seedUser(t, s, "ada@example.com")
	now := time.Now().UTC()

	require.NoError(t, s.PasswordResets().CreatePasswordReset(ctx, domain.PasswordReset{TokenHash: "live", UserID: u.ID, ExpiresAt: now.Add(time.Hour), CreatedAt: now}))
	require.NoError(t, s.PasswordResets().CreatePasswordReset(ctx, domain.PasswordReset{TokenHash: "old", UserID: u.ID, ExpiresAt: now.Add(-time.Hour), CreatedAt: now}))

	n, err := s.PasswordResets().DeleteExpiredPasswordResets(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	pr, err := s.PasswordResets().GetPasswordReset(ctx, "live")
	require.NoError(t, err)
	require.Equal(t, u.ID, pr.UserID)

	require.NoError(t, s.PasswordResets().DeletePasswordReset(ctx, "live"))
	require.ErrorIs(t, s.PasswordResets().DeletePasswordReset(ctx, "live"), store.ErrNotFound)
}

func TestWithTxRollsBack(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)

	id := idx.NewString()
	err := s.WithTx(ctx, func(tx store.Tx) error {
		require.NoError(t, tx.Users().CreateUser(ctx, domain.User{ID: id, Email: "tx@example.com", Name: "tx", PasswordHash: "h"}))
		require.ErrorIs(t, tx.WithTx(ctx, func(store.Tx) error { return nil }), sql.ErrTxDone)
		return store.ErrAlreadyExists
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)

	_, err = s.Users().GetUserByID(ctx, id)
	require.ErrorIs(t, err, store.ErrNotFound)
}
