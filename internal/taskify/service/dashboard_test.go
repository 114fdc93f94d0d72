package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/stretchr/testify/require"
)

func TestDashboardOnlyShowsAcceptedWorkspaces(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	alice := e.user(t, "alice@example.com")
	bob := e.user(t, "bob@example.com")

	mine := e.workspace(t, bob, "bobs")
	joined := e.workspace(t, alice, "joined")
	invited := e.workspace(t, alice, "invited")
	private := e.workspace(t, alice, "private")

	e.join(t, alice, joined, bob, domain.RoleMember)
	_, err := e.members.Invite(ctx, alice, invited.ID, InviteTarget{UserID: bob.UserID}, domain.RoleMember)
	require.NoError(t, err)

	for _, w := range []domain.Workspace{mine, joined, invited, private} {
		owner := alice
		if w.ID == mine.ID {
			owner = bob
		}
		p := e.project(t, owner, w)
		i := e.issue(t, owner, p, "in "+w.URL)
		_, err := e.comments.CreateComment(ctx, owner, i.ID, "note in "+w.URL)
		require.NoError(t, err)
		_, err = e.sprints.CreateSprint(ctx, owner, p.ID, "sprint in "+w.URL, nil, nil)
		require.NoError(t, err)
	}

	d, err := e.dashboard.Dashboard(ctx, bob)
	require.NoError(t, err)

	visible := map[string]bool{mine.ID: true, joined.ID: true}

	require.Len(t, d.Workspaces, 2)
	for _, w := range d.Workspaces {
		require.True(t, visible[w.ID], w.URL)
	}
	require.Len(t, d.Projects, 2)
	for _, p := range d.Projects {
		require.True(t, visible[p.WorkspaceID])
	}
	require.Len(t, d.Issues, 2)
	for _, i := range d.Issues {
		require.True(t, visible[i.WorkspaceID])
	}
	require.Len(t, d.Comments, 2)
	for _, c := range d.Comments {
		require.True(t, visible[c.WorkspaceID])
	}
	require.Len(t, d.Sprints, 2)

	require.Len(t, d.PendingInvites, 1)
	require.Equal(t, invited.ID, d.PendingInvites[0].WorkspaceID)
}

func TestDashboardForNewUser(t *testing.T) {
	e := newEnv(t)
	u := e.user(t, "new@example.com")

	d, err := e.dashboard.Dashboard(context.Background(), u)
	require.NoError(t, err)
	require.Empty(t, d.Workspaces)
	require.Empty(t, d.Projects)
	require.Empty(t, d.PendingInvites)

	_, err = e.dashboard.Dashboard(context.Background(), domain.Caller{})
	require.ErrorIs(t, err, ErrUnauthenticated)
}
