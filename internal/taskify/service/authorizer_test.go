package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/permission"
	"github.com/aussiebroadwan/taskify/pkg/metricsx"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	m := metricsx.NewNop()
	az := &Authorizer{Store: e.store, Metrics: m}

	admin := e.user(t, "admin@example.com")
	member := e.user(t, "member@example.com")
	pending := e.user(t, "pending@example.com")
	outsider := e.user(t, "outsider@example.com")
	w := e.workspace(t, admin, "acme")
	e.join(t, admin, w, member, domain.RoleMember)
	_, err := e.members.Invite(ctx, admin, w.ID, InviteTarget{UserID: pending.UserID}, domain.RoleAdmin)
	require.NoError(t, err)

	t.Run("role in allowed list", func(t *testing.T) {
		got, err := az.Authorize(ctx, member, w.ID, domain.RoleAdmin, domain.RoleMember)
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, got.Role)
		require.Equal(t, domain.InviteAccepted, got.Status)
	})

	t.Run("role outside allowed list", func(t *testing.T) {
		_, err := az.Authorize(ctx, member, w.ID, domain.RoleAdmin)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("no roles allows nobody", func(t *testing.T) {
		_, err := az.Authorize(ctx, admin, w.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("pending admin gets nothing", func(t *testing.T) {
		_, err := az.Authorize(ctx, pending, w.ID, domain.Roles...)
		require.ErrorIs(t, err, ErrForbidden)
		require.EqualError(t, err, reasonInvitePending)
	})

	t.Run("non-member", func(t *testing.T) {
		_, err := az.Authorize(ctx, outsider, w.ID, domain.Roles...)
		require.ErrorIs(t, err, ErrForbidden)
		require.EqualError(t, err, reasonNotMember)
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := az.Authorize(ctx, domain.Caller{}, w.ID, domain.Roles...)
		require.ErrorIs(t, err, ErrUnauthenticated)
	})

	require.Equal(t, 1.0, testutil.ToFloat64(m.AuthzDecisionsTotal.WithLabelValues("workspace", "access", metricsx.OutcomeAllow)))
	require.Equal(t, 5.0, testutil.ToFloat64(m.AuthzDecisionsTotal.WithLabelValues("workspace", "access", metricsx.OutcomeDeny)))
}

func TestCheckWorkspaceRead(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	admin := e.user(t, "admin@example.com")
	guest := e.user(t, "guest@example.com")
	pending := e.user(t, "pending@example.com")
	w := e.workspace(t, admin, "acme")
	e.join(t, admin, w, guest, domain.RoleGuest)
	_, err := e.members.Invite(ctx, admin, w.ID, InviteTarget{UserID: pending.UserID}, domain.RoleMember)
	require.NoError(t, err)

	for _, c := range []domain.Caller{admin, guest} {
		_, err := e.authz.Check(ctx, c, w.ID, permission.Workspace, permission.Read, "")
		require.NoError(t, err)
	}

	_, err = e.authz.Check(ctx, pending, w.ID, permission.Workspace, permission.Read, "")
	require.ErrorIs(t, err, ErrForbidden)

	// the owner override only covers delete
	_, err = e.authz.Check(ctx, guest, w.ID, permission.Workspace, permission.Delete, guest.UserID)
	require.NoError(t, err)
	_, err = e.authz.Check(ctx, guest, w.ID, permission.Workspace, permission.Delete, admin.UserID)
	require.ErrorIs(t, err, ErrForbidden)
}
