package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/permission"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
	"github.com/aussiebroadwan/taskify/pkg/metricsx"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
)

// InviteTarget identifies the invitee. Email wins when both are set.
type InviteTarget struct {
	Email  string
	UserID string
}

type MembershipService struct {
	Store   store.Store
	Authz   *Authorizer
	Metrics *metricsx.Metrics

	// AutoAccept stores new invites as ACCEPTED instead of PENDING.
	AutoAccept bool
}

// Invite adds a user to the workspace with the given role. The row starts
// PENDING until the invitee accepts, unless AutoAccept is set.
func (s *MembershipService) Invite(
	ctx context.Context,
	caller domain.Caller,
	workspaceID string,
	target InviteTarget,
	role domain.Role,
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	// 1. Only admins invite
	if _, err := s.Authz.Check(ctx, caller, workspaceID, permission.Members, permission.Create, ""); err != nil {
		return domain.Membership{}, err
	}
	if !role.Valid() {
		return domain.Membership{}, invalidRequest("role must be one of ADMIN, MEMBER or GUEST")
	}

	// 2. Resolve the invitee
	invitee, err := s.resolveInvitee(ctx, target)
	if err != nil {
		return domain.Membership{}, err
	}

	// 3. One row per (workspace, user), whatever its status
	if _, err := s.Store.Memberships().GetMembership(ctx, workspaceID, invitee.ID); err == nil {
		log.Info("invite for existing member", slog.String("workspace_id", workspaceID), slog.String("invitee_id", invitee.ID))
		return domain.Membership{}, forbidden(reasonAlreadyMember)
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Membership{}, err
	}

	// 4. Insert. The primary key settles concurrent invites for the same pair.
	status := domain.InvitePending
	if s.AutoAccept {
		status = domain.InviteAccepted
	}
	now := time.Now().UTC()
	m := domain.Membership{
		WorkspaceID: workspaceID,
		UserID:      invitee.ID,
		Role:        role,
		Status:      status,
		InvitedBy:   caller.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Memberships().CreateMembership(ctx, m); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Membership{}, forbidden(reasonAlreadyMember)
		}
		log.Error("failed to create membership", slog.Any("error", err))
		return domain.Membership{}, err
	}

	s.Metrics.Invite(string(status))
	log.Info("member invited",
		slog.String("workspace_id", workspaceID),
		slog.String("invitee_id", invitee.ID),
		slog.String("role", string(role)),
		slog.String("status", string(status)),
	)
	return m, nil
}

func (s *MembershipService) resolveInvitee(ctx context.Context, target InviteTarget) (domain.User, error) {
	var (
		u   domain.User
		err error
	)
	switch {
	case strings.TrimSpace(target.Email) != "":
		u, err = s.Store.Users().GetUserByEmail(ctx, normalizeEmail(target.Email))
	case target.UserID != "":
		u, err = s.Store.Users().GetUserByID(ctx, target.UserID)
	default:
		return domain.User{}, invalidRequest("email or userId is required")
	}
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, notFound("user not found")
		}
		return domain.User{}, err
	}
	return u, nil
}

// AcceptInvite moves the caller's PENDING membership to ACCEPTED.
func (s *MembershipService) AcceptInvite(ctx context.Context, caller domain.Caller, workspaceID string) (domain.Membership, error) {
	if caller.IsZero() {
		return domain.Membership{}, unauthenticated("authentication required")
	}

	err := s.Store.Memberships().UpdateMembershipStatus(ctx, workspaceID, caller.UserID, domain.InvitePending, domain.InviteAccepted)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, notFound("no pending invite for this workspace")
		}
		return domain.Membership{}, err
	}

	slogx.FromContext(ctx).Info("invite accepted", slog.String("workspace_id", workspaceID))
	return s.Store.Memberships().GetMembership(ctx, workspaceID, caller.UserID)
}

// DeclineInvite removes the caller's PENDING membership.
func (s *MembershipService) DeclineInvite(ctx context.Context, caller domain.Caller, workspaceID string) error {
	if caller.IsZero() {
		return unauthenticated("authentication required")
	}

	if err := s.Store.Memberships().DeletePendingMembership(ctx, workspaceID, caller.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("no pending invite for this workspace")
		}
		return err
	}

	slogx.FromContext(ctx).Info("invite declined", slog.String("workspace_id", workspaceID))
	return nil
}

// UpdateRole changes an accepted member's role. The workspace owner always
// stays ADMIN.
func (s *MembershipService) UpdateRole(
	ctx context.Context,
	caller domain.Caller,
	workspaceID, targetUserID string,
	role domain.Role,
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	// 1. Only admins change roles
	if _, err := s.Authz.Check(ctx, caller, workspaceID, permission.Members, permission.Update, ""); err != nil {
		return domain.Membership{}, err
	}
	if !role.Valid() {
		return domain.Membership{}, invalidRequest("role must be one of ADMIN, MEMBER or GUEST")
	}

	// 2. Target must be an accepted member
	target, err := s.Store.Memberships().GetMembership(ctx, workspaceID, targetUserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, notFound("member not found")
		}
		return domain.Membership{}, err
	}
	if !target.Accepted() {
		return domain.Membership{}, invalidState("cannot change role of a pending member")
	}

	// 3. The owner cannot be demoted
	w, err := s.Store.Workspaces().GetWorkspace(ctx, workspaceID)
	if err != nil {
		return domain.Membership{}, err
	}
	if w.OwnerID == targetUserID && role != domain.RoleAdmin {
		log.Warn("attempt to demote workspace owner", slog.String("workspace_id", workspaceID))
		return domain.Membership{}, forbidden("the workspace owner cannot be demoted")
	}

	if err := s.Store.Memberships().UpdateMembershipRole(ctx, workspaceID, targetUserID, role); err != nil {
		return domain.Membership{}, err
	}

	log.Info("member role changed",
		slog.String("workspace_id", workspaceID),
		slog.String("target_user_id", targetUserID),
		slog.String("from", string(target.Role)),
		slog.String("to", string(role)),
	)
	target.Role = role
	return target, nil
}

// ListMembers returns the workspace's members, pending invites included.
func (s *MembershipService) ListMembers(ctx context.Context, caller domain.Caller, workspaceID string) ([]domain.Member, error) {
	if _, err := s.Authz.Check(ctx, caller, workspaceID, permission.Members, permission.Read, ""); err != nil {
		return nil, err
	}
	return s.Store.Memberships().ListMembers(ctx, workspaceID)
}
