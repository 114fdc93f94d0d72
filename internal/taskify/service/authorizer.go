package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/permission"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
	"github.com/aussiebroadwan/taskify/pkg/metricsx"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
)

// Authorizer decides whether a caller may act inside a workspace. Every
// resource service asks it before reading or writing workspace data.
//
// Only ACCEPTED memberships grant anything. A PENDING invite is treated
// exactly like no membership at all.
type Authorizer struct {
	Store   store.Store
	Metrics *metricsx.Metrics
}

// Authorize returns the caller's membership of workspaceID when its role is
// one of allowed.
func (a *Authorizer) Authorize(ctx context.Context, caller domain.Caller, workspaceID string, allowed ...domain.Role) (domain.Membership, error) {
	return a.decide(ctx, caller, workspaceID, "workspace", "access", func(m domain.Membership) bool {
		return slices.Contains(allowed, m.Role)
	})
}

// Check evaluates the permission table for (res, verb). ownerID is the user
// owning the resource (workspace owner, issue reporter, comment author) or
// empty when ownership does not apply. The role predicate is evaluated
// first; ownership is only consulted when the role does not suffice.
func (a *Authorizer) Check(
	ctx context.Context,
	caller domain.Caller,
	workspaceID string,
	res permission.Resource,
	verb permission.Verb,
	ownerID string,
) (domain.Membership, error) {
	return a.decide(ctx, caller, workspaceID, string(res), string(verb), func(m domain.Membership) bool {
		if permission.RoleAllows(res, verb, m.Role) {
			return true
		}
		return ownerID != "" && ownerID == caller.UserID && permission.OwnerAllows(res, verb)
	})
}

func (a *Authorizer) decide(
	ctx context.Context,
	caller domain.Caller,
	workspaceID, res, verb string,
	allow func(domain.Membership) bool,
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	if caller.IsZero() {
		a.Metrics.Authz(res, verb, false)
		return domain.Membership{}, unauthenticated("authentication required")
	}

	// 1. Resolve the caller's membership
	m, err := a.Store.Memberships().GetMembership(ctx, workspaceID, caller.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			a.deny(log, caller, workspaceID, res, verb, "no membership")
			return domain.Membership{}, forbidden(reasonNotMember)
		}
		log.Error("failed to load membership", slog.String("workspace_id", workspaceID), slog.Any("error", err))
		return domain.Membership{}, err
	}

	// 2. Pending invites grant nothing
	if !m.Accepted() {
		a.deny(log, caller, workspaceID, res, verb, "invite pending")
		return domain.Membership{}, forbidden(reasonInvitePending)
	}

	// 3. Role, then ownership
	if !allow(m) {
		a.deny(log, caller, workspaceID, res, verb, "role "+string(m.Role))
		return domain.Membership{}, forbidden("your role does not allow you to %s this %s", verb, res)
	}

	a.Metrics.Authz(res, verb, true)
	return m, nil
}

func (a *Authorizer) deny(log *slog.Logger, caller domain.Caller, workspaceID, res, verb, why string) {
	a.Metrics.Authz(res, verb, false)
	log.Warn("authorization denied",
		slog.String("user_id", caller.UserID),
		slog.String("workspace_id", workspaceID),
		slog.String("resource", res),
		slog.String("verb", verb),
		slog.String("reason", why),
	)
}
