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
	"github.com/aussiebroadwan/taskify/pkg/idx"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
	"github.com/samber/lo"
)

type WorkspaceService struct {
	Store store.Store
	Authz *Authorizer
}

// CreateWorkspace creates the workspace and the caller's ADMIN/ACCEPTED
// membership in one transaction.
func (s *WorkspaceService) CreateWorkspace(ctx context.Context, caller domain.Caller, name, slug string) (domain.Workspace, error) {
	log := slogx.FromContext(ctx)
	if caller.IsZero() {
		return domain.Workspace{}, unauthenticated("authentication required")
	}

	now := time.Now().UTC()
	w := domain.Workspace{
		ID:        idx.NewString(),
		Name:      strings.TrimSpace(name),
		URL:       strings.ToLower(strings.TrimSpace(slug)),
		OwnerID:   caller.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Workspaces().CreateWorkspace(ctx, w); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, domain.Membership{
			WorkspaceID: w.ID,
			UserID:      caller.UserID,
			Role:        domain.RoleAdmin,
			Status:      domain.InviteAccepted,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Workspace{}, conflict("workspace url %q is already taken", w.URL)
		}
		log.Error("failed to create workspace", slog.Any("error", err))
		return domain.Workspace{}, err
	}

	log.Info("workspace created", slog.String("workspace_id", w.ID), slog.String("url", w.URL))
	return w, nil
}

// ListWorkspaces returns every workspace the caller has a membership row in,
// pending invites included, annotated with the caller's role and status.
func (s *WorkspaceService) ListWorkspaces(ctx context.Context, caller domain.Caller) ([]domain.WorkspaceView, error) {
	if caller.IsZero() {
		return nil, unauthenticated("authentication required")
	}

	views, err := s.Store.Workspaces().ListWorkspacesForUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	for i := range views {
		if !views[i].Role.Valid() {
			views[i].Role = domain.RoleMember
		}
		if views[i].Status == "" {
			views[i].Status = domain.InviteAccepted
		}
	}
	return views, nil
}

// DeleteWorkspace is allowed for the owner or any ADMIN. Everything in the
// workspace goes with it.
func (s *WorkspaceService) DeleteWorkspace(ctx context.Context, caller domain.Caller, workspaceID string) error {
	log := slogx.FromContext(ctx)

	w, err := s.Store.Workspaces().GetWorkspace(ctx, workspaceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("workspace not found")
		}
		return err
	}

	if _, err := s.Authz.Check(ctx, caller, w.ID, permission.Workspace, permission.Delete, w.OwnerID); err != nil {
		return err
	}

	if err := s.Store.Workspaces().DeleteWorkspace(ctx, w.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("workspace not found")
		}
		log.Error("failed to delete workspace", slog.Any("error", err))
		return err
	}

	log.Info("workspace deleted", slog.String("workspace_id", w.ID))
	return nil
}

// acceptedWorkspaceIDs lists the workspaces whose data the caller may see.
func acceptedWorkspaceIDs(ctx context.Context, st store.Store, userID string) ([]domain.WorkspaceView, []string, error) {
	views, err := st.Workspaces().ListWorkspacesForUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	visible := lo.Filter(views, func(v domain.WorkspaceView, _ int) bool {
		return v.Status == domain.InviteAccepted
	})
	ids := lo.Map(visible, func(v domain.WorkspaceView, _ int) string { return v.ID })
	return visible, ids, nil
}
