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
	"github.com/google/uuid"
)

type ProjectService struct {
	Store store.Store
	Authz *Authorizer
}

// CreateProject adds a project to the workspace. Without a key a random one
// is generated.
func (s *ProjectService) CreateProject(
	ctx context.Context,
	caller domain.Caller,
	workspaceID, name, key, description string,
) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	if _, err := s.Authz.Check(ctx, caller, workspaceID, permission.Project, permission.Create, ""); err != nil {
		return domain.Project{}, err
	}

	key = strings.TrimSpace(key)
	if key == "" {
		key = uuid.NewString()
	}

	now := time.Now().UTC()
	p := domain.Project{
		ID:          idx.NewString(),
		WorkspaceID: workspaceID,
		Name:        strings.TrimSpace(name),
		Key:         key,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Projects().CreateProject(ctx, p); err != nil {
		log.Error("failed to create project", slog.Any("error", err))
		return domain.Project{}, err
	}

	log.Info("project created", slog.String("project_id", p.ID), slog.String("workspace_id", workspaceID))
	return p, nil
}

// ListProjects returns the workspace's projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, caller domain.Caller, workspaceID string) ([]domain.Project, error) {
	if _, err := s.Authz.Check(ctx, caller, workspaceID, permission.Project, permission.Read, ""); err != nil {
		return nil, err
	}
	return s.Store.Projects().ListProjects(ctx, workspaceID)
}

func (s *ProjectService) GetProject(ctx context.Context, caller domain.Caller, projectID string) (domain.Project, error) {
	p, err := s.load(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Project, permission.Read, ""); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

// UpdateProject changes name and/or description. The workspace never
// changes.
func (s *ProjectService) UpdateProject(
	ctx context.Context,
	caller domain.Caller,
	projectID string,
	name, description *string,
) (domain.Project, error) {
	log := slogx.FromContext(ctx)

	p, err := s.load(ctx, projectID)
	if err != nil {
		return domain.Project{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Project, permission.Update, ""); err != nil {
		return domain.Project{}, err
	}

	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return domain.Project{}, invalidRequest("name cannot be empty")
		}
		p.Name = n
	}
	if description != nil {
		p.Description = *description
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.Store.Projects().UpdateProject(ctx, p); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, notFound("project not found")
		}
		log.Error("failed to update project", slog.Any("error", err))
		return domain.Project{}, err
	}
	return p, nil
}

// DeleteProject removes the project with its sprints, issues and comments.
func (s *ProjectService) DeleteProject(ctx context.Context, caller domain.Caller, projectID string) error {
	log := slogx.FromContext(ctx)

	p, err := s.load(ctx, projectID)
	if err != nil {
		return err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Project, permission.Delete, ""); err != nil {
		return err
	}

	if err := s.Store.Projects().DeleteProject(ctx, p.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("project not found")
		}
		log.Error("failed to delete project", slog.Any("error", err))
		return err
	}

	log.Info("project deleted", slog.String("project_id", p.ID))
	return nil
}

func (s *ProjectService) load(ctx context.Context, projectID string) (domain.Project, error) {
	return loadProject(ctx, s.Store, projectID)
}

func loadProject(ctx context.Context, st store.Store, projectID string) (domain.Project, error) {
	p, err := st.Projects().GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Project{}, notFound("project not found")
		}
		return domain.Project{}, err
	}
	return p, nil
}
