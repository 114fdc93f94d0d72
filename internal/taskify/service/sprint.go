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
)

type SprintService struct {
	Store store.Store
	Authz *Authorizer
}

// CreateSprint adds a PENDING sprint to the project.
func (s *SprintService) CreateSprint(
	ctx context.Context,
	caller domain.Caller,
	projectID, name string,
	start, end *time.Time,
) (domain.Sprint, error) {
	log := slogx.FromContext(ctx)

	p, err := loadProject(ctx, s.Store, projectID)
	if err != nil {
		return domain.Sprint{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Sprint, permission.Create, ""); err != nil {
		return domain.Sprint{}, err
	}

	if start != nil && end != nil && end.Before(*start) {
		return domain.Sprint{}, invalidRequest("end date must not be before start date")
	}

	now := time.Now().UTC()
	sp := domain.Sprint{
		ID:        idx.NewString(),
		ProjectID: p.ID,
		Name:      strings.TrimSpace(name),
		Status:    domain.SprintPending,
		StartDate: utcPtr(start),
		EndDate:   utcPtr(end),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Sprints().CreateSprint(ctx, sp); err != nil {
		log.Error("failed to create sprint", slog.Any("error", err))
		return domain.Sprint{}, err
	}

	log.Info("sprint created", slog.String("sprint_id", sp.ID), slog.String("project_id", p.ID))
	return sp, nil
}

func (s *SprintService) ListSprints(ctx context.Context, caller domain.Caller, projectID string) ([]domain.Sprint, error) {
	p, err := loadProject(ctx, s.Store, projectID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Sprint, permission.Read, ""); err != nil {
		return nil, err
	}
	return s.Store.Sprints().ListSprintsByProject(ctx, p.ID)
}

func (s *SprintService) GetSprint(ctx context.Context, caller domain.Caller, sprintID string) (domain.Sprint, error) {
	sp, p, err := s.load(ctx, sprintID)
	if err != nil {
		return domain.Sprint{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Sprint, permission.Read, ""); err != nil {
		return domain.Sprint{}, err
	}
	return sp, nil
}

// UpdateSprint renames and/or moves the sprint along
// PENDING -> ACTIVE -> COMPLETED. A completed sprint accepts no update.
func (s *SprintService) UpdateSprint(
	ctx context.Context,
	caller domain.Caller,
	sprintID string,
	status *domain.SprintStatus,
	name *string,
) (domain.Sprint, error) {
	log := slogx.FromContext(ctx)

	sp, p, err := s.load(ctx, sprintID)
	if err != nil {
		return domain.Sprint{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Sprint, permission.Update, ""); err != nil {
		return domain.Sprint{}, err
	}

	if sp.Status == domain.SprintCompleted {
		return domain.Sprint{}, invalidState("%s", domain.ErrSprintCompleted.Error())
	}

	now := time.Now().UTC()
	next := sp
	if status != nil {
		if !status.Valid() {
			return domain.Sprint{}, invalidRequest("status must be one of PENDING, ACTIVE or COMPLETED")
		}
		next, err = sp.Transition(*status, now)
		if err != nil {
			return domain.Sprint{}, invalidState("%s", err.Error())
		}
	}
	if name != nil {
		n := strings.TrimSpace(*name)
		if n == "" {
			return domain.Sprint{}, invalidRequest("name cannot be empty")
		}
		next.Name = n
	}
	next.UpdatedAt = now

	if err := s.Store.Sprints().UpdateSprint(ctx, next); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Sprint{}, notFound("sprint not found")
		}
		log.Error("failed to update sprint", slog.Any("error", err))
		return domain.Sprint{}, err
	}

	if next.Status != sp.Status {
		log.Info("sprint transitioned",
			slog.String("sprint_id", sp.ID),
			slog.String("from", string(sp.Status)),
			slog.String("to", string(next.Status)),
		)
	}
	return next, nil
}

// DeleteSprint removes the sprint. Its issues move to the backlog.
func (s *SprintService) DeleteSprint(ctx context.Context, caller domain.Caller, sprintID string) error {
	log := slogx.FromContext(ctx)

	sp, p, err := s.load(ctx, sprintID)
	if err != nil {
		return err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Sprint, permission.Delete, ""); err != nil {
		return err
	}

	if err := s.Store.Sprints().DeleteSprint(ctx, sp.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("sprint not found")
		}
		log.Error("failed to delete sprint", slog.Any("error", err))
		return err
	}

	log.Info("sprint deleted", slog.String("sprint_id", sp.ID))
	return nil
}

func (s *SprintService) load(ctx context.Context, sprintID string) (domain.Sprint, domain.Project, error) {
	sp, err := s.Store.Sprints().GetSprint(ctx, sprintID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Sprint{}, domain.Project{}, notFound("sprint not found")
		}
		return domain.Sprint{}, domain.Project{}, err
	}
	p, err := loadProject(ctx, s.Store, sp.ProjectID)
	if err != nil {
		return domain.Sprint{}, domain.Project{}, err
	}
	return sp, p, nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
