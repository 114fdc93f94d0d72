package service

import (
	"context"
	"log/slog"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	Store store.Store

	// RecentComments caps the comment feed. Defaults to DefaultRecentComments.
	RecentComments int
}

// Dashboard gathers everything the caller can see across their accepted
// workspaces, plus the invites still waiting on them.
func (s *DashboardService) Dashboard(ctx context.Context, caller domain.Caller) (domain.Dashboard, error) {
	log := slogx.FromContext(ctx)
	if caller.IsZero() {
		return domain.Dashboard{}, unauthenticated("authentication required")
	}

	// 1. Visible workspaces
	views, ids, err := acceptedWorkspaceIDs(ctx, s.Store, caller.UserID)
	if err != nil {
		log.Error("failed to list workspaces", slog.Any("error", err))
		return domain.Dashboard{}, err
	}

	d := domain.Dashboard{
		Workspaces:     views,
		PendingInvites: []domain.PendingInvite{},
		Projects:       []domain.Project{},
		Sprints:        []domain.Sprint{},
		Issues:         []domain.IssueSummary{},
		Comments:       []domain.CommentView{},
	}

	limit := s.RecentComments
	if limit <= 0 {
		limit = DefaultRecentComments
	}

	// 2. Fan out; every query is scoped to ids
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		invites, err := s.Store.Memberships().ListPendingInvites(gctx, caller.UserID)
		if err != nil {
			return err
		}
		d.PendingInvites = invites
		return nil
	})
	if len(ids) > 0 {
		g.Go(func() error {
			projects, err := s.Store.Projects().ListProjects(gctx, ids...)
			if err != nil {
				return err
			}
			d.Projects = projects
			return nil
		})
		g.Go(func() error {
			sprints, err := s.Store.Sprints().ListSprintsByWorkspaces(gctx, ids...)
			if err != nil {
				return err
			}
			d.Sprints = sprints
			return nil
		})
		g.Go(func() error {
			issues, err := s.Store.Issues().ListIssueSummaries(gctx, ids...)
			if err != nil {
				return err
			}
			d.Issues = issues
			return nil
		})
		g.Go(func() error {
			comments, err := s.Store.Comments().ListRecentComments(gctx, limit, ids...)
			if err != nil {
				return err
			}
			d.Comments = comments
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("failed to build dashboard", slog.Any("error", err))
		return domain.Dashboard{}, err
	}
	return d, nil
}
