package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/permission"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
	"github.com/aussiebroadwan/taskify/pkg/idx"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
)

// DefaultRecentComments caps ListRecentComments when no limit is given.
const DefaultRecentComments = 20

type CommentService struct {
	Store store.Store
	Authz *Authorizer
}

func (s *CommentService) ListComments(ctx context.Context, caller domain.Caller, issueID string) ([]domain.CommentView, error) {
	issue, err := s.issue(ctx, issueID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authz.Check(ctx, caller, issue.WorkspaceID, permission.Comment, permission.Read, ""); err != nil {
		return nil, err
	}
	return s.Store.Comments().ListCommentsByIssue(ctx, issue.ID)
}

func (s *CommentService) CreateComment(ctx context.Context, caller domain.Caller, issueID, content string) (domain.Comment, error) {
	log := slogx.FromContext(ctx)

	issue, err := s.issue(ctx, issueID)
	if err != nil {
		return domain.Comment{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, issue.WorkspaceID, permission.Comment, permission.Create, ""); err != nil {
		return domain.Comment{}, err
	}

	content = sanitize(content)
	if content == "" {
		return domain.Comment{}, invalidRequest("content is required")
	}

	now := time.Now().UTC()
	c := domain.Comment{
		ID:        idx.NewString(),
		IssueID:   issue.ID,
		UserID:    caller.UserID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Comments().CreateComment(ctx, c); err != nil {
		log.Error("failed to create comment", slog.String("issue_id", issue.ID), slog.Any("error", err))
		return domain.Comment{}, err
	}

	log.Debug("comment created", slog.String("comment_id", c.ID), slog.String("issue_id", issue.ID))
	return c, nil
}

// UpdateComment lets only the author edit.
func (s *CommentService) UpdateComment(ctx context.Context, caller domain.Caller, commentID, content string) (domain.Comment, error) {
	log := slogx.FromContext(ctx)

	c, issue, err := s.load(ctx, commentID)
	if err != nil {
		return domain.Comment{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, issue.WorkspaceID, permission.Comment, permission.Update, c.UserID); err != nil {
		return domain.Comment{}, err
	}

	content = sanitize(content)
	if content == "" {
		return domain.Comment{}, invalidRequest("content is required")
	}

	now := time.Now().UTC()
	if err := s.Store.Comments().UpdateCommentContent(ctx, c.ID, content, now); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Comment{}, notFound("comment not found")
		}
		log.Error("failed to update comment", slog.String("comment_id", c.ID), slog.Any("error", err))
		return domain.Comment{}, err
	}

	c.Content = content
	c.UpdatedAt = now
	return c, nil
}

// DeleteComment is allowed for the author and for ADMIN.
func (s *CommentService) DeleteComment(ctx context.Context, caller domain.Caller, commentID string) error {
	log := slogx.FromContext(ctx)

	c, issue, err := s.load(ctx, commentID)
	if err != nil {
		return err
	}
	if _, err := s.Authz.Check(ctx, caller, issue.WorkspaceID, permission.Comment, permission.Delete, c.UserID); err != nil {
		return err
	}

	if err := s.Store.Comments().DeleteComment(ctx, c.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("comment not found")
		}
		log.Error("failed to delete comment", slog.String("comment_id", c.ID), slog.Any("error", err))
		return err
	}

	log.Info("comment deleted", slog.String("comment_id", c.ID))
	return nil
}

// ListRecentComments returns the newest comments across the caller's
// accepted workspaces.
func (s *CommentService) ListRecentComments(ctx context.Context, caller domain.Caller, limit int) ([]domain.CommentView, error) {
	if caller.IsZero() {
		return nil, unauthenticated("authentication required")
	}
	if limit <= 0 {
		limit = DefaultRecentComments
	}

	_, ids, err := acceptedWorkspaceIDs(ctx, s.Store, caller.UserID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.CommentView{}, nil
	}
	return s.Store.Comments().ListRecentComments(ctx, limit, ids...)
}

func (s *CommentService) issue(ctx context.Context, issueID string) (domain.Issue, error) {
	issue, err := s.Store.Issues().GetIssue(ctx, issueID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Issue{}, notFound("issue not found")
		}
		return domain.Issue{}, err
	}
	return issue, nil
}

func (s *CommentService) load(ctx context.Context, commentID string) (domain.Comment, domain.Issue, error) {
	c, err := s.Store.Comments().GetComment(ctx, commentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Comment{}, domain.Issue{}, notFound("comment not found")
		}
		return domain.Comment{}, domain.Issue{}, err
	}
	issue, err := s.issue(ctx, c.IssueID)
	if err != nil {
		return domain.Comment{}, domain.Issue{}, err
	}
	return c, issue, nil
}
