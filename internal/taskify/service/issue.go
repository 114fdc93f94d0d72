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
	"github.com/aussiebroadwan/taskify/pkg/metricsx"
	"github.com/aussiebroadwan/taskify/pkg/slogx"
)

type IssueService struct {
	Store   store.Store
	Authz   *Authorizer
	Metrics *metricsx.Metrics
}

// NewIssue is the payload of CreateIssue.
type NewIssue struct {
	Title       string
	Description string
	Type        domain.IssueType
	Priority    domain.IssuePriority
	SprintID    *string
	AssigneeID  *string
}

// Nullable distinguishes "not sent" from "sent as null". Set with a nil
// Value clears the field.
type Nullable[T any] struct {
	Set   bool
	Value *T
}

// IssuePatch holds the fields UpdateIssue may change. Nil pointers are left
// alone.
type IssuePatch struct {
	Title        *string
	Description  *string
	Type         *domain.IssueType
	Priority     *domain.IssuePriority
	Status       *domain.IssueStatus
	ListPosition *float64
	SprintID     Nullable[string]
	AssigneeID   Nullable[string]
}

// IssueQuery mirrors the list endpoint's query string.
//
//	Sprint:   "active", "backlog" or a sprint id
//	Assignee: "me" or a user id
type IssueQuery struct {
	Sprint   string
	Assignee string
	Status   string
}

// CreateIssue numbers the issue from the project's counter and inserts it
// in the same transaction.
func (s *IssueService) CreateIssue(ctx context.Context, caller domain.Caller, projectID string, in NewIssue) (domain.Issue, error) {
	log := slogx.FromContext(ctx)

	// 1. Resolve project and authorize in its workspace
	p, err := loadProject(ctx, s.Store, projectID)
	if err != nil {
		return domain.Issue{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Issue, permission.Create, ""); err != nil {
		return domain.Issue{}, err
	}

	// 2. Validate the payload
	if in.Type == "" {
		in.Type = domain.IssueTask
	}
	if in.Priority == "" {
		in.Priority = domain.PriorityMedium
	}
	if !in.Type.Valid() {
		return domain.Issue{}, invalidRequest("type must be one of BUG, FEATURE or TASK")
	}
	if !in.Priority.Valid() {
		return domain.Issue{}, invalidRequest("priority must be one of LOW, MEDIUM, HIGH or CRITICAL")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Issue{}, invalidRequest("title is required")
	}
	if err := s.checkSprint(ctx, p.ID, in.SprintID); err != nil {
		return domain.Issue{}, err
	}
	if err := s.checkAssignee(ctx, p.WorkspaceID, in.AssigneeID); err != nil {
		return domain.Issue{}, err
	}

	// 3. Number and insert atomically
	now := time.Now().UTC()
	issue := domain.Issue{
		ID:          idx.NewString(),
		ProjectID:   p.ID,
		WorkspaceID: p.WorkspaceID,
		Title:       title,
		Description: sanitize(in.Description),
		Type:        in.Type,
		Priority:    in.Priority,
		Status:      domain.IssueTodo,
		SprintID:    in.SprintID,
		AssigneeID:  in.AssigneeID,
		ReporterID:  caller.UserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Projects().NextTicketNumber(ctx, p.ID)
		if err != nil {
			return err
		}
		issue.TicketNumber = n
		issue.ListPosition = float64(n)
		return tx.Issues().CreateIssue(ctx, issue)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Issue{}, notFound("project not found")
		}
		log.Error("failed to create issue", slog.String("project_id", p.ID), slog.Any("error", err))
		return domain.Issue{}, err
	}

	s.Metrics.IssueCreated()
	log.Info("issue created",
		slog.String("issue_id", issue.ID),
		slog.String("project_id", p.ID),
		slog.Int64("ticket_number", issue.TicketNumber),
	)
	return issue, nil
}

// ListIssues returns the project's issues ordered by list position.
func (s *IssueService) ListIssues(ctx context.Context, caller domain.Caller, projectID string, q IssueQuery) ([]domain.Issue, error) {
	p, err := loadProject(ctx, s.Store, projectID)
	if err != nil {
		return nil, err
	}
	if _, err := s.Authz.Check(ctx, caller, p.WorkspaceID, permission.Issue, permission.Read, ""); err != nil {
		return nil, err
	}

	var f domain.IssueFilter
	switch q.Sprint {
	case "":
	case "active":
		f.ActiveSprint = true
	case "backlog":
		f.Backlog = true
	default:
		f.SprintID = q.Sprint
	}
	switch q.Assignee {
	case "":
	case "me":
		f.AssigneeID = caller.UserID
	default:
		f.AssigneeID = q.Assignee
	}
	if q.Status != "" {
		st := domain.IssueStatus(strings.ToUpper(q.Status))
		if !st.Valid() {
			return nil, invalidRequest("status must be one of TODO, IN_PROGRESS or DONE")
		}
		f.Status = st
	}

	return s.Store.Issues().ListIssues(ctx, p.ID, f)
}

func (s *IssueService) GetIssue(ctx context.Context, caller domain.Caller, issueID string) (domain.Issue, error) {
	issue, err := s.load(ctx, issueID)
	if err != nil {
		return domain.Issue{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, issue.WorkspaceID, permission.Issue, permission.Read, ""); err != nil {
		return domain.Issue{}, err
	}
	return issue, nil
}

// UpdateIssue applies patch. ADMIN and MEMBER may edit any issue; anyone
// else only issues they reported.
func (s *IssueService) UpdateIssue(ctx context.Context, caller domain.Caller, issueID string, patch IssuePatch) (domain.Issue, error) {
	log := slogx.FromContext(ctx)

	issue, err := s.load(ctx, issueID)
	if err != nil {
		return domain.Issue{}, err
	}
	if _, err := s.Authz.Check(ctx, caller, issue.WorkspaceID, permission.Issue, permission.Update, issue.ReporterID); err != nil {
		return domain.Issue{}, err
	}

	if patch.Title != nil {
		t := strings.TrimSpace(*patch.Title)
		if t == "" {
			return domain.Issue{}, invalidRequest("title cannot be empty")
		}
		issue.Title = t
	}
	if patch.Description != nil {
		issue.Description = sanitize(*patch.Description)
	}
	if patch.Type != nil {
		if !patch.Type.Valid() {
			return domain.Issue{}, invalidRequest("type must be one of BUG, FEATURE or TASK")
		}
		issue.Type = *patch.Type
	}
	if patch.Priority != nil {
		if !patch.Priority.Valid() {
			return domain.Issue{}, invalidRequest("priority must be one of LOW, MEDIUM, HIGH or CRITICAL")
		}
		issue.Priority = *patch.Priority
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return domain.Issue{}, invalidRequest("status must be one of TODO, IN_PROGRESS or DONE")
		}
		issue.Status = *patch.Status
	}
	if patch.ListPosition != nil {
		issue.ListPosition = *patch.ListPosition
	}
	if patch.SprintID.Set {
		if err := s.checkSprint(ctx, issue.ProjectID, patch.SprintID.Value); err != nil {
			return domain.Issue{}, err
		}
		issue.SprintID = patch.SprintID.Value
	}
	if patch.AssigneeID.Set {
		if err := s.checkAssignee(ctx, issue.WorkspaceID, patch.AssigneeID.Value); err != nil {
			return domain.Issue{}, err
		}
		issue.AssigneeID = patch.AssigneeID.Value
	}
	issue.UpdatedAt = time.Now().UTC()

	if err := s.Store.Issues().UpdateIssue(ctx, issue); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Issue{}, notFound("issue not found")
		}
		log.Error("failed to update issue", slog.String("issue_id", issue.ID), slog.Any("error", err))
		return domain.Issue{}, err
	}

	log.Debug("issue updated", slog.String("issue_id", issue.ID))
	return issue, nil
}

// DeleteIssue is allowed for ADMIN and for the issue's reporter.
func (s *IssueService) DeleteIssue(ctx context.Context, caller domain.Caller, issueID string) error {
	log := slogx.FromContext(ctx)

	issue, err := s.load(ctx, issueID)
	if err != nil {
		return err
	}
	if _, err := s.Authz.Check(ctx, caller, issue.WorkspaceID, permission.Issue, permission.Delete, issue.ReporterID); err != nil {
		return err
	}

	if err := s.Store.Issues().DeleteIssue(ctx, issue.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("issue not found")
		}
		log.Error("failed to delete issue", slog.String("issue_id", issue.ID), slog.Any("error", err))
		return err
	}

	log.Info("issue deleted", slog.String("issue_id", issue.ID))
	return nil
}

// ListAssignedOpen returns the caller's unfinished issues across every
// workspace they have accepted.
func (s *IssueService) ListAssignedOpen(ctx context.Context, caller domain.Caller) ([]domain.IssueSummary, error) {
	if caller.IsZero() {
		return nil, unauthenticated("authentication required")
	}

	_, ids, err := acceptedWorkspaceIDs(ctx, s.Store, caller.UserID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []domain.IssueSummary{}, nil
	}
	return s.Store.Issues().ListAssignedOpen(ctx, caller.UserID, ids...)
}

func (s *IssueService) load(ctx context.Context, issueID string) (domain.Issue, error) {
	issue, err := s.Store.Issues().GetIssue(ctx, issueID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Issue{}, notFound("issue not found")
		}
		return domain.Issue{}, err
	}
	return issue, nil
}

// checkSprint rejects sprints from other projects. A nil id is the backlog.
func (s *IssueService) checkSprint(ctx context.Context, projectID string, sprintID *string) error {
	if sprintID == nil {
		return nil
	}
	sp, err := s.Store.Sprints().GetSprint(ctx, *sprintID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return invalidRequest("sprint not found")
		}
		return err
	}
	if sp.ProjectID != projectID {
		return invalidRequest("sprint belongs to another project")
	}
	return nil
}

// checkAssignee requires an accepted member of the issue's workspace.
func (s *IssueService) checkAssignee(ctx context.Context, workspaceID string, assigneeID *string) error {
	if assigneeID == nil {
		return nil
	}
	m, err := s.Store.Memberships().GetMembership(ctx, workspaceID, *assigneeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return invalidRequest("assignee is not a member of this workspace")
		}
		return err
	}
	if !m.Accepted() {
		return invalidRequest("assignee has not accepted the invite to this workspace")
	}
	return nil
}
