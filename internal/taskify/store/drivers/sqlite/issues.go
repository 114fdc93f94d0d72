package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
)

type issuesRepo struct{ db dbtx }

var _ store.Issues = (*issuesRepo)(nil)

const issueColumns = `i.id, i.project_id, i.workspace_id, i.ticket_number, i.title, i.description, i.type,
	i.priority, i.status, i.sprint_id, i.assignee_id, i.reporter_id, i.list_position, i.created_at, i.updated_at`

func scanIssue(row interface{ Scan(...any) error }, extra ...any) (domain.Issue, error) {
	var (
		i                  domain.Issue
		sprintID, assignee sql.NullString
	)
	dest := append([]any{
		&i.ID, &i.ProjectID, &i.WorkspaceID, &i.TicketNumber, &i.Title, &i.Description, &i.Type,
		&i.Priority, &i.Status, &sprintID, &assignee, &i.ReporterID, &i.ListPosition, &i.CreatedAt, &i.UpdatedAt,
	}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Issue{}, err
	}
	i.SprintID = mapNullStringPtr(sprintID)
	i.AssigneeID = mapNullStringPtr(assignee)
	return i, nil
}

func (r *issuesRepo) CreateIssue(ctx context.Context, i domain.Issue) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO issues (id, project_id, workspace_id, ticket_number, title, description, type, priority,
			status, sprint_id, assignee_id, reporter_id, list_position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		i.ID, i.ProjectID, i.WorkspaceID, i.TicketNumber, i.Title, i.Description, string(i.Type), string(i.Priority),
		string(i.Status), mapOptionalString(i.SprintID), mapOptionalString(i.AssigneeID), i.ReporterID,
		i.ListPosition, i.CreatedAt.UTC(), i.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *issuesRepo) GetIssue(ctx context.Context, id string) (domain.Issue, error) {
	i, err := scanIssue(r.db.QueryRowContext(ctx, `SELECT `+issueColumns+` FROM issues i WHERE i.id = ?`, id))
	if err != nil {
		return domain.Issue{}, mapNotFound(err)
	}
	return i, nil
}

func (r *issuesRepo) ListIssues(ctx context.Context, projectID string, f domain.IssueFilter) ([]domain.Issue, error) {
	var (
		where = []string{"i.project_id = ?"}
		args  = []any{projectID}
		join  string
	)

	switch {
	case f.ActiveSprint:
		join = "JOIN sprints s ON s.id = i.sprint_id"
		where = append(where, "s.status = 'ACTIVE'")
	case f.Backlog:
		where = append(where, "i.sprint_id IS NULL")
	case f.SprintID != "":
		where = append(where, "i.sprint_id = ?")
		args = append(args, f.SprintID)
	}
	if f.AssigneeID != "" {
		where = append(where, "i.assignee_id = ?")
		args = append(args, f.AssigneeID)
	}
	if f.Status != "" {
		where = append(where, "i.status = ?")
		args = append(args, string(f.Status))
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+issueColumns+` FROM issues i `+join+` WHERE `+strings.Join(where, " AND ")+
			` ORDER BY i.list_position, i.ticket_number`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Issue
	for rows.Next() {
		i, err := scanIssue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, rows.Err()
}

func (r *issuesRepo) listSummaries(ctx context.Context, where string, args ...any) ([]domain.IssueSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+issueColumns+`, p.name, p.key, w.name
		FROM issues i
		JOIN projects p ON p.id = i.project_id
		JOIN workspaces w ON w.id = i.workspace_id
		WHERE `+where+`
		ORDER BY i.updated_at DESC, i.id DESC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.IssueSummary
	for rows.Next() {
		var s domain.IssueSummary
		i, err := scanIssue(rows, &s.ProjectName, &s.ProjectKey, &s.WorkspaceName)
		if err != nil {
			return nil, err
		}
		s.Issue = i
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *issuesRepo) ListIssueSummaries(ctx context.Context, workspaceIDs ...string) ([]domain.IssueSummary, error) {
	in, args := inClause(workspaceIDs)
	return r.listSummaries(ctx, `i.workspace_id IN (`+in+`)`, args...)
}

func (r *issuesRepo) ListAssignedOpen(ctx context.Context, assigneeID string, workspaceIDs ...string) ([]domain.IssueSummary, error) {
	in, args := inClause(workspaceIDs)
	return r.listSummaries(ctx,
		`i.assignee_id = ? AND i.status <> 'DONE' AND i.workspace_id IN (`+in+`)`,
		append([]any{assigneeID}, args...)...,
	)
}

// UpdateIssue writes every mutable field. Project, workspace, ticket number
// and reporter never change.
func (r *issuesRepo) UpdateIssue(ctx context.Context, i domain.Issue) error {
	return requireAffected(r.db.ExecContext(ctx, `
		UPDATE issues SET title = ?, description = ?, type = ?, priority = ?, status = ?,
			sprint_id = ?, assignee_id = ?, list_position = ?, updated_at = ?
		WHERE id = ?`,
		i.Title, i.Description, string(i.Type), string(i.Priority), string(i.Status),
		mapOptionalString(i.SprintID), mapOptionalString(i.AssigneeID), i.ListPosition, i.UpdatedAt.UTC(), i.ID,
	))
}

func (r *issuesRepo) DeleteIssue(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM issues WHERE id = ?`, id))
}
