package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
)

type commentsRepo struct{ db dbtx }

var _ store.Comments = (*commentsRepo)(nil)

const commentViewQuery = `
	SELECT c.id, c.issue_id, c.user_id, c.content, c.created_at, c.updated_at,
		u.name, i.title, i.ticket_number, p.id, p.key, i.workspace_id
	FROM comments c
	JOIN users u ON u.id = c.user_id
	JOIN issues i ON i.id = c.issue_id
	JOIN projects p ON p.id = i.project_id`

func (r *commentsRepo) listViews(ctx context.Context, query string, args ...any) ([]domain.CommentView, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.CommentView
	for rows.Next() {
		var v domain.CommentView
		if err := rows.Scan(
			&v.ID, &v.IssueID, &v.UserID, &v.Content, &v.CreatedAt, &v.UpdatedAt,
			&v.AuthorName, &v.IssueTitle, &v.TicketNumber, &v.ProjectID, &v.ProjectKey, &v.WorkspaceID,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *commentsRepo) CreateComment(ctx context.Context, c domain.Comment) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO comments (id, issue_id, user_id, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.IssueID, c.UserID, c.Content, c.CreatedAt.UTC(), c.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *commentsRepo) GetComment(ctx context.Context, id string) (domain.Comment, error) {
	var c domain.Comment
	err := r.db.QueryRowContext(ctx,
		`SELECT id, issue_id, user_id, content, created_at, updated_at FROM comments WHERE id = ?`, id,
	).Scan(&c.ID, &c.IssueID, &c.UserID, &c.Content, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Comment{}, mapNotFound(err)
	}
	return c, nil
}

func (r *commentsRepo) ListCommentsByIssue(ctx context.Context, issueID string) ([]domain.CommentView, error) {
	return r.listViews(ctx, commentViewQuery+` WHERE c.issue_id = ? ORDER BY c.created_at, c.id`, issueID)
}

func (r *commentsRepo) ListRecentComments(ctx context.Context, limit int, workspaceIDs ...string) ([]domain.CommentView, error) {
	in, args := inClause(workspaceIDs)
	return r.listViews(ctx,
		commentViewQuery+` WHERE i.workspace_id IN (`+in+`) ORDER BY c.created_at DESC, c.id DESC LIMIT ?`,
		append(args, limit)...,
	)
}

func (r *commentsRepo) UpdateCommentContent(ctx context.Context, id, content string, at time.Time) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE comments SET content = ?, updated_at = ? WHERE id = ?`, content, at.UTC(), id))
}

func (r *commentsRepo) DeleteComment(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id))
}
