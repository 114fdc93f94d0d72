package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
)

type workspacesRepo struct{ db dbtx }

var _ store.Workspaces = (*workspacesRepo)(nil)

func (r *workspacesRepo) CreateWorkspace(ctx context.Context, w domain.Workspace) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO workspaces (id, name, url, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		w.ID, w.Name, w.URL, w.OwnerID, w.CreatedAt.UTC(), w.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *workspacesRepo) GetWorkspace(ctx context.Context, id string) (domain.Workspace, error) {
	var w domain.Workspace
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, url, owner_id, created_at, updated_at FROM workspaces WHERE id = ?`, id,
	).Scan(&w.ID, &w.Name, &w.URL, &w.OwnerID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return domain.Workspace{}, mapNotFound(err)
	}
	return w, nil
}

func (r *workspacesRepo) ListWorkspacesForUser(ctx context.Context, userID string) ([]domain.WorkspaceView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT w.id, w.name, w.url, w.owner_id, w.created_at, w.updated_at, m.role, m.status
		FROM workspaces w
		LEFT JOIN memberships m ON m.workspace_id = w.id AND m.user_id = ?
		WHERE w.owner_id = ? OR m.user_id IS NOT NULL
		ORDER BY w.created_at, w.id`,
		userID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.WorkspaceView
	for rows.Next() {
		var (
			v            domain.WorkspaceView
			role, status sql.NullString
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.URL, &v.OwnerID, &v.CreatedAt, &v.UpdatedAt, &role, &status); err != nil {
			return nil, err
		}
		v.Role = domain.Role(mapNullString(role))
		v.Status = domain.InviteStatus(mapNullString(status))
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *workspacesRepo) DeleteWorkspace(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM workspaces WHERE id = ?`, id))
}
