package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
)

type projectsRepo struct{ db dbtx }

var _ store.Projects = (*projectsRepo)(nil)

const projectColumns = `id, workspace_id, name, key, description, created_at, updated_at`

func scanProject(row interface{ Scan(...any) error }) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.WorkspaceID, &p.Name, &p.Key, &p.Description, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (`+projectColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.WorkspaceID, p.Name, p.Key, p.Description, p.CreatedAt.UTC(), p.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *projectsRepo) GetProject(ctx context.Context, id string) (domain.Project, error) {
	p, err := scanProject(r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id))
	if err != nil {
		return domain.Project{}, mapNotFound(err)
	}
	return p, nil
}

func (r *projectsRepo) ListProjects(ctx context.Context, workspaceIDs ...string) ([]domain.Project, error) {
	in, args := inClause(workspaceIDs)
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE workspace_id IN (`+in+`) ORDER BY created_at DESC, id DESC`,
		args...,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateProject writes name and description. The workspace is immutable.
func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, updated_at = ? WHERE id = ?`,
		p.Name, p.Description, p.UpdatedAt.UTC(), p.ID,
	))
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id))
}

func (r *projectsRepo) NextTicketNumber(ctx context.Context, projectID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`UPDATE projects SET issue_seq = issue_seq + 1, updated_at = ? WHERE id = ? RETURNING issue_seq`,
		time.Now().UTC(), projectID,
	).Scan(&n)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return n, nil
}
