package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
)

type sprintsRepo struct{ db dbtx }

var _ store.Sprints = (*sprintsRepo)(nil)

const sprintColumns = `s.id, s.project_id, s.name, s.status, s.start_date, s.end_date, s.created_at, s.updated_at`

func scanSprint(row interface{ Scan(...any) error }) (domain.Sprint, error) {
	var (
		s          domain.Sprint
		start, end sql.NullTime
	)
	if err := row.Scan(&s.ID, &s.ProjectID, &s.Name, &s.Status, &start, &end, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return domain.Sprint{}, err
	}
	s.StartDate = mapNullTimePtr(start)
	s.EndDate = mapNullTimePtr(end)
	return s, nil
}

func (r *sprintsRepo) list(ctx context.Context, query string, args ...any) ([]domain.Sprint, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Sprint
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *sprintsRepo) CreateSprint(ctx context.Context, s domain.Sprint) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sprints (id, project_id, name, status, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.ProjectID, s.Name, string(s.Status), mapOptionalTime(s.StartDate), mapOptionalTime(s.EndDate),
		s.CreatedAt.UTC(), s.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *sprintsRepo) GetSprint(ctx context.Context, id string) (domain.Sprint, error) {
	s, err := scanSprint(r.db.QueryRowContext(ctx, `SELECT `+sprintColumns+` FROM sprints s WHERE s.id = ?`, id))
	if err != nil {
		return domain.Sprint{}, mapNotFound(err)
	}
	return s, nil
}

func (r *sprintsRepo) ListSprintsByProject(ctx context.Context, projectID string) ([]domain.Sprint, error) {
	return r.list(ctx,
		`SELECT `+sprintColumns+` FROM sprints s WHERE s.project_id = ? ORDER BY s.created_at, s.id`, projectID)
}

func (r *sprintsRepo) ListSprintsByWorkspaces(ctx context.Context, workspaceIDs ...string) ([]domain.Sprint, error) {
	in, args := inClause(workspaceIDs)
	return r.list(ctx, `
		SELECT `+sprintColumns+`
		FROM sprints s
		JOIN projects p ON p.id = s.project_id
		WHERE p.workspace_id IN (`+in+`)
		ORDER BY s.created_at DESC, s.id DESC`,
		args...,
	)
}

func (r *sprintsRepo) UpdateSprint(ctx context.Context, s domain.Sprint) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE sprints SET name = ?, status = ?, start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`,
		s.Name, string(s.Status), mapOptionalTime(s.StartDate), mapOptionalTime(s.EndDate), s.UpdatedAt.UTC(), s.ID,
	))
}

func (r *sprintsRepo) DeleteSprint(ctx context.Context, id string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM sprints WHERE id = ?`, id))
}
