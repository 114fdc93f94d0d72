package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
)

type membershipsRepo struct{ db dbtx }

var _ store.Memberships = (*membershipsRepo)(nil)

const membershipColumns = `m.workspace_id, m.user_id, m.role, m.status, m.invited_by, m.created_at, m.updated_at`

func scanMembership(row interface{ Scan(...any) error }, extra ...any) (domain.Membership, error) {
	var (
		m         domain.Membership
		invitedBy sql.NullString
	)
	dest := append([]any{&m.WorkspaceID, &m.UserID, &m.Role, &m.Status, &invitedBy, &m.CreatedAt, &m.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Membership{}, err
	}
	m.InvitedBy = mapNullString(invitedBy)
	return m, nil
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memberships (workspace_id, user_id, role, status, invited_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.WorkspaceID, m.UserID, string(m.Role), string(m.Status), mapStringNull(m.InvitedBy),
		m.CreatedAt.UTC(), m.UpdatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, workspaceID, userID string) (domain.Membership, error) {
	m, err := scanMembership(r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships m WHERE m.workspace_id = ? AND m.user_id = ?`,
		workspaceID, userID,
	))
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) ListMembers(ctx context.Context, workspaceID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+membershipColumns+`, u.email, u.name
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		WHERE m.workspace_id = ?
		ORDER BY m.created_at, u.email`,
		workspaceID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Member
	for rows.Next() {
		var mem domain.Member
		m, err := scanMembership(rows, &mem.Email, &mem.Name)
		if err != nil {
			return nil, err
		}
		mem.Membership = m
		out = append(out, mem)
	}
	return out, rows.Err()
}

func (r *membershipsRepo) ListMembershipsByUser(ctx context.Context, userID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships m WHERE m.user_id = ? ORDER BY m.created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *membershipsRepo) ListPendingInvites(ctx context.Context, userID string) ([]domain.PendingInvite, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT m.workspace_id, w.name, m.role, m.invited_by, m.created_at
		FROM memberships m
		JOIN workspaces w ON w.id = m.workspace_id
		WHERE m.user_id = ? AND m.status = 'PENDING'
		ORDER BY m.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PendingInvite
	for rows.Next() {
		var (
			p         domain.PendingInvite
			invitedBy sql.NullString
		)
		if err := rows.Scan(&p.WorkspaceID, &p.WorkspaceName, &p.Role, &invitedBy, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.InvitedBy = mapNullString(invitedBy)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *membershipsRepo) UpdateMembershipRole(ctx context.Context, workspaceID, userID string, role domain.Role) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE memberships SET role = ?, updated_at = ? WHERE workspace_id = ? AND user_id = ?`,
		string(role), time.Now().UTC(), workspaceID, userID,
	))
}

func (r *membershipsRepo) UpdateMembershipStatus(ctx context.Context, workspaceID, userID string, from, to domain.InviteStatus) error {
	return requireAffected(r.db.ExecContext(ctx,
		`UPDATE memberships SET status = ?, updated_at = ? WHERE workspace_id = ? AND user_id = ? AND status = ?`,
		string(to), time.Now().UTC(), workspaceID, userID, string(from),
	))
}

func (r *membershipsRepo) DeletePendingMembership(ctx context.Context, workspaceID, userID string) error {
	return requireAffected(r.db.ExecContext(ctx,
		`DELETE FROM memberships WHERE workspace_id = ? AND user_id = ? AND status = 'PENDING'`,
		workspaceID, userID,
	))
}
