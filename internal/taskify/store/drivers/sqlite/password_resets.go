package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskify/internal/taskify/domain"
	"github.com/aussiebroadwan/taskify/internal/taskify/store"
)

type passwordResetsRepo struct{ db dbtx }

var _ store.PasswordResets = (*passwordResetsRepo)(nil)

func (r *passwordResetsRepo) CreatePasswordReset(ctx context.Context, pr domain.PasswordReset) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO password_resets (token_hash, user_id, expires_at, created_at) VALUES (?, ?, ?, ?)`,
		pr.TokenHash, pr.UserID, pr.ExpiresAt.UTC(), pr.CreatedAt.UTC(),
	)
	return mapConstraint(err)
}

func (r *passwordResetsRepo) GetPasswordReset(ctx context.Context, tokenHash string) (domain.PasswordReset, error) {
	var pr domain.PasswordReset
	err := r.db.QueryRowContext(ctx,
		`SELECT token_hash, user_id, expires_at, created_at FROM password_resets WHERE token_hash = ?`, tokenHash,
	).Scan(&pr.TokenHash, &pr.UserID, &pr.ExpiresAt, &pr.CreatedAt)
	if err != nil {
		return domain.PasswordReset{}, mapNotFound(err)
	}
	return pr, nil
}

func (r *passwordResetsRepo) DeletePasswordReset(ctx context.Context, tokenHash string) error {
	return requireAffected(r.db.ExecContext(ctx, `DELETE FROM password_resets WHERE token_hash = ?`, tokenHash))
}

func (r *passwordResetsRepo) DeleteUserPasswordResets(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM password_resets WHERE user_id = ?`, userID)
	return err
}

func (r *passwordResetsRepo) DeleteExpiredPasswordResets(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM password_resets WHERE expires_at < ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
