package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TokenRepository holds the set of session tokens currently issued to each
// user. Membership in this set is the sole authority on token validity;
// tokens carry no expiry and disappear only through logout or account
// deletion (cascade).
type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Add(ctx context.Context, userID string, token string) error {
	const query = `
		INSERT INTO session_tokens (token, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (token) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, token, userID)
	return err
}

func (r *TokenRepository) Exists(ctx context.Context, userID string, token string) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM session_tokens WHERE token = $1 AND user_id = $2
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, token, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TokenRepository) Remove(ctx context.Context, userID string, token string) error {
	const query = `DELETE FROM session_tokens WHERE token = $1 AND user_id = $2`
	_, err := r.pool.Exec(ctx, query, token, userID)
	return err
}

func (r *TokenRepository) RemoveAll(ctx context.Context, userID string) error {
	const query = `DELETE FROM session_tokens WHERE user_id = $1`
	_, err := r.pool.Exec(ctx, query, userID)
	return err
}
