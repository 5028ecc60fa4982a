package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"medialist/api/internal/models"
)

type FavoriteRepository struct {
	pool *pgxpool.Pool
}

func NewFavoriteRepository(pool *pgxpool.Pool) *FavoriteRepository {
	return &FavoriteRepository{pool: pool}
}

// List returns the user's favorites in insertion order. An empty filter
// returns everything.
func (r *FavoriteRepository) List(ctx context.Context, userID string, filter models.MediaType) ([]models.Favorite, error) {
	const query = `
		SELECT tmdb_id, media_type
		FROM favorites
		WHERE user_id = $1 AND ($2 = '' OR media_type = $2)
		ORDER BY seq
	`

	rows, err := r.pool.Query(ctx, query, userID, string(filter))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	favorites := make([]models.Favorite, 0)
	for rows.Next() {
		var fav models.Favorite
		if err := rows.Scan(&fav.TmdbID, &fav.Type); err != nil {
			return nil, err
		}
		favorites = append(favorites, fav)
	}
	return favorites, rows.Err()
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID string, tmdbID string, mediaType models.MediaType) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM favorites
			WHERE user_id = $1 AND tmdb_id = $2 AND media_type = $3
		)
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, tmdbID, string(mediaType)).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *FavoriteRepository) Add(ctx context.Context, userID string, fav models.Favorite) error {
	const query = `
		INSERT INTO favorites (user_id, tmdb_id, media_type, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id, tmdb_id, media_type) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, userID, fav.TmdbID, string(fav.Type))
	return err
}

// Remove deletes the exact (tmdbID, mediaType) entry. Removing an absent
// entry is not an error.
func (r *FavoriteRepository) Remove(ctx context.Context, userID string, tmdbID string, mediaType models.MediaType) error {
	const query = `
		DELETE FROM favorites
		WHERE user_id = $1 AND tmdb_id = $2 AND media_type = $3
	`
	_, err := r.pool.Exec(ctx, query, userID, tmdbID, string(mediaType))
	return err
}
