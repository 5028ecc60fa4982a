package service

import (
	"context"

	"medialist/api/internal/models"
)

// Store contracts consumed by the services. The repository package provides
// the postgres implementations; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByUsername(ctx context.Context, username string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
	Update(ctx context.Context, user models.User) error
	Delete(ctx context.Context, id string) error
	SetAvatar(ctx context.Context, id string, avatar []byte) error
	ClearAvatar(ctx context.Context, id string) error
	AvatarByUsername(ctx context.Context, username string) ([]byte, error)
}

type TokenStore interface {
	Add(ctx context.Context, userID string, token string) error
	Exists(ctx context.Context, userID string, token string) (bool, error)
	Remove(ctx context.Context, userID string, token string) error
	RemoveAll(ctx context.Context, userID string) error
}

type FavoriteStore interface {
	List(ctx context.Context, userID string, filter models.MediaType) ([]models.Favorite, error)
	Exists(ctx context.Context, userID string, tmdbID string, mediaType models.MediaType) (bool, error)
	Add(ctx context.Context, userID string, fav models.Favorite) error
	Remove(ctx context.Context, userID string, tmdbID string, mediaType models.MediaType) error
}

// AvatarCache is best-effort; implementations must never fail a request.
type AvatarCache interface {
	Get(ctx context.Context, username string) ([]byte, bool)
	Set(ctx context.Context, username string, data []byte)
	Invalidate(ctx context.Context, username string)
}
