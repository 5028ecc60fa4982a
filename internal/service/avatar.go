package service

import (
	"context"

	"github.com/rs/zerolog"

	"medialist/api/internal/media"
	"medialist/api/internal/models"
)

type AvatarService struct {
	users    UserStore
	cache    AvatarCache
	maxBytes int64
	log      zerolog.Logger
}

func NewAvatarService(users UserStore, cache AvatarCache, maxBytes int64, log zerolog.Logger) *AvatarService {
	return &AvatarService{
		users:    users,
		cache:    cache,
		maxBytes: maxBytes,
		log:      log,
	}
}

// Set normalizes the upload and replaces any prior avatar. On any
// normalization failure nothing is persisted.
func (s *AvatarService) Set(ctx context.Context, user models.User, filename string, data []byte) error {
	normalized, err := media.NormalizeAvatar(filename, data, s.maxBytes)
	if err != nil {
		return err
	}

	if err := s.users.SetAvatar(ctx, user.ID, normalized); err != nil {
		return err
	}

	s.cache.Set(ctx, user.Username, normalized)
	return nil
}

// Get serves the stored avatar bytes for a public username lookup.
func (s *AvatarService) Get(ctx context.Context, username string) ([]byte, error) {
	if data, ok := s.cache.Get(ctx, username); ok {
		return data, nil
	}

	data, err := s.users.AvatarByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, username, data)
	return data, nil
}

func (s *AvatarService) Clear(ctx context.Context, user models.User) error {
	if err := s.users.ClearAvatar(ctx, user.ID); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, user.Username)
	return nil
}
