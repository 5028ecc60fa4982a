package service

import (
	"context"
	"regexp"

	"github.com/rs/zerolog"

	"medialist/api/internal/apperr"
	"medialist/api/internal/models"
)

var whitespacePattern = regexp.MustCompile(`\s`)

type FavoriteService struct {
	favs FavoriteStore
	log  zerolog.Logger
}

func NewFavoriteService(favs FavoriteStore, log zerolog.Logger) *FavoriteService {
	return &FavoriteService{favs: favs, log: log}
}

var favoriteFields = map[string]struct{}{
	"tmdbID": {},
	"type":   {},
}

// Add records a new favorite from the raw request payload. Checks run in
// order: media type, payload keys, identifier shape, duplicate pair.
func (s *FavoriteService) Add(ctx context.Context, user models.User, fields map[string]any) error {
	rawType, _ := fields["type"].(string)
	mediaType := models.MediaType(rawType)
	if !mediaType.Valid() {
		return apperr.ErrInvalidType
	}

	for key := range fields {
		if _, ok := favoriteFields[key]; !ok {
			return apperr.ErrUnknownField
		}
	}

	tmdbID, ok := fields["tmdbID"].(string)
	if !ok {
		return apperr.ErrValidation
	}
	if whitespacePattern.MatchString(tmdbID) {
		return apperr.ErrInvalidIdentifier
	}

	exists, err := s.favs.Exists(ctx, user.ID, tmdbID, mediaType)
	if err != nil {
		return err
	}
	if exists {
		return apperr.ErrAlreadyFavorited
	}

	return s.favs.Add(ctx, user.ID, models.Favorite{TmdbID: tmdbID, Type: mediaType})
}

// List returns the user's favorites, optionally narrowed to one media type.
func (s *FavoriteService) List(ctx context.Context, user models.User, filter string) ([]models.Favorite, error) {
	mediaType := models.MediaType(filter)
	if filter != "" && !mediaType.Valid() {
		return nil, apperr.ErrInvalidType
	}
	return s.favs.List(ctx, user.ID, mediaType)
}

// Remove is idempotent; removing an entry that was never added succeeds.
func (s *FavoriteService) Remove(ctx context.Context, user models.User, tmdbID string, mediaType string) error {
	return s.favs.Remove(ctx, user.ID, tmdbID, models.MediaType(mediaType))
}
