package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medialist/api/internal/apperr"
	"medialist/api/internal/models"
)

func newFavoriteFixture() (*FavoriteService, *memFavorites, models.User) {
	favs := newMemFavorites()
	svc := NewFavoriteService(favs, zerolog.Nop())
	user := models.User{ID: "user-1", Username: "ada"}
	return svc, favs, user
}

func addPayload(tmdbID, mediaType string) map[string]any {
	return map[string]any{"tmdbID": tmdbID, "type": mediaType}
}

func TestAdd_RejectsInvalidType(t *testing.T) {
	svc, _, user := newFavoriteFixture()

	err := svc.Add(context.Background(), user, addPayload("603", "music"))
	assert.ErrorIs(t, err, apperr.ErrInvalidType)

	err = svc.Add(context.Background(), user, map[string]any{"tmdbID": "603"})
	assert.ErrorIs(t, err, apperr.ErrInvalidType)
}

func TestAdd_RejectsUnknownField(t *testing.T) {
	svc, _, user := newFavoriteFixture()

	err := svc.Add(context.Background(), user, map[string]any{
		"tmdbID": "603",
		"type":   "movie",
		"rating": 5,
	})
	assert.ErrorIs(t, err, apperr.ErrUnknownField)
}

func TestAdd_RejectsWhitespaceIdentifier(t *testing.T) {
	svc, _, user := newFavoriteFixture()

	err := svc.Add(context.Background(), user, addPayload("60 3", "movie"))
	assert.ErrorIs(t, err, apperr.ErrInvalidIdentifier)
}

func TestAdd_DuplicatePairRejected(t *testing.T) {
	svc, _, user := newFavoriteFixture()

	require.NoError(t, svc.Add(context.Background(), user, addPayload("603", "movie")))

	err := svc.Add(context.Background(), user, addPayload("603", "movie"))
	assert.ErrorIs(t, err, apperr.ErrAlreadyFavorited)

	list, err := svc.List(context.Background(), user, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAdd_SameIDDifferentTypeAllowed(t *testing.T) {
	svc, _, user := newFavoriteFixture()

	require.NoError(t, svc.Add(context.Background(), user, addPayload("603", "movie")))
	require.NoError(t, svc.Add(context.Background(), user, addPayload("603", "tv")))

	list, err := svc.List(context.Background(), user, "")
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestList_FilterByType(t *testing.T) {
	svc, _, user := newFavoriteFixture()

	require.NoError(t, svc.Add(context.Background(), user, addPayload("603", "movie")))
	require.NoError(t, svc.Add(context.Background(), user, addPayload("1399", "tv")))

	movies, err := svc.List(context.Background(), user, "movie")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "603", movies[0].TmdbID)

	_, err = svc.List(context.Background(), user, "music")
	assert.ErrorIs(t, err, apperr.ErrInvalidType)
}

func TestRemove_IsIdempotent(t *testing.T) {
	svc, _, user := newFavoriteFixture()

	require.NoError(t, svc.Add(context.Background(), user, addPayload("603", "movie")))

	// Removing an entry that was never added succeeds and changes nothing.
	require.NoError(t, svc.Remove(context.Background(), user, "9999", "movie"))

	list, err := svc.List(context.Background(), user, "")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Remove(context.Background(), user, "603", "movie"))
	require.NoError(t, svc.Remove(context.Background(), user, "603", "movie"))

	list, err = svc.List(context.Background(), user, "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRemove_MatchesBothFields(t *testing.T) {
	svc, _, user := newFavoriteFixture()

	require.NoError(t, svc.Add(context.Background(), user, addPayload("603", "movie")))
	require.NoError(t, svc.Add(context.Background(), user, addPayload("603", "tv")))

	require.NoError(t, svc.Remove(context.Background(), user, "603", "movie"))

	list, err := svc.List(context.Background(), user, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.MediaTypeTV, list[0].Type)
}
