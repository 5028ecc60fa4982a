package service

import (
	"context"

	"medialist/api/internal/apperr"
	"medialist/api/internal/models"
)

// In-memory store fakes shared by the service tests.

type memUsers struct {
	users   map[string]models.User
	avatars map[string][]byte
}

func newMemUsers() *memUsers {
	return &memUsers{
		users:   make(map[string]models.User),
		avatars: make(map[string][]byte),
	}
}

func (m *memUsers) Create(_ context.Context, user models.User) error {
	for _, existing := range m.users {
		if existing.Username == user.Username {
			return apperr.ErrDuplicateUsername
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUsers) FindByUsername(_ context.Context, username string) (models.User, error) {
	for _, user := range m.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, apperr.ErrUserNotFound
}

func (m *memUsers) GetByID(_ context.Context, id string) (models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return models.User{}, apperr.ErrUserNotFound
	}
	return user, nil
}

func (m *memUsers) Update(_ context.Context, user models.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return apperr.ErrUserNotFound
	}
	for _, existing := range m.users {
		if existing.ID != user.ID && existing.Username == user.Username {
			return apperr.ErrDuplicateUsername
		}
	}
	m.users[user.ID] = user
	return nil
}

func (m *memUsers) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return apperr.ErrUserNotFound
	}
	delete(m.users, id)
	delete(m.avatars, id)
	return nil
}

func (m *memUsers) SetAvatar(_ context.Context, id string, avatar []byte) error {
	if _, ok := m.users[id]; !ok {
		return apperr.ErrUserNotFound
	}
	m.avatars[id] = avatar
	return nil
}

func (m *memUsers) ClearAvatar(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return apperr.ErrUserNotFound
	}
	delete(m.avatars, id)
	return nil
}

func (m *memUsers) AvatarByUsername(_ context.Context, username string) ([]byte, error) {
	for id, user := range m.users {
		if user.Username == username {
			if avatar, ok := m.avatars[id]; ok {
				return avatar, nil
			}
			return nil, apperr.ErrAvatarNotFound
		}
	}
	return nil, apperr.ErrUserNotFound
}

type memTokens struct {
	byUser map[string]map[string]struct{}
}

func newMemTokens() *memTokens {
	return &memTokens{byUser: make(map[string]map[string]struct{})}
}

func (m *memTokens) Add(_ context.Context, userID string, token string) error {
	if m.byUser[userID] == nil {
		m.byUser[userID] = make(map[string]struct{})
	}
	m.byUser[userID][token] = struct{}{}
	return nil
}

func (m *memTokens) Exists(_ context.Context, userID string, token string) (bool, error) {
	_, ok := m.byUser[userID][token]
	return ok, nil
}

func (m *memTokens) Remove(_ context.Context, userID string, token string) error {
	delete(m.byUser[userID], token)
	return nil
}

func (m *memTokens) RemoveAll(_ context.Context, userID string) error {
	delete(m.byUser, userID)
	return nil
}

type memFavorites struct {
	byUser map[string][]models.Favorite
}

func newMemFavorites() *memFavorites {
	return &memFavorites{byUser: make(map[string][]models.Favorite)}
}

func (m *memFavorites) List(_ context.Context, userID string, filter models.MediaType) ([]models.Favorite, error) {
	out := make([]models.Favorite, 0)
	for _, fav := range m.byUser[userID] {
		if filter == "" || fav.Type == filter {
			out = append(out, fav)
		}
	}
	return out, nil
}

func (m *memFavorites) Exists(_ context.Context, userID string, tmdbID string, mediaType models.MediaType) (bool, error) {
	for _, fav := range m.byUser[userID] {
		if fav.TmdbID == tmdbID && fav.Type == mediaType {
			return true, nil
		}
	}
	return false, nil
}

func (m *memFavorites) Add(_ context.Context, userID string, fav models.Favorite) error {
	m.byUser[userID] = append(m.byUser[userID], fav)
	return nil
}

func (m *memFavorites) Remove(_ context.Context, userID string, tmdbID string, mediaType models.MediaType) error {
	kept := m.byUser[userID][:0]
	for _, fav := range m.byUser[userID] {
		if fav.TmdbID != tmdbID || fav.Type != mediaType {
			kept = append(kept, fav)
		}
	}
	m.byUser[userID] = kept
	return nil
}

type memAvatarCache struct {
	data map[string][]byte
}

func newMemAvatarCache() *memAvatarCache {
	return &memAvatarCache{data: make(map[string][]byte)}
}

func (m *memAvatarCache) Get(_ context.Context, username string) ([]byte, bool) {
	data, ok := m.data[username]
	return data, ok
}

func (m *memAvatarCache) Set(_ context.Context, username string, data []byte) {
	m.data[username] = data
}

func (m *memAvatarCache) Invalidate(_ context.Context, username string) {
	delete(m.data, username)
}
