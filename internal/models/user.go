package models

import "time"

type MediaType string

const (
	MediaTypeMovie MediaType = "movie"
	MediaTypeTV    MediaType = "tv"
)

func (t MediaType) Valid() bool {
	return t == MediaTypeMovie || t == MediaTypeTV
}

// Favorite is one catalog entry recorded against a user. Entries are unique
// per user on the (TmdbID, Type) pair.
type Favorite struct {
	TmdbID string    `json:"tmdbID"`
	Type   MediaType `json:"type"`
}

type User struct {
	ID           string
	Name         string
	Username     string
	PasswordHash []byte
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
