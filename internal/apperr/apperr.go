// Package apperr holds the sentinel errors shared by repositories, services
// and the HTTP boundary. Handlers map them to fixed response bodies; nothing
// beyond the sentinel itself crosses the wire.
package apperr

import "errors"

var (
	ErrValidation        = errors.New("invalid user data")
	ErrDuplicateUsername = errors.New("username already taken")
	ErrUserNotFound      = errors.New("user not found")
	ErrLoginFailed       = errors.New("login failed")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrUnknownField      = errors.New("unknown field")

	ErrInvalidType       = errors.New("invalid media type")
	ErrInvalidIdentifier = errors.New("invalid catalog identifier")
	ErrAlreadyFavorited  = errors.New("already favorited")

	ErrAvatarNotFound   = errors.New("avatar not found")
	ErrUnsupportedMedia = errors.New("unsupported media")
	ErrTooLarge         = errors.New("file too large")
	ErrBadImage         = errors.New("unable to process image")
)
