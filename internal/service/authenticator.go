package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"medialist/api/internal/apperr"
	"medialist/api/internal/models"
	"medialist/api/internal/security"
)

// Authenticator owns the session-token lifecycle. A token is valid only when
// its signature checks out AND the exact token string is still present in
// the user's server-side token set.
type Authenticator struct {
	users  UserStore
	tokens TokenStore
	secret string
	log    zerolog.Logger
}

func NewAuthenticator(users UserStore, tokens TokenStore, secret string, log zerolog.Logger) *Authenticator {
	return &Authenticator{
		users:  users,
		tokens: tokens,
		secret: secret,
		log:    log,
	}
}

// IssueToken signs a session token for the user and persists it. Failures
// surface to the caller unretried.
func (a *Authenticator) IssueToken(ctx context.Context, user models.User) (string, error) {
	token, err := security.SignSessionToken(a.secret, user.ID)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	if err := a.tokens.Add(ctx, user.ID, token); err != nil {
		return "", fmt.Errorf("persist session token: %w", err)
	}
	return token, nil
}

// Verify resolves the acting user for a presented token. Every failure mode
// collapses to ErrUnauthenticated so callers cannot tell which check failed.
func (a *Authenticator) Verify(ctx context.Context, token string) (models.User, error) {
	userID, err := security.ParseSessionToken(token, a.secret)
	if err != nil {
		return models.User{}, apperr.ErrUnauthenticated
	}

	user, err := a.users.GetByID(ctx, userID)
	if err != nil {
		return models.User{}, apperr.ErrUnauthenticated
	}

	ok, err := a.tokens.Exists(ctx, user.ID, token)
	if err != nil {
		a.log.Error().Err(err).Str("user_id", user.ID).Msg("token lookup failed")
		return models.User{}, apperr.ErrUnauthenticated
	}
	if !ok {
		return models.User{}, apperr.ErrUnauthenticated
	}

	return user, nil
}

func (a *Authenticator) Revoke(ctx context.Context, user models.User, token string) error {
	return a.tokens.Remove(ctx, user.ID, token)
}

func (a *Authenticator) RevokeAll(ctx context.Context, user models.User) error {
	return a.tokens.RemoveAll(ctx, user.ID)
}
