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

func newAuthFixture(secret string) (*Authenticator, *memUsers, *memTokens) {
	users := newMemUsers()
	tokens := newMemTokens()
	auth := NewAuthenticator(users, tokens, secret, zerolog.Nop())
	return auth, users, tokens
}

func seedUser(t *testing.T, users *memUsers) models.User {
	t.Helper()
	user := models.User{ID: "user-1", Name: "Ada", Username: "ada"}
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func TestIssueAndVerify(t *testing.T) {
	auth, users, _ := newAuthFixture("secret-a")
	user := seedUser(t, users)

	token, err := auth.IssueToken(context.Background(), user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := auth.Verify(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestVerify_RejectsForeignSignature(t *testing.T) {
	authA, users, _ := newAuthFixture("secret-a")
	user := seedUser(t, users)

	token, err := authA.IssueToken(context.Background(), user)
	require.NoError(t, err)

	authB, usersB, tokensB := newAuthFixture("secret-b")
	require.NoError(t, usersB.Create(context.Background(), user))
	require.NoError(t, tokensB.Add(context.Background(), user.ID, token))

	_, err = authB.Verify(context.Background(), token)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestVerify_RejectsMalformedToken(t *testing.T) {
	auth, _, _ := newAuthFixture("secret-a")

	_, err := auth.Verify(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestVerify_RejectsRevokedToken(t *testing.T) {
	auth, users, _ := newAuthFixture("secret-a")
	user := seedUser(t, users)

	token, err := auth.IssueToken(context.Background(), user)
	require.NoError(t, err)

	require.NoError(t, auth.Revoke(context.Background(), user, token))

	// Signature still checks out; the set membership is what fails.
	_, err = auth.Verify(context.Background(), token)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestRevokeAll(t *testing.T) {
	auth, users, tokens := newAuthFixture("secret-a")
	user := seedUser(t, users)

	tokenA, err := auth.IssueToken(context.Background(), user)
	require.NoError(t, err)
	require.NoError(t, tokens.Add(context.Background(), user.ID, "other-session"))

	require.NoError(t, auth.RevokeAll(context.Background(), user))

	_, err = auth.Verify(context.Background(), tokenA)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	ok, err := tokens.Exists(context.Background(), user.ID, "other-session")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_RejectsDeletedUser(t *testing.T) {
	auth, users, _ := newAuthFixture("secret-a")
	user := seedUser(t, users)

	token, err := auth.IssueToken(context.Background(), user)
	require.NoError(t, err)

	require.NoError(t, users.Delete(context.Background(), user.ID))

	_, err = auth.Verify(context.Background(), token)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}
