package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("engine-1843")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(hash), "$argon2id$"))

	ok, err := VerifyPassword("engine-1843", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("not-the-secret", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	first, err := HashPassword("engine-1843")
	require.NoError(t, err)
	second, err := HashPassword("engine-1843")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	for _, encoded := range []string{
		"plaintext-left-over",
		"$argon2id$v=19$t=3,m=65536,p=2$only-one-trailing-segment",
		"$argon2i$v=19$t=3,m=65536,p=2$c2FsdA==$aGFzaA==",
		"$argon2id$v=19$t=x,m=65536,p=2$c2FsdA==$aGFzaA==",
	} {
		_, err := VerifyPassword("whatever", []byte(encoded))
		assert.Error(t, err, encoded)
	}
}

// The encoding is dollar-delimited with base64 segments that Sscanf-style
// whitespace tokenizing cannot separate; the parser must split on "$".
func TestVerifyPassword_ParsesEveryProducedEncoding(t *testing.T) {
	for _, password := range []string{"engine-1843", "a", strings.Repeat("long-passphrase ", 8)} {
		hash, err := HashPassword(password)
		require.NoError(t, err)

		parts := strings.Split(string(hash), "$")
		require.Len(t, parts, 6)

		ok, err := VerifyPassword(password, hash)
		require.NoError(t, err, "hash %q must parse", hash)
		assert.True(t, ok)
	}
}
