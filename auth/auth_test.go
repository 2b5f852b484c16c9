package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T, secret string) *Authenticator {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	return New(Config{PasswordHash: string(hash), Secret: secret, TTL: time.Hour})
}

func TestLoginAndVerify(t *testing.T) {
	a := newTestAuthenticator(t, "signing-key")
	require.True(t, a.Enabled())

	token, expiresAt, err := a.Login("s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	assert.NoError(t, a.Verify(token))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	a := newTestAuthenticator(t, "signing-key")

	_, _, err := a.Login("nope")
	assert.ErrorIs(t, err, ErrBadCredentials)
}

func TestVerifyRejects(t *testing.T) {
	a := newTestAuthenticator(t, "signing-key")
	token, _, err := a.Login("s3cret")
	require.NoError(t, err)

	t.Run("garbage", func(t *testing.T) {
		assert.ErrorIs(t, a.Verify("not-a-token"), ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := newTestAuthenticator(t, "different-key")
		assert.ErrorIs(t, other.Verify(token), ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		later := newTestAuthenticator(t, "signing-key")
		later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		assert.ErrorIs(t, later.Verify(token), ErrInvalidToken)
	})
}

func TestDisabledWithoutConfig(t *testing.T) {
	a := New(Config{Secret: "only-secret"})
	assert.False(t, a.Enabled())

	_, _, err := a.Login("anything")
	assert.ErrorIs(t, err, ErrDisabled)
	assert.ErrorIs(t, a.Verify("anything"), ErrDisabled)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("pw")))
}
