package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	svc, err := NewTokenService(TokenConfig{Secret: "s3cret", TTL: time.Hour})
	require.NoError(t, err)

	token, expiresAt, err := svc.Issue(42, "vet@farm.test")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "vet@farm.test", claims.Email)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, DefaultIssuer, claims.Issuer)
}

func TestVerifyExpired(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := issuedAt

	svc, err := NewTokenService(TokenConfig{Secret: "s3cret", TTL: time.Minute, Clock: func() time.Time { return now }})
	require.NoError(t, err)

	token, _, err := svc.Issue(1, "")
	require.NoError(t, err)

	now = issuedAt.Add(2 * time.Minute)
	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_EdgeCases(t *testing.T) {
	svc, err := NewTokenService(TokenConfig{Secret: "s3cret"})
	require.NoError(t, err)

	{
		_, err := svc.Verify("")
		assert.ErrorIs(t, err, ErrInvalidToken)
	}

	{
		_, err := svc.Verify("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	}

	{
		other, err := NewTokenService(TokenConfig{Secret: "another"})
		require.NoError(t, err)
		token, _, err := other.Issue(1, "")
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "signature from a different secret must fail")
	}

	{
		other, err := NewTokenService(TokenConfig{Secret: "s3cret", Issuer: "someone-else"})
		require.NoError(t, err)
		token, _, err := other.Issue(1, "")
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "foreign issuer must fail")
	}

	{
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"uid": 1, "iss": DefaultIssuer})
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "alg=none must be rejected")
	}

	{
		_, _, err := svc.Issue(0, "")
		assert.Error(t, err)
	}

	{
		_, err := NewTokenService(TokenConfig{})
		assert.Error(t, err)
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("moo-moo-123")
	require.NoError(t, err)
	assert.NotEqual(t, "moo-moo-123", hash)
	assert.True(t, CheckPassword(hash, "moo-moo-123"))
	assert.False(t, CheckPassword(hash, "wrong"))

	_, err = HashPassword("abc")
	assert.Error(t, err)
}
