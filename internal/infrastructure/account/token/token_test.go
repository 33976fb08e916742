package token

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/champions-tracker/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc, err := NewJWTService(Config{Secret: "s3cret", Issuer: "champions-tracker", TTL: time.Hour})
	require.NoError(t, err)

	signed, err := svc.IssueAccessToken(context.Background(), 42)
	require.NoError(t, err)

	principal, err := svc.VerifyAccessToken(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), principal.UserID)
}

func TestJWTServiceRejectsInvalidTokens(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	svc, err := NewJWTService(Config{Secret: "s3cret", TTL: time.Minute})
	require.NoError(t, err)
	svc.now = func() time.Time { return now }

	expired, err := svc.IssueAccessToken(context.Background(), 1)
	require.NoError(t, err)

	other, err := NewJWTService(Config{Secret: "other"})
	require.NoError(t, err)
	foreign, err := other.IssueAccessToken(context.Background(), 1)
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"id": 1}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	svc.now = func() time.Time { return now.Add(2 * time.Minute) }

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: "  "},
		{name: "garbage", token: "not-a-jwt"},
		{name: "expired", token: expired},
		{name: "wrong secret", token: foreign},
		{name: "none algorithm", token: noneAlg},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccessToken(context.Background(), tt.token)
			assert.ErrorIs(t, err, usecase.ErrUnauthorized)
		})
	}
}

func TestNewJWTServiceRequiresSecret(t *testing.T) {
	_, err := NewJWTService(Config{Secret: " "})
	assert.Error(t, err)
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.NoError(t, hasher.Compare(hash, "correct horse"))
	assert.ErrorIs(t, hasher.Compare(hash, "wrong horse"), usecase.ErrUnauthorized)
	assert.Error(t, hasher.Compare("not-a-hash", "correct horse"))
}
