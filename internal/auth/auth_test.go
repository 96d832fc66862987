package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokens_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewTokens("", "market")
	assert.Error(t, err)
}

func TestIssueVerify(t *testing.T) {
	t.Parallel()

	tokens, err := NewTokens("s3cret", "market")
	require.NoError(t, err)

	signed, err := tokens.Issue(42)
	require.NoError(t, err)

	userID, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	tokens, err := NewTokens("s3cret", "market", WithTTL(time.Hour), WithNowFunc(func() time.Time { return now }))
	require.NoError(t, err)

	expired, err := NewTokens("s3cret", "market", WithTTL(time.Minute),
		WithNowFunc(func() time.Time { return now.Add(-2 * time.Hour) }))
	require.NoError(t, err)

	otherKey, err := NewTokens("other", "market")
	require.NoError(t, err)

	otherIssuer, err := NewTokens("s3cret", "elsewhere")
	require.NoError(t, err)

	sign := func(issuer *Tokens, userID int64) string {
		s, err := issuer.Issue(userID)
		require.NoError(t, err)
		return s
	}

	nonNumeric, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		Issuer:    "market",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "1",
		Issuer:  "market",
	}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "expired", token: sign(expired, 1)},
		{name: "wrong key", token: sign(otherKey, 1)},
		{name: "wrong issuer", token: sign(otherIssuer, 1)},
		{name: "non-numeric subject", token: nonNumeric},
		{name: "no expiry", token: noExpiry},
		{name: "zero user", token: sign(tokens, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := tokens.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestViewerContext(t *testing.T) {
	t.Parallel()

	assert.Nil(t, ViewerFrom(context.Background()))

	ctx := WithViewer(context.Background(), 7)
	viewer := ViewerFrom(ctx)
	require.NotNil(t, viewer)
	assert.Equal(t, int64(7), *viewer)
}
