// Package auth issues and verifies the bearer tokens that identify the
// viewer of a request.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for tokens that fail verification.
var ErrInvalidToken = errors.New("invalid token")

// DefaultTokenTTL is the lifetime of issued tokens when none is configured.
const DefaultTokenTTL = 24 * time.Hour

// Tokens signs and verifies HS256 tokens whose subject is a numeric user id.
type Tokens struct {
	secret  []byte
	issuer  string
	ttl     time.Duration
	nowFunc func() time.Time
}

// TokensOption configures Tokens.
type TokensOption func(*Tokens)

// WithTTL sets the lifetime of issued tokens.
func WithTTL(d time.Duration) TokensOption {
	return func(t *Tokens) {
		if d > 0 {
			t.ttl = d
		}
	}
}

// WithNowFunc overrides the clock (for testing).
func WithNowFunc(fn func() time.Time) TokensOption {
	return func(t *Tokens) {
		t.nowFunc = fn
	}
}

// NewTokens creates Tokens for the given secret and issuer.
func NewTokens(secret, issuer string, opts ...TokensOption) (*Tokens, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	t := &Tokens{
		secret:  []byte(secret),
		issuer:  issuer,
		ttl:     DefaultTokenTTL,
		nowFunc: time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Issue signs a token for userID.
func (t *Tokens) Issue(userID int64) (string, error) {
	now := t.nowFunc()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(userID, 10),
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, issuer and expiry of a token and returns the
// user id in its subject.
func (t *Tokens) Verify(token string) (int64, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.nowFunc),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, opts...)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: subject %q is not a user id", ErrInvalidToken, claims.Subject)
	}
	return userID, nil
}

type viewerKey struct{}

// WithViewer returns a context carrying the authenticated user id.
func WithViewer(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, viewerKey{}, userID)
}

// ViewerFrom returns the authenticated user id, or nil for anonymous
// requests.
func ViewerFrom(ctx context.Context) *int64 {
	id, ok := ctx.Value(viewerKey{}).(int64)
	if !ok {
		return nil
	}
	return &id
}
