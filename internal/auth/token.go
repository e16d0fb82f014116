// Package auth issues and verifies the bearer tokens that identify a user.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid token")
)

// Claims are the claims of a user token.
type Claims struct {
	jwt.RegisteredClaims

	UserID int64 `json:"user_id"`
}

type options struct {
	now func() time.Time
}

// Option configures an Issuer or a Verifier.
type Option func(*options)

// WithClock overrides the wall clock used for iat, exp and their validation.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Issuer signs HS256 user tokens.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	opts   options
}

// NewIssuer creates a new Issuer.
func NewIssuer(secret string, ttl time.Duration, opts ...Option) (*Issuer, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive: %s", ttl)
	}
	return &Issuer{secret: []byte(secret), ttl: ttl, opts: newOptions(opts)}, nil
}

// Issue returns a signed token for the user.
func (i *Issuer) Issue(userID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("user id must be positive: %d", userID)
	}

	now := i.opts.now().Truncate(time.Second)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		UserID: userID,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verifier checks HS256 user tokens.
type Verifier struct {
	secret []byte
	opts   options
}

// NewVerifier creates a new Verifier.
func NewVerifier(secret string, opts ...Option) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("token secret is empty")
	}
	return &Verifier{secret: []byte(secret), opts: newOptions(opts)}, nil
}

// Verify returns the user ID carried by a valid, unexpired token.
func (v *Verifier) Verify(token string) (int64, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.opts.now),
	)
	if err != nil {
		return 0, errors.Join(ErrInvalidToken, err)
	}
	if claims.UserID <= 0 {
		return 0, fmt.Errorf("%w: no user id claim", ErrInvalidToken)
	}
	return claims.UserID, nil
}

// ParseBearer extracts the token from an Authorization header value.
func ParseBearer(header string) (string, error) {
	if header == "" {
		return "", ErrMissingToken
	}
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", fmt.Errorf("%w: unsupported authorization scheme", ErrInvalidToken)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

type userIDKey struct{}

// WithUserID returns a context carrying the authenticated user.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserIDFromContext returns the authenticated user of the request.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey{}).(int64)
	return userID, ok
}
