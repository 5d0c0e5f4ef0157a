package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeRefresh marks refresh tokens. Access tokens carry no type claim.
const TokenTypeRefresh = "refresh"

// ErrInvalidToken is the single failure Verify reports, whatever the cause.
var ErrInvalidToken = errors.New("invalid token")

// JWTManager handles generation and validation of JWT tokens. One secret and
// one HMAC algorithm serve the whole service; tokens signed with anything
// else are rejected.
type JWTManager struct {
	secret     []byte
	method     jwt.SigningMethod
	AccessTTL  time.Duration
	RefreshTTL time.Duration

	now func() time.Time
}

func NewJWTManager(secret, algorithm string, accessTTL, refreshTTL time.Duration) (*JWTManager, error) {
	if secret == "" {
		return nil, errors.New("jwt: empty signing secret")
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("jwt: unsupported algorithm %q", algorithm)
	}
	return &JWTManager{
		secret:     []byte(secret),
		method:     method,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
		now:        time.Now,
	}, nil
}

// Algorithm returns the configured signing algorithm name.
func (m *JWTManager) Algorithm() string { return m.method.Alg() }

type Claims struct {
	Type string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// IsRefresh reports whether the claims belong to a refresh token.
func (c *Claims) IsRefresh() bool { return c.Type == TokenTypeRefresh }

// IsAccess reports whether the claims belong to an access token.
func (c *Claims) IsAccess() bool { return c.Type == "" }

func (m *JWTManager) GenerateAccessToken(subject string) (string, time.Time, error) {
	return m.issue(subject, "", m.AccessTTL)
}

// GenerateAccessTokenTTL issues an access token with an explicit lifetime.
func (m *JWTManager) GenerateAccessTokenTTL(subject string, ttl time.Duration) (string, time.Time, error) {
	return m.issue(subject, "", ttl)
}

func (m *JWTManager) GenerateRefreshToken(subject string) (string, time.Time, error) {
	return m.issue(subject, TokenTypeRefresh, m.RefreshTTL)
}

// GenerateRefreshTokenTTL issues a refresh token with an explicit lifetime.
func (m *JWTManager) GenerateRefreshTokenTTL(subject string, ttl time.Duration) (string, time.Time, error) {
	return m.issue(subject, TokenTypeRefresh, ttl)
}

func (m *JWTManager) issue(subject, typ string, ttl time.Duration) (string, time.Time, error) {
	exp := m.now().Add(ttl)
	claims := &Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	t := jwt.NewWithClaims(m.method, claims)
	s, err := t.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("jwt: sign token: %w", err)
	}
	return s, exp, nil
}

// ParseToken verifies signature, algorithm and expiry. It does not check the
// token type; callers decide which kind they accept.
func (m *JWTManager) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{m.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
