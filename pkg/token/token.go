// Package token issues and verifies HS256 JWT access tokens.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Config struct {
	Secret    string
	Issuer    string
	AccessTTL time.Duration
}

type Manager struct {
	cfg Config
}

func New(cfg Config) (*Manager, error) {
	if cfg.Secret == "" {
		return nil, ErrConfig{Msg: "Secret is required"}
	}
	if cfg.Issuer == "" {
		cfg.Issuer = "bookwise"
	}
	if cfg.AccessTTL <= 0 {
		cfg.AccessTTL = 60 * time.Minute
	}
	return &Manager{cfg: cfg}, nil
}

// Claims is the JWT payload for access tokens. It implements
// reqctx.AuthClaims so middleware can store it in the request context.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) GetUserID() uuid.UUID { return c.UserID }

func (c *Claims) GetRole() string { return c.Role }

func (c *Claims) IsExpired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().After(c.ExpiresAt.Time)
}

// Generate signs a new access token for the given user.
func (m *Manager) Generate(userID uuid.UUID, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.cfg.Issuer,
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.AccessTTL)),
			ID:        uuid.NewString(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", ErrSign{Err: err}
	}
	return signed, nil
}

// Verify parses and validates a signed token, returning its claims.
func (m *Manager) Verify(signed string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken{Reason: "unexpected signing method"}
		}
		return []byte(m.cfg.Secret), nil
	},
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrInvalidToken{Reason: err.Error()}
	}
	if !tok.Valid {
		return nil, ErrInvalidToken{Reason: "token is not valid"}
	}
	return claims, nil
}
