package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type Config struct {
	JWTSecret string        `envconfig:"JWT_SECRET" default:"change-me"`
	TokenTTL  time.Duration `envconfig:"JWT_TTL" default:"24h"`
}

type Profile struct {
	UserID   int64  `json:"userID"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

var (
	ErrNoProfile    = errors.New("auth profile is empty")
	ErrInvalidToken = errors.New("invalid token")
)

type contextKey int

const (
	profileKey contextKey = iota + 1
	sessionKey
)

func SetAuthContext(ctx context.Context, profile Profile, sessionID string) context.Context {
	ctx = context.WithValue(ctx, profileKey, profile)
	return context.WithValue(ctx, sessionKey, sessionID)
}

func GetProfile(ctx context.Context) (Profile, error) {
	p, ok := ctx.Value(profileKey).(Profile)
	if !ok {
		return Profile{}, ErrNoProfile
	}
	return p, nil
}

func GetSessionID(ctx context.Context) (string, error) {
	sid, ok := ctx.Value(sessionKey).(string)
	if !ok || sid == "" {
		return "", ErrNoProfile
	}
	return sid, nil
}

// Manager issues and verifies HS256 tokens. The token id doubles as the session id.
type Manager struct {
	key []byte
	ttl time.Duration
}

func NewManager(cfg Config) *Manager {
	return &Manager{key: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL}
}

func (m *Manager) TTL() time.Duration {
	return m.ttl
}

func (m *Manager) Issue(profile Profile, now time.Time) (string, Claims, error) {
	claims := Claims{
		Profile: profile,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   profile.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", Claims{}, errors.Wrap(err, "sign token")
	}
	return token, claims, nil
}

func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.key, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
