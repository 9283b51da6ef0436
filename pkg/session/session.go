package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinic-cms-backend/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session is the authenticated identity attached to a request after the
// external provider's token has been verified.
type Session struct {
	UserID  uuid.UUID
	Email   string
	TokenID string
}

// Verifier answers whether a session token from the external auth provider
// is valid, and for whom.
type Verifier interface {
	Verify(token string) (*Session, error)
}

// RevocationStore answers whether a verified session has been revoked
// out-of-band by the auth provider.
type RevocationStore interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service verifies session tokens issued by the external auth provider.
// Tokens are HS256 JWTs signed with the shared provider secret; the subject
// carries the user id and the jti the session id.
type Service struct {
	config config.SessionConfig
}

func NewService(cfg config.SessionConfig) *Service {
	return &Service{config: cfg}
}

func (s *Service) Verify(token string) (*Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid session token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid session subject: %w", err)
	}

	return &Session{
		UserID:  userID,
		Email:   claims.Email,
		TokenID: claims.ID,
	}, nil
}

// Issue mints a provider-shaped session token. Used by tests and local
// tooling; production tokens come from the auth provider itself.
func (s *Service) Issue(userID uuid.UUID, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

// RedisRevocationStore checks revoked session ids against the keys the auth
// provider maintains in redis.
type RedisRevocationStore struct {
	client *redis.Client
}

func NewRedisRevocationStore(client *redis.Client) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := fmt.Sprintf("session:revoked:%s", tokenID)
	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
