package auth

import (
	"context"
	"time"

	"kitchenadmin/internal/domain"
	"kitchenadmin/internal/pkg/jwt"
)

// KitchenLogin is the only unauthenticated call the gateway makes.
type KitchenLogin interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// SessionStore persists the one piece of client state: the kitchen token.
type SessionStore interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}

// TokenSigner signs and checks the browser-facing session token.
type TokenSigner interface {
	GenerateToken(sessionID string) (string, error)
	ValidateToken(tokenStr string) (*jwt.Claims, error)
	TTL() time.Duration
}
