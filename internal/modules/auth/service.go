package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kitchenadmin/internal/domain"
)

type Service struct {
	api      KitchenLogin
	sessions SessionStore
	signer   TokenSigner
}

func NewService(api KitchenLogin, sessions SessionStore, signer TokenSigner) *Service {
	return &Service{api: api, sessions: sessions, signer: signer}
}

// LoginResult is what the login page gets back: a signed session token
// and when it stops working.
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Login proxies the credentials to the kitchen API. Its error comes back
// untouched so the login page can show the API's own message. On success
// the kitchen token is stored server-side and the browser only ever sees
// the signed session token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	apiToken, err := s.api.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	session := &domain.Session{
		ID:        uuid.NewString(),
		APIToken:  apiToken,
		Email:     req.Email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.signer.TTL()),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	signed, err := s.signer.GenerateToken(session.ID)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: signed, ExpiresAt: session.ExpiresAt}, nil
}

// Resolve maps a browser token to AuthState. Anything short of a signed
// token over a live stored session is simply absent; there are only two
// states, and pages never learn why a session was rejected.
func (s *Service) Resolve(ctx context.Context, tokenStr string) (*domain.Session, domain.AuthState) {
	if tokenStr == "" {
		return nil, domain.AuthAbsent
	}

	claims, err := s.signer.ValidateToken(tokenStr)
	if err != nil {
		return nil, domain.AuthAbsent
	}

	session, err := s.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, domain.AuthAbsent
	}
	if session.Expired(time.Now().UTC()) {
		_ = s.sessions.Delete(ctx, session.ID)
		return nil, domain.AuthAbsent
	}
	return session, domain.AuthValid
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}
