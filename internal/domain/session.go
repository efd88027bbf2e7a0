package domain

import "time"

// AuthState is the resolved state of a request's session: the token is
// either present and usable, or it is not. There is no in-between.
type AuthState string

const (
	AuthAbsent AuthState = "absent"
	AuthValid  AuthState = "valid"
)

// Session is the only client state the gateway persists: the kitchen API
// token issued at login, keyed by an opaque session id.
type Session struct {
	ID        string    `gorm:"column:id;primaryKey" json:"id"`
	APIToken  string    `gorm:"column:api_token" json:"-"`
	Email     string    `gorm:"column:email" json:"email"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expires_at"`
}

func (Session) TableName() string { return "sessions" }

func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
