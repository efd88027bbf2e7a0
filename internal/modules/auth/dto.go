package auth

// LoginRequest mirrors the login form: both fields required, the rest is
// the kitchen API's business.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
