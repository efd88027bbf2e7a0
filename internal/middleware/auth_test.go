package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"kitchenadmin/internal/domain"
)

type stubResolver struct {
	sessions map[string]*domain.Session
}

func (s *stubResolver) Resolve(_ context.Context, tokenStr string) (*domain.Session, domain.AuthState) {
	if session, ok := s.sessions[tokenStr]; ok {
		return session, domain.AuthValid
	}
	return nil, domain.AuthAbsent
}

func protectedRouter(t *testing.T, resolver SessionResolver) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(SessionAuth(resolver))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"session_id": c.GetString("session_id"),
			"email":      c.GetString("email"),
		})
	})
	return router
}

func TestSessionAuth_ValidHeaderToken(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]*domain.Session{
		"good-token": {ID: "sess-42", APIToken: "kitchen-tok", Email: "admin@omowunmikitchen.com"},
	}}
	router := protectedRouter(t, resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sess-42")
	assert.Contains(t, w.Body.String(), "admin@omowunmikitchen.com")
}

func TestSessionAuth_ValidCookieToken(t *testing.T) {
	resolver := &stubResolver{sessions: map[string]*domain.Session{
		"cookie-token": {ID: "sess-7", APIToken: "kitchen-tok"},
	}}
	router := protectedRouter(t, resolver)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "cookie-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "sess-7")
}

func TestSessionAuth_NoToken(t *testing.T) {
	router := protectedRouter(t, &stubResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect":"/login"`)
}

func TestSessionAuth_UnknownToken(t *testing.T) {
	router := protectedRouter(t, &stubResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale-or-forged")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
}

func TestSessionAuth_WrongScheme(t *testing.T) {
	router := protectedRouter(t, &stubResolver{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Basic dGVzdA==")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
