package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeVerifier struct {
	token    *auth.Token
	err      error
	lastSeen string
}

func (f *fakeVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	f.lastSeen = idToken
	return f.token, f.err
}

func middlewareRouter(verifier *fakeVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	m := NewMiddleware(verifier)
	router.GET("/protegida", m.VerifyToken, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetString(ContextUID)})
	})
	return router
}

func TestVerifyToken_MissingHeader(t *testing.T) {
	router := middlewareRouter(&fakeVerifier{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protegida", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "MISSING_TOKEN")
}

func TestVerifyToken_InvalidToken(t *testing.T) {
	router := middlewareRouter(&fakeVerifier{err: assert.AnError})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer basura")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_TOKEN")
}

func TestVerifyToken_StripsBearerPrefix(t *testing.T) {
	verifier := &fakeVerifier{token: &auth.Token{UID: "uid-1"}}
	router := middlewareRouter(verifier)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "Bearer abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", verifier.lastSeen)
	assert.Contains(t, w.Body.String(), "uid-1")
}

// The raw token without a Bearer prefix is accepted as-is, matching what the
// mobile client has always sent.
func TestVerifyToken_RawToken(t *testing.T) {
	verifier := &fakeVerifier{token: &auth.Token{UID: "uid-1"}}
	router := middlewareRouter(verifier)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/protegida", nil)
	req.Header.Set("Authorization", "abc123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc123", verifier.lastSeen)
}
