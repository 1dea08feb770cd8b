package handlers

import (
	"brigada-service/internal/services"
	"brigada-service/utils"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Context keys populated by the auth gate.
const (
	ContextUID   = "uid"
	ContextEmail = "email"
)

type Middleware struct {
	verifier services.TokenVerifier
}

func NewMiddleware(verifier services.TokenVerifier) *Middleware {
	return &Middleware{
		verifier: verifier,
	}
}

// VerifyToken gates protected routes. It extracts the bearer credential,
// verifies it against Firebase on every request (no caching) and attaches
// the subject identifier to the request context.
func (m *Middleware) VerifyToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.CreateErrorResponse("MISSING_TOKEN", "no se proporcionó token de acceso"))
		return
	}

	tokenString := authHeader
	if strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = authHeader[7:]
	}

	token, err := m.verifier.VerifyIDToken(c.Request.Context(), tokenString)
	if err != nil {
		log.Printf("token verification failed: %v", err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, utils.CreateErrorResponse("INVALID_TOKEN", "token inválido o expirado"))
		return
	}

	c.Set(ContextUID, token.UID)
	if email, ok := token.Claims["email"].(string); ok {
		c.Set(ContextEmail, email)
	}
	c.Next()
}
