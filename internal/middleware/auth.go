package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"medialist/api/internal/service"
)

const (
	ContextUserKey  = "current_user"
	ContextTokenKey = "access_token"
)

// Auth gates protected routes behind a bearer session token. Missing,
// malformed and revoked tokens all produce the same response body.
func Auth(auth *service.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "Please authenticate"})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		user, err := auth.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"code": 401, "message": "Please authenticate"})
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextTokenKey, token)

		c.Next()
	}
}
