package middleware

import (
	"net/http"
	"strings"

	"cinebook/internal/pkg/response"

	jwtsvc "cinebook/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const accessTokenCookie = "access_token"

// Auth validates the bearer token (or the access_token cookie set at
// login) and stores user_id/role on the context for downstream
// handlers.
func Auth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c)
		if tokenStr == "" {
			if cookie, err := c.Cookie(accessTokenCookie); err == nil {
				tokenStr = cookie
			}
		}
		if tokenStr == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing credentials")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(tokenStr)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}
