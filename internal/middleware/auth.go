package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/notepod/core/internal/pkg/jwt"
	"github.com/notepod/core/internal/pkg/response"
)

// ContextUserID is the gin context key carrying the authenticated user id.
const ContextUserID = "uid"

// Auth validates the Bearer token issued at login and stores the caller's
// user id on the context.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		token := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer"))
		if token == "" {
			response.Unauthorized(c, "未提供登录凭证")
			return
		}

		claims, err := jwt.Parse(token)
		if err != nil {
			response.Unauthorized(c, "登录凭证无效或已过期")
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Next()
	}
}
