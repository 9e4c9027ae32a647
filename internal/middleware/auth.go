package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/trackboard/trackboard/internal/config"
	"github.com/trackboard/trackboard/internal/modules/serializer"
	"github.com/trackboard/trackboard/internal/modules/service"
	"github.com/trackboard/trackboard/internal/pkg/apperr"
	"github.com/trackboard/trackboard/internal/pkg/security"
)

// UserKey is the gin context key the authenticated user is stored under.
const UserKey = "user"

// UserAuth returns a middleware that authenticates requests with a bearer
// access token. It validates the token, loads the user row and rejects
// inactive accounts.
func UserAuth(cfg *config.Config, users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			serializer.WriteError(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		raw := strings.TrimPrefix(auth, "Bearer ")

		userID, err := security.ParseToken(raw, cfg.Auth.JWTSecret)
		if err != nil {
			serializer.WriteError(c, apperr.Unauthorized("Unauthorized"))
			return
		}

		user, err := users.Get(c.Request.Context(), userID)
		if err != nil {
			serializer.WriteError(c, apperr.Unauthorized("Unauthorized"))
			return
		}
		if !user.IsActive {
			serializer.WriteError(c, apperr.Unauthorized("User is not active"))
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}
