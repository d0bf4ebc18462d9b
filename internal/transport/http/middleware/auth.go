package middleware

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/DickensJuma/asha-pm/internal/api"
	"github.com/DickensJuma/asha-pm/internal/auth"
)

// UserIDKey is the ctx-locals key holding the authenticated user id.
const UserIDKey = "user_id"

// Auth verifies the bearer session token and stores the bound user id in the
// request locals.
func Auth(creds *auth.Credentials, log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := extractBearer(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return unauthorized(c, "missing bearer token")
		}

		userID, err := creds.ParseToken(token)
		if err != nil {
			log.Debugw("rejected session token", "error", err.Error())
			return unauthorized(c, "invalid session token")
		}

		c.Locals(UserIDKey, userID)
		return c.Next()
	}
}

func extractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}

func unauthorized(c *fiber.Ctx, msg string) error {
	return c.Status(http.StatusUnauthorized).JSON(api.ErrorResponse{
		Error: api.ErrorBody{Code: api.CodeUnauthorized, Message: msg},
	})
}
