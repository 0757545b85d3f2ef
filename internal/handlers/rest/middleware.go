package rest

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/solvault/solvault/internal/auth"
	"github.com/solvault/solvault/internal/pkg/logger"
)

const (
	requestIDHeader = "X-Request-ID"

	// userIDLocal is the fiber.Ctx locals key holding the authenticated
	// user id set by sessionAuth.
	userIDLocal = "user_id"
)

// requestID ensures each request carries a stable identifier and derives a
// request-scoped logger from it.
func requestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqID := c.Get(requestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
			c.Set(requestIDHeader, reqID)
		}

		c.SetUserContext(logger.Derive(c.UserContext(), "request.id", reqID))

		return c.Next()
	}
}

// sessionAuth resolves the bearer session token into a user id and stores it
// in the request locals. Requests without a valid session stop here.
func sessionAuth(authenticator Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authz := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			return fail(c, auth.ErrSessionNotFound)
		}

		userID, err := authenticator.Authenticate(c.UserContext(), strings.TrimSpace(authz[len("Bearer "):]))
		if err != nil {
			return fail(c, err)
		}

		c.Locals(userIDLocal, userID)
		return c.Next()
	}
}

// authenticatedUser reads the user id stored by sessionAuth.
func authenticatedUser(c *fiber.Ctx) string {
	userID, _ := c.Locals(userIDLocal).(string)
	return userID
}
