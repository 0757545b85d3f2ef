package redis

import (
	"context"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/solvault/solvault/internal/auth"
)

// sessionKeyPrefix is the base prefix for session keys.
//
// Format: "session:{token}" -> user id
const sessionKeyPrefix = "session"

func sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", sessionKeyPrefix, token)
}

// UserBySession implements the auth.SessionStore interface. A token without a
// matching key means the session is unknown or expired.
func (c *client) UserBySession(ctx context.Context, sessionToken string) (string, error) {
	userID, err := c.conn.Get(ctx, sessionKey(sessionToken)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// The token itself stays out of errors and logs.
			return "", auth.ErrSessionNotFound
		}
		return "", err
	}

	return userID, nil
}

// Compile-time assertion that *client satisfies the auth.SessionStore interface
var _ auth.SessionStore = new(client)
