package enforcement

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// redirectChannelPrefix is the per-user channel devices subscribe to for
// redirect pushes.
const redirectChannelPrefix = "craving_intervention:redirect:"

// RedisRedirector publishes redirect actions onto a per-user Redis channel.
// The device agent listening on that channel brings the host app to the
// foreground with the blocked identifier as payload.
type RedisRedirector struct {
	client *redis.Client
}

// NewRedisRedirector creates a redirect publisher on the shared Redis client.
func NewRedisRedirector(client *redis.Client) *RedisRedirector {
	return &RedisRedirector{client: client}
}

// RedirectChannel returns the channel name for a user.
func RedirectChannel(userID string) string {
	return redirectChannelPrefix + userID
}

// Redirect implements Redirector.
func (r *RedisRedirector) Redirect(ctx context.Context, action RedirectAction) error {
	payload, err := json.Marshal(action)
	if err != nil {
		return fmt.Errorf("failed to marshal redirect action: %w", err)
	}

	if err := r.client.Publish(ctx, RedirectChannel(action.UserID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish redirect action: %w", err)
	}
	return nil
}
