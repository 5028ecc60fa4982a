package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// AvatarCache keeps normalized avatar bytes keyed by username. The database
// row stays authoritative; every method degrades to a miss or a no-op on
// redis errors so avatar serving never fails because of the cache.
type AvatarCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewAvatarCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *AvatarCache {
	return &AvatarCache{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (c *AvatarCache) key(username string) string {
	return "avatar:" + username
}

func (c *AvatarCache) Get(ctx context.Context, username string) ([]byte, bool) {
	data, err := c.client.Get(ctx, c.key(username)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("username", username).Msg("avatar cache get failed")
		}
		return nil, false
	}
	return data, true
}

func (c *AvatarCache) Set(ctx context.Context, username string, data []byte) {
	if err := c.client.Set(ctx, c.key(username), data, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("username", username).Msg("avatar cache set failed")
	}
}

func (c *AvatarCache) Invalidate(ctx context.Context, username string) {
	if err := c.client.Del(ctx, c.key(username)).Err(); err != nil {
		c.log.Warn().Err(err).Str("username", username).Msg("avatar cache invalidate failed")
	}
}
