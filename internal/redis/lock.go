package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type Redis struct {
	Client *redis.Client
}

func NewRedis(client *redis.Client) *Redis {
	return &Redis{Client: client}
}

const seedLockTTL = 10 * time.Minute

// AcquireSeedLock claims the one-time catalog seeding slot. Only one
// instance sharing the remote store gets to seed the default categories.
func (r *Redis) AcquireSeedLock(ctx context.Context) (bool, error) {
	ok, err := r.Client.SetNX(ctx, "catalog:seed_lock", 1, seedLockTTL).Result()
	return ok, err
}
