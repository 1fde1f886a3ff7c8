package redisad

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"spotstay/internal/adapters/observability"
)

// Sessions tracks live session ids in Redis so bearer tokens can be
// revoked before their signed expiry. A key that expires or is deleted
// makes the corresponding token dead.
type Sessions struct{ c *redis.Client }

func New(addr, pass string, db int) *Sessions {
	return &Sessions{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func key(sid string) string { return "session:" + sid }

func (s *Sessions) Put(ctx context.Context, sid string, userID int64, ttl time.Duration) error {
	observability.ObserveSession("put")
	return s.c.Set(ctx, key(sid), userID, ttl).Err()
}

func (s *Sessions) Resolve(ctx context.Context, sid string) (int64, bool, error) {
	v, err := s.c.Get(ctx, key(sid)).Result()
	if err == redis.Nil {
		observability.ObserveSession("miss")
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	userID, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, err
	}
	observability.ObserveSession("hit")
	return userID, true, nil
}

func (s *Sessions) Revoke(ctx context.Context, sid string) error {
	observability.ObserveSession("revoke")
	return s.c.Del(ctx, key(sid)).Err()
}
