package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisUnlockScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`

type redisUserLocker struct {
	client redisLockClient
	ttl    time.Duration
	prefix string
}

type redisLockClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// NewRedisUserLocker crea un locker por usuario respaldado en redis,
// útil cuando corre más de una instancia del servicio.
func NewRedisUserLocker(client *redis.Client, ttl time.Duration) UserLocker {
	if client == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &redisUserLocker{
		client: client,
		ttl:    ttl,
		prefix: "media:lock:",
	}
}

func (l *redisUserLocker) Lock(ctx context.Context, userID string) (func(), error) {
	key := l.prefix + userID
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(50 * time.Millisecond):
		}
	}

	return func() {
		unlockCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()
		l.client.Eval(unlockCtx, redisUnlockScript, []string{key}, token)
	}, nil
}
