package quota

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func timeNowMillis() int64 {
	return time.Now().UnixMilli()
}

// RedisStore keeps the admission window in a sorted set per address, scored by
// unix milliseconds, so the quota is shared across instances.
type RedisStore struct {
	client    *redis.Client
	cfg       Config
	keyPrefix string
}

func NewRedisStore(client *redis.Client, cfg Config, keyPrefix string) *RedisStore {
	return &RedisStore{
		client:    client,
		cfg:       cfg,
		keyPrefix: keyPrefix,
	}
}

func (s *RedisStore) Admit(ctx context.Context, key string) (bool, error) {
	redisKey := s.keyPrefix + key
	nowMillis := timeNowMillis()
	windowStart := nowMillis - s.cfg.Window.Milliseconds()

	if err := s.client.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10)).Err(); err != nil {
		return false, fmt.Errorf("quota window prune failed: %w", err)
	}

	count, err := s.client.ZCard(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("quota count failed: %w", err)
	}

	if count >= int64(s.cfg.Limit) {
		return false, nil
	}

	pipe := s.client.Pipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(nowMillis),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, redisKey, s.cfg.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("quota record failed: %w", err)
	}

	return true, nil
}
