package ratelimit

import (
	"context"
	"fmt"
	"time"

	"marketing-server/internal/clients/redis"
	"marketing-server/internal/observability"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

const window = time.Minute

// Result represents the outcome of a rate limit check
type Result struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// Service limits how many AI generations a user may start per minute
type Service struct {
	redis  *redis.Client
	limit  int
	logger *observability.Logger
	now    func() time.Time
}

func NewService(redis *redis.Client, limit int, logger *observability.Logger) *Service {
	return &Service{
		redis:  redis,
		limit:  limit,
		logger: logger,
		now:    time.Now,
	}
}

// Check records one request for userID if it fits in the sliding window.
// Without Redis, or with a non-positive limit, every request is allowed.
func (s *Service) Check(ctx context.Context, userID uuid.UUID) (Result, error) {
	now := s.now()
	if s.limit <= 0 || !s.redis.IsEnabled() {
		return Result{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: now.Add(window)}, nil
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "rate_limit", Value: s.limit})
	result, err := s.checkRedis(ctx, userID, now)
	if err != nil {
		s.logger.WarnWithError(ctx, "redis rate limit check failed, allowing request", err)
		return Result{Allowed: true, Limit: s.limit, Remaining: s.limit, ResetAt: now.Add(window)}, nil
	}
	return result, nil
}

// checkRedis keeps request timestamps (ms) as scores of a sorted set at rl:gen:{user_id}.
func (s *Service) checkRedis(ctx context.Context, userID uuid.UUID, now time.Time) (Result, error) {
	key := fmt.Sprintf("rl:gen:%s", userID.String())
	nowMs := now.UnixMilli()
	windowStartMs := now.Add(-window).UnixMilli()
	client := s.redis.GetClient()

	if err := client.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStartMs)).Err(); err != nil {
		return Result{}, fmt.Errorf("failed to remove old entries: %w", err)
	}

	count, err := client.ZCard(ctx, key).Result()
	if err != nil {
		return Result{}, fmt.Errorf("failed to count requests: %w", err)
	}

	if int(count) >= s.limit {
		oldest, err := client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil || len(oldest) == 0 {
			return Result{
				Allowed:      false,
				Limit:        s.limit,
				ResetAt:      now.Add(window),
				RetryAfterMs: int(window.Milliseconds()),
			}, nil
		}

		resetAt := time.UnixMilli(int64(oldest[0].Score)).Add(window)
		retryAfter := resetAt.Sub(now)
		if retryAfter < 0 {
			retryAfter = 0
		}
		return Result{
			Allowed:      false,
			Limit:        s.limit,
			ResetAt:      resetAt,
			RetryAfterMs: int(retryAfter.Milliseconds()),
		}, nil
	}

	member := fmt.Sprintf("%d-%s", nowMs, uuid.NewString())
	if err := s.redis.ZAdd(ctx, key, goredis.Z{Score: float64(nowMs), Member: member}); err != nil {
		return Result{}, fmt.Errorf("failed to add request: %w", err)
	}

	if err := s.redis.Expire(ctx, key, 2*window); err != nil {
		s.logger.WarnWithError(ctx, "failed to set expiration on rate limit key", err)
	}

	return Result{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}
