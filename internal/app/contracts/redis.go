package contracts

import (
	"context"
	"time"
)

type RedisRepository interface {
	Delete(ctx context.Context, key string) error
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error)
	// Increment bumps an integer counter. The expiry is set when the counter is created.
	Increment(ctx context.Context, key string, exp time.Duration) (int64, error)
}

type ImportQuota interface {
	Evaluate(ctx context.Context, in *ImportQuotaInput) (*ImportQuotaOutput, error)
}

type ImportQuotaInput struct {
	Subject string
	NowUTC  time.Time
}

type ImportQuotaOutput struct {
	Allowed        bool
	RetryAfterSecs int
	LimitedByDaily bool
}
