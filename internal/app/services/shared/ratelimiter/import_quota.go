package ratelimiter

import (
	"context"
	"fmt"
	"patient-sync-service/internal/app/config"
	"patient-sync-service/internal/app/contracts"
	"patient-sync-service/internal/pkg/constvars"
	"patient-sync-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ImportQuota caps bulk imports per caller with a one-minute window and a daily quota.
// Counters live in Redis so every replica shares them.
type ImportQuota struct {
	redis     contracts.RedisRepository
	log       *zap.Logger
	perMinute int
	perDay    int
}

func NewImportQuota(redis contracts.RedisRepository, log *zap.Logger, cfg *config.InternalConfig) *ImportQuota {
	return &ImportQuota{
		redis:     redis,
		log:       log,
		perMinute: cfg.Import.QuotaPerMinute,
		perDay:    cfg.Import.QuotaPerDay,
	}
}

// Evaluate counts the attempt and reports whether it fits the quota.
// Keys: IMPORT:QUOTA:<YYYYMMDD>:<subject> and IMPORT:LIMIT:<YYYYMMDDHHMM>:<subject>.
func (q *ImportQuota) Evaluate(ctx context.Context, in *contracts.ImportQuotaInput) (*contracts.ImportQuotaOutput, error) {
	subject := strings.ToLower(strings.TrimSpace(in.Subject))
	q.log.Debug("ImportQuota.Evaluate called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String("subject", subject),
	)
	if subject == "" {
		subject = "anonymous"
	}

	if q.perDay > 0 {
		nextDay := time.Date(in.NowUTC.Year(), in.NowUTC.Month(), in.NowUTC.Day()+1, 0, 0, 0, 0, time.UTC)
		ttlDaily := nextDay.Sub(in.NowUTC)
		dayKey := fmt.Sprintf("%s%s:%s", constvars.ImportQuotaDailyKeyPrefix, in.NowUTC.Format("20060102"), subject)

		count, err := q.redis.Increment(ctx, dayKey, ttlDaily+time.Minute)
		if err != nil {
			return nil, err
		}
		if count > int64(q.perDay) {
			return &contracts.ImportQuotaOutput{Allowed: false, RetryAfterSecs: int(ttlDaily.Seconds()) + 1, LimitedByDaily: true}, nil
		}
	}

	if q.perMinute > 0 {
		nextMinute := in.NowUTC.Truncate(time.Minute).Add(time.Minute)
		ttlMinute := nextMinute.Sub(in.NowUTC)
		minuteKey := fmt.Sprintf("%s%s:%s", constvars.ImportQuotaMinuteKeyPrefix, in.NowUTC.Format("200601021504"), subject)

		count, err := q.redis.Increment(ctx, minuteKey, ttlMinute+time.Second)
		if err != nil {
			return nil, err
		}
		if count > int64(q.perMinute) {
			return &contracts.ImportQuotaOutput{Allowed: false, RetryAfterSecs: int(ttlMinute.Seconds()) + 1}, nil
		}
	}

	return &contracts.ImportQuotaOutput{Allowed: true}, nil
}
