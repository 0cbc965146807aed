// Package idempotency keeps a (user, lending, tier) reminder from being sent twice.
//
// The durable check is the reminder history: a sent or delivered row means the tier
// is done. Concurrent runs are serialized per (lending, tier) by a short Redis lease.
// Callers check the history again once they hold it. The history table carries a
// partial unique index as the last line.
package idempotency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/internal/repository/history"
)

//go:generate mockgen -source=guard.go -destination=../mocks/idempotency/mock.go -package=mocks

type historyFinder interface {
	FindSent(ctx context.Context, userID, lendingID uuid.UUID, tier model.Tier) (model.ReminderHistory, error)
}

type leaseClient interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// DefaultLeaseTTL bounds how long a crashed run can block a tier.
const DefaultLeaseTTL = 2 * time.Minute

// releaseScript deletes the lease only if it is still held by the caller's token.
const releaseScript = `
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`

// Guard answers "was this tier already sent" and hands out per-tier leases.
type Guard struct {
	history historyFinder
	leases  leaseClient
	ttl     time.Duration
}

// NewGuard creates a Guard. A nil lease client disables leasing.
func NewGuard(h historyFinder, leases leaseClient, ttl time.Duration) *Guard {
	if ttl <= 0 {
		ttl = DefaultLeaseTTL
	}

	return &Guard{history: h, leases: leases, ttl: ttl}
}

// AlreadySent reports whether a sent or delivered history entry exists for the key.
func (g *Guard) AlreadySent(ctx context.Context, userID, lendingID uuid.UUID, tier model.Tier) (bool, error) {
	_, err := g.history.FindSent(ctx, userID, lendingID, tier)
	if err != nil {
		if errors.Is(err, history.ErrHistoryNotFound) {
			return false, nil
		}

		return false, fmt.Errorf("check reminder history: %w", err)
	}

	return true, nil
}

// Acquire takes the lease for (lending, tier). ok is false when another run holds it.
// The returned token must be passed to Release.
func (g *Guard) Acquire(ctx context.Context, lendingID uuid.UUID, tier model.Tier) (string, bool, error) {
	if g.leases == nil {
		return "", true, nil
	}

	token := uuid.NewString()

	ok, err := g.leases.SetNX(ctx, LeaseKey(lendingID, tier), token, g.ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("acquire reminder lease: %w", err)
	}

	return token, ok, nil
}

// Release drops the lease if it is still ours. Failures only delay the next run
// until the lease expires, so they are logged.
func (g *Guard) Release(ctx context.Context, lendingID uuid.UUID, tier model.Tier, token string) {
	if g.leases == nil || token == "" {
		return
	}

	key := LeaseKey(lendingID, tier)

	n, err := g.leases.Eval(ctx, releaseScript, []string{key}, token).Int()
	if err != nil {
		zlog.Logger.Error().Err(err).Str("key", key).Msg("failed to release reminder lease")
		return
	}

	if n == 0 {
		zlog.Logger.Warn().Str("key", key).Msg("reminder lease expired before release")
	}
}

// LeaseKey is the Redis key guarding one (lending, tier).
func LeaseKey(lendingID uuid.UUID, tier model.Tier) string {
	return fmt.Sprintf("reminder:lease:%s:%s", lendingID, tier)
}
