package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/sharpfade/barbershop-api/internal/schedule"
)

// AvailabilityCache keeps annotated slot lists for a barber/date/service
// for a short TTL. Booking mutations invalidate the whole day, so stale
// entries only survive between unrelated reads.
type AvailabilityCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailabilityCache(rdb *redis.Client) *AvailabilityCache {
	return &AvailabilityCache{
		rdb: rdb,
		ttl: 30 * time.Second,
	}
}

func key(barberID uint, date string, serviceID uint) string {
	return fmt.Sprintf("avail:%d:%s:%d", barberID, date, serviceID)
}

func dayPattern(barberID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s:*", barberID, date)
}

// Get returns the cached slots and whether the entry existed. Any cache
// failure reads as a miss; availability is always recomputable.
func (c *AvailabilityCache) Get(
	ctx context.Context,
	barberID uint,
	date string,
	serviceID uint,
) ([]schedule.SlotAvailability, bool) {

	if c == nil || c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(barberID, date, serviceID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Warn("availability cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var slots []schedule.SlotAvailability
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	barberID uint,
	date string,
	serviceID uint,
	slots []schedule.SlotAvailability,
) {
	if c == nil || c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(barberID, date, serviceID), raw, c.ttl).Err(); err != nil {
		zap.L().Warn("availability cache write failed", zap.Error(err))
	}
}

// InvalidateDay drops every cached service grid for a barber/date. Called
// after any booking mutation for that day.
func (c *AvailabilityCache) InvalidateDay(
	ctx context.Context,
	barberID uint,
	date string,
) {
	if c == nil || c.rdb == nil {
		return
	}

	keys, err := c.rdb.Keys(ctx, dayPattern(barberID, date)).Result()
	if err != nil {
		zap.L().Warn("availability cache invalidation failed", zap.Error(err))
		return
	}

	if len(keys) > 0 {
		if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
			zap.L().Warn("availability cache invalidation failed", zap.Error(err))
		}
	}
}
