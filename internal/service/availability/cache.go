package availability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/bookwise/bookwise_backend/internal/timeslot"
)

const cacheKeyPrefix = "freeslots"

// slotCache keeps free-slot listings in redis for a short TTL. A nil
// redis client disables caching entirely.
type slotCache struct {
	rdb *goredis.Client
	ttl time.Duration
}

func newSlotCache(rdb *goredis.Client, ttlSeconds int) *slotCache {
	if ttlSeconds <= 0 {
		ttlSeconds = 60
	}
	return &slotCache{rdb: rdb, ttl: time.Duration(ttlSeconds) * time.Second}
}

func cacheKey(req FreeSlotsRequest) string {
	provider := "any"
	if req.ProviderID != nil {
		provider = req.ProviderID.String()
	}
	service := "any"
	if req.ServiceID != nil {
		service = req.ServiceID.String()
	}
	date := "any"
	if req.Date != nil {
		date = req.Date.Format("2006-01-02")
	}
	return fmt.Sprintf("%s:%s:%s:%s", cacheKeyPrefix, provider, service, date)
}

func (c *slotCache) get(ctx context.Context, req FreeSlotsRequest) ([]timeslot.Slot, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, cacheKey(req)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []timeslot.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}
	return slots, true
}

func (c *slotCache) set(ctx context.Context, req FreeSlotsRequest, slots []timeslot.Slot) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, cacheKey(req), raw, c.ttl)
}

// invalidateProvider drops every cached listing keyed to a provider.
// Listings cached without a provider filter are left to expire on their
// own; the TTL bounds their staleness.
func (c *slotCache) invalidateProvider(ctx context.Context, providerID uuid.UUID) {
	if c.rdb == nil {
		return
	}

	pattern := fmt.Sprintf("%s:%s:*", cacheKeyPrefix, providerID)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}
