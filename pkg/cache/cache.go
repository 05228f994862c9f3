// Package cache provides a ristretto-backed cache for market condition IDs.
//
// Short-cycle markets are enumerated speculatively (most generated slugs were
// never traded by the wallet), so repeated runs over overlapping windows hit
// the Gamma API for the same slugs. Caching the slug -> conditionId mapping
// keeps re-runs cheap; condition IDs are immutable on-chain handles, so a
// long TTL is safe.
package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
	"go.uber.org/zap"
)

// ConditionCache caches market slug -> conditionId lookups.
type ConditionCache struct {
	cache  *ristretto.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// Config holds condition cache configuration.
type Config struct {
	MaxEntries int64
	TTL        time.Duration
	Logger     *zap.Logger
}

// NewConditionCache creates a new ristretto-backed condition-id cache.
func NewConditionCache(cfg *Config) (*ConditionCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		// Ristretto recommends tracking ~10x the expected item count.
		NumCounters: cfg.MaxEntries * 10,
		MaxCost:     cfg.MaxEntries,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}

	return &ConditionCache{
		cache:  cache,
		ttl:    cfg.TTL,
		logger: cfg.Logger,
	}, nil
}

// Get returns the cached conditionId for a slug.
func (c *ConditionCache) Get(slug string) (string, bool) {
	value, found := c.cache.Get(slug)
	if !found {
		ConditionMissesTotal.Inc()
		c.logger.Debug("condition-cache-miss", zap.String("slug", slug))
		return "", false
	}

	conditionID, ok := value.(string)
	if !ok {
		ConditionMissesTotal.Inc()
		return "", false
	}

	ConditionHitsTotal.Inc()
	c.logger.Debug("condition-cache-hit", zap.String("slug", slug))
	return conditionID, true
}

// Set stores the conditionId for a slug.
func (c *ConditionCache) Set(slug, conditionID string) bool {
	success := c.cache.SetWithTTL(slug, conditionID, 1, c.ttl)
	if success {
		ConditionSetsTotal.Inc()
		c.logger.Debug("condition-cache-set",
			zap.String("slug", slug),
			zap.String("condition-id", conditionID))
	}
	return success
}

// Wait blocks until pending writes are applied. Ristretto applies sets
// asynchronously; tests need this before asserting on Get.
func (c *ConditionCache) Wait() {
	c.cache.Wait()
}

// Close releases cache resources.
func (c *ConditionCache) Close() {
	c.cache.Close()
	c.logger.Debug("condition-cache-closed")
}
