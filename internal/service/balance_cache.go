package service

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/mmynk/groupledger/internal/calculator"
	"github.com/mmynk/groupledger/internal/metrics"
)

// loadTimeout bounds a shared load once it no longer follows a caller's ctx.
const loadTimeout = 30 * time.Second

// GroupBalances is the cached result of aggregating a group's ledger.
type GroupBalances struct {
	Balances map[string]calculator.Balance
	Plan     calculator.Plan
}

// BalanceCache memoises GroupBalances per group. Concurrent misses for the
// same group share one load. Invalidate must be called after every write to
// a group; a load that started before the write is not stored.
type BalanceCache struct {
	lru     *expirable.LRU[string, *GroupBalances]
	flight  singleflight.Group
	metrics *metrics.Metrics

	mu          sync.Mutex
	generations map[string]uint64
}

// NewBalanceCache creates a cache holding at most size groups for ttl.
func NewBalanceCache(size int, ttl time.Duration, m *metrics.Metrics) *BalanceCache {
	return &BalanceCache{
		lru:         expirable.NewLRU[string, *GroupBalances](size, nil, ttl),
		metrics:     m,
		generations: make(map[string]uint64),
	}
}

// Get returns the cached balances of groupID, calling load on a miss.
// The shared load outlives the cancellation of any one caller; a caller
// whose ctx ends stops waiting with ctx.Err().
func (c *BalanceCache) Get(ctx context.Context, groupID string, load func(context.Context) (*GroupBalances, error)) (*GroupBalances, error) {
	if b, ok := c.lru.Get(groupID); ok {
		c.metrics.BalanceCacheHits.Inc()
		return b, nil
	}
	c.metrics.BalanceCacheMisses.Inc()

	gen := c.generation(groupID)
	ch := c.flight.DoChan(groupID, func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), loadTimeout)
		defer cancel()

		b, err := load(loadCtx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		if c.generations[groupID] == gen {
			c.lru.Add(groupID, b)
		}
		c.mu.Unlock()
		return b, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*GroupBalances), nil
	}
}

// Invalidate drops the cached balances of groupID.
func (c *BalanceCache) Invalidate(groupID string) {
	c.mu.Lock()
	c.generations[groupID]++
	c.lru.Remove(groupID)
	c.mu.Unlock()

	c.flight.Forget(groupID)
}

func (c *BalanceCache) generation(groupID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generations[groupID]
}
