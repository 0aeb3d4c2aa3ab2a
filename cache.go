package chaincalc

import (
	"math"
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// maxFactorialInput is the largest n for which n! is finite in float64.
const maxFactorialInput = 170

// FactorialCache memoizes factorial results keyed by the exact input value.
// It is safe for concurrent use and is meant to be shared between
// calculators. Entries are never evicted; call Reset to drop them.
type FactorialCache struct {
	shards [shardCount]cacheShard
	group  singleflight.Group // collapses concurrent misses on one input
	hits   atomic.Uint64
	misses atomic.Uint64
}

type cacheShard struct {
	mu      sync.RWMutex
	entries map[uint64]float64 // math.Float64bits(input) -> result
}

var defaultFactorialCache = NewFactorialCache()

// DefaultFactorialCache returns the process-wide cache used by calculators
// that were not given one with WithFactorialCache.
func DefaultFactorialCache() *FactorialCache {
	return defaultFactorialCache
}

// NewFactorialCache creates an empty cache.
func NewFactorialCache() *FactorialCache {
	fc := &FactorialCache{}
	for i := range fc.shards {
		fc.shards[i].entries = make(map[uint64]float64)
	}
	return fc
}

// Get returns n!, computing and storing it on a miss.
func (fc *FactorialCache) Get(n float64) float64 {
	bits := math.Float64bits(n)
	shard := fc.shardFor(bits)

	if v, ok := shard.lookup(bits); ok {
		fc.hits.Add(1)
		return v
	}
	fc.misses.Add(1)

	v, _, _ := fc.group.Do(strconv.FormatUint(bits, 16), func() (any, error) {
		// Another caller may have stored it between the lookup and here.
		if v, ok := shard.lookup(bits); ok {
			return v, nil
		}
		result := factorial(n)

		shard.mu.Lock()
		shard.entries[bits] = result
		shard.mu.Unlock()

		return result, nil
	})
	return v.(float64)
}

// Reset removes all entries and zeroes the hit and miss counters.
func (fc *FactorialCache) Reset() {
	for i := range fc.shards {
		shard := &fc.shards[i]
		shard.mu.Lock()
		clear(shard.entries)
		shard.mu.Unlock()
	}
	fc.hits.Store(0)
	fc.misses.Store(0)
}

func (s *cacheShard) lookup(bits uint64) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[bits]
	return v, ok
}

// factorial multiplies every integer i with 1 <= i <= n.
func factorial(n float64) float64 {
	if n > maxFactorialInput {
		return math.Inf(1)
	}
	result := 1.0
	for i := 1.0; i <= n; i++ {
		result *= i
	}
	return result
}
