package chaincalc

// CacheStats represents factorial cache statistics.
type CacheStats struct {
	Entries int    // Number of memoized inputs
	Hits    uint64 // Lookups answered from the cache
	Misses  uint64 // Lookups that had to compute the product
}

// Stats returns a point-in-time view of the cache.
func (fc *FactorialCache) Stats() CacheStats {
	stats := CacheStats{
		Hits:   fc.hits.Load(),
		Misses: fc.misses.Load(),
	}
	for i := range fc.shards {
		shard := &fc.shards[i]
		shard.mu.RLock()
		stats.Entries += len(shard.entries)
		shard.mu.RUnlock()
	}
	return stats
}
