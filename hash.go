package chaincalc

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Number of independently locked shards in a FactorialCache
const shardCount = 16

// shardFor picks the shard owning an input by hashing its bit pattern.
// Whole numbers have all-zero low mantissa bits, so the raw bits are not
// used as an index directly.
func (fc *FactorialCache) shardFor(bits uint64) *cacheShard {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], bits)
	return &fc.shards[xxhash.Sum64(buf[:])%shardCount]
}
