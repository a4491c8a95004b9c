package cache

// A Block is the information that is associated with a cache line. The
// simulator tracks hits and misses at block granularity, so a block carries
// no data, only tag and recency state.
type Block struct {
	Tag     uint64
	SetID   int
	WayID   int
	IsValid bool

	// LastUse is a logical timestamp. Within a set, a larger value means the
	// block was used more recently. LastUse values are only ever compared
	// between blocks of the same set.
	LastUse uint64
}
