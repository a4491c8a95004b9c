// Package cache models a set-associative cache with LRU replacement. The
// model counts hits, misses, and evictions at block granularity and stores
// no data.
package cache

// An AccessResult describes the outcome of a single access.
type AccessResult struct {
	Hit        bool
	Evicted    bool
	EvictedTag uint64
	SetID      int
	Tag        uint64
}

// Stats accumulates the counters of one simulation run. The counters only
// ever increase and are mutated by Cache.Access alone.
type Stats struct {
	Accesses  uint64
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// A Cache is a fixed array of sets, each holding a fixed number of blocks.
// The geometry is decided at construction time and never changes afterwards.
type Cache struct {
	numSets       int
	numWays       int
	log2BlockSize int

	sets         []Set
	victimFinder VictimFinder
	stats        Stats
}

// NumSets returns the number of sets in the cache.
func (c *Cache) NumSets() int {
	return c.numSets
}

// WayAssociativity returns the number of blocks per set.
func (c *Cache) WayAssociativity() int {
	return c.numWays
}

// BlockSize returns the block size in bytes.
func (c *Cache) BlockSize() int {
	return 1 << c.log2BlockSize
}

// TotalSize returns the maximum number of bytes that can be stored in the
// cache.
func (c *Cache) TotalSize() uint64 {
	return uint64(c.numSets) * uint64(c.numWays) * uint64(c.BlockSize())
}

// Stats returns the counters accumulated so far.
func (c *Cache) Stats() Stats {
	return c.stats
}

// Sets returns the sets of the cache.
func (c *Cache) Sets() []Set {
	return c.sets
}

// decode splits an address into the tag and the index of the set that the
// address maps to. The block offset bits are discarded, as hit and miss are
// determined at block granularity.
func (c *Cache) decode(addr uint64) (tag uint64, setID int) {
	blockNumber := addr >> c.log2BlockSize
	setID = int(blockNumber % uint64(c.numSets))
	tag = blockNumber / uint64(c.numSets)

	return
}

// Access simulates one memory access at addr. A hit refreshes the recency of
// the matching block. A miss installs the tag into an empty block when the
// set has one, and otherwise evicts the least recently used block.
func (c *Cache) Access(addr uint64) AccessResult {
	tag, setID := c.decode(addr)
	set := &c.sets[setID]

	c.stats.Accesses++

	for _, block := range set.Blocks {
		if block.IsValid && block.Tag == tag {
			c.stats.Hits++
			set.Visit(block)

			return AccessResult{Hit: true, SetID: setID, Tag: tag}
		}
	}

	c.stats.Misses++

	victim := c.victimFinder.FindVictim(set)
	result := AccessResult{SetID: setID, Tag: tag}

	if victim.IsValid {
		c.stats.Evictions++
		result.Evicted = true
		result.EvictedTag = victim.Tag
	}

	victim.Tag = tag
	victim.IsValid = true
	set.Visit(victim)

	return result
}

// Reset marks all blocks invalid and clears the counters.
func (c *Cache) Reset() {
	c.sets = make([]Set, c.numSets)
	for i := 0; i < c.numSets; i++ {
		for j := 0; j < c.numWays; j++ {
			block := &Block{
				SetID: i,
				WayID: j,
			}

			c.sets[i].Blocks = append(c.sets[i].Blocks, block)
		}
	}

	c.stats = Stats{}
}
