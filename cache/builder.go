package cache

import "fmt"

// A Builder can build caches.
type Builder struct {
	numSetBits       int
	wayAssociativity int
	log2BlockSize    int
	victimFinder     VictimFinder
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		numSetBits:       4,
		wayAssociativity: 1,
		log2BlockSize:    4,
	}
}

// WithNumSetBits sets the number of set-index bits. The cache will have
// 2^numSetBits sets.
func (b Builder) WithNumSetBits(numSetBits int) Builder {
	b.numSetBits = numSetBits
	return b
}

// WithWayAssociativity sets the number of blocks per set.
func (b Builder) WithWayAssociativity(wayAssociativity int) Builder {
	b.wayAssociativity = wayAssociativity
	return b
}

// WithLog2BlockSize sets the number of block-offset bits. Blocks will be
// 2^log2BlockSize bytes.
func (b Builder) WithLog2BlockSize(log2BlockSize int) Builder {
	b.log2BlockSize = log2BlockSize
	return b
}

// WithVictimFinder sets the replacement policy of the cache.
func (b Builder) WithVictimFinder(victimFinder VictimFinder) Builder {
	b.victimFinder = victimFinder
	return b
}

// Build builds a cache with all blocks invalid and all counters zero.
func (b Builder) Build() *Cache {
	b.mustHaveValidGeometry()

	victimFinder := b.victimFinder
	if victimFinder == nil {
		victimFinder = NewLRUVictimFinder()
	}

	c := &Cache{
		numSets:       1 << b.numSetBits,
		numWays:       b.wayAssociativity,
		log2BlockSize: b.log2BlockSize,
		victimFinder:  victimFinder,
	}

	c.Reset()

	return c
}

func (b Builder) mustHaveValidGeometry() {
	if b.numSetBits < 1 {
		panic(fmt.Sprintf(
			"number of set bits must be at least 1, but is %d", b.numSetBits))
	}

	if b.wayAssociativity < 1 {
		panic(fmt.Sprintf(
			"way associativity must be at least 1, but is %d",
			b.wayAssociativity))
	}

	if b.log2BlockSize < 1 {
		panic(fmt.Sprintf(
			"log2 of block size must be at least 1, but is %d",
			b.log2BlockSize))
	}
}
