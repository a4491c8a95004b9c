package cache

// A VictimFinder decides which block of a set should hold the incoming data
// when the set misses.
type VictimFinder interface {
	FindVictim(set *Set) *Block
}

// LRUVictimFinder selects the least recently used block in a set.
type LRUVictimFinder struct {
}

// NewLRUVictimFinder returns a newly constructed LRU victim finder.
func NewLRUVictimFinder() *LRUVictimFinder {
	e := new(LRUVictimFinder)
	return e
}

// FindVictim returns the block that should be filled next. An invalid block
// is always preferred over evicting a valid one. Among valid blocks, the one
// with the smallest LastUse is selected. Both scans run in way order, so when
// two blocks report the same LastUse the lower way wins. Equal LastUse values
// cannot occur while the per-set recency bookkeeping is intact.
func (e *LRUVictimFinder) FindVictim(set *Set) *Block {
	for _, block := range set.Blocks {
		if !block.IsValid {
			return block
		}
	}

	victim := set.Blocks[0]
	for _, block := range set.Blocks[1:] {
		if block.LastUse < victim.LastUse {
			victim = block
		}
	}

	return victim
}
