package cache

// A Set is a list of blocks where a certain memory block can be stored at.
// Blocks are ordered by way index, not by recency.
type Set struct {
	Blocks []*Block

	useCount uint64
}

// Visit marks the block as the most recently used block in the set. The
// per-set use counter never decreases, so every visited block receives a
// LastUse strictly greater than that of every other block in the set.
func (s *Set) Visit(block *Block) {
	s.useCount++
	block.LastUse = s.useCount
}
