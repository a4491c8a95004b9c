// Package trace parses Valgrind memory traces and replays them against a
// cache model.
package trace

// An Op is the kind of memory operation that a trace line records.
type Op byte

const (
	// OpInstruction is an instruction fetch. Instruction fetches do not
	// touch the data cache.
	OpInstruction Op = 'I'

	// OpLoad is a data load.
	OpLoad Op = 'L'

	// OpStore is a data store.
	OpStore Op = 'S'

	// OpModify is a data load followed by a data store to the same address.
	OpModify Op = 'M'
)

// An Event is one record of a memory trace.
type Event struct {
	Op      Op
	Address uint64

	// Size is the access length in bytes. It is carried for diagnostics
	// only. Accesses are assumed to never cross block boundaries, so the
	// size does not affect hit/miss accounting.
	Size int
}
