package trace

import (
	"bufio"
	"io"
	"log"

	"github.com/sarchlab/cachesim/cache"
)

// An Accessor consumes one memory access at a time. It is implemented by
// cache.Cache.
type Accessor interface {
	Access(addr uint64) cache.AccessResult
}

// A Tracer observes every access that a replayer performs. seq is the
// 1-based position of the access in replay order.
type Tracer interface {
	TraceAccess(seq uint64, event Event, result cache.AccessResult)
}

// A Replayer feeds the events of a memory trace into a cache, one access at
// a time, in trace order.
type Replayer struct {
	accessor Accessor
	reader   io.Reader
	logger   *log.Logger
	tracer   Tracer

	seq uint64
}

// Replay streams the trace to the end, applying every event to the cache.
// Loads and stores trigger one access each. A modify is a load followed by a
// store to the same address and triggers two. Instruction fetches trigger
// none. Lines that do not parse are skipped silently.
func (r *Replayer) Replay() error {
	scanner := bufio.NewScanner(r.reader)

	for scanner.Scan() {
		event, err := ParseLine(scanner.Text())
		if err != nil {
			continue
		}

		r.play(event)
	}

	return scanner.Err()
}

func (r *Replayer) play(event Event) {
	switch event.Op {
	case OpLoad, OpStore:
		r.access(event)
	case OpModify:
		r.access(event)
		r.access(event)
	case OpInstruction:
		// Out of scope for data-cache accounting.
	}
}

func (r *Replayer) access(event Event) {
	result := r.accessor.Access(event.Address)
	r.seq++

	if r.tracer != nil {
		r.tracer.TraceAccess(r.seq, event, result)
	}

	if r.logger != nil {
		r.logger.Printf("%c %x,%d %s",
			event.Op, event.Address, event.Size, outcome(result))
	}
}

func outcome(result cache.AccessResult) string {
	switch {
	case result.Hit:
		return "hit"
	case result.Evicted:
		return "miss eviction"
	default:
		return "miss"
	}
}
