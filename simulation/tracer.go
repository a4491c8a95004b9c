package simulation

import (
	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/trace"
)

// Database table names used by recorded runs.
const (
	AccessTableName     = "trace_accesses"
	RunSummaryTableName = "run_summary"
)

// An AccessEntry is one replayed access in the database.
type AccessEntry struct {
	Seq      uint64
	Op       string
	Address  uint64
	Size     int
	SetID    int
	Tag      uint64
	Hit      bool
	Eviction bool
}

// A RunSummaryEntry stores the geometry and the final counters of one run.
type RunSummaryEntry struct {
	RunID            string
	TraceFileName    string
	NumSetBits       int
	WayAssociativity int
	Log2BlockSize    int
	Accesses         uint64
	Hits             uint64
	Misses           uint64
	Evictions        uint64
}

// A DBTracer records every replayed access into a database using the data
// recorder.
type DBTracer struct {
	recorder datarecording.DataRecorder
}

// NewDBTracer creates a DBTracer and prepares the table it writes to.
func NewDBTracer(recorder datarecording.DataRecorder) *DBTracer {
	recorder.CreateTable(AccessTableName, AccessEntry{})

	return &DBTracer{recorder: recorder}
}

// TraceAccess stores one access.
func (t *DBTracer) TraceAccess(
	seq uint64,
	event trace.Event,
	result cache.AccessResult,
) {
	t.recorder.InsertData(AccessTableName, AccessEntry{
		Seq:      seq,
		Op:       string(rune(event.Op)),
		Address:  event.Address,
		Size:     event.Size,
		SetID:    result.SetID,
		Tag:      result.Tag,
		Hit:      result.Hit,
		Eviction: result.Evicted,
	})
}
