package simulation

import (
	"github.com/rs/xid"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/monitoring"
)

// A Builder can build simulations.
type Builder struct {
	numSetBits       int
	wayAssociativity int
	log2BlockSize    int

	traceFileName  string
	resultFileName string
	verbose        bool

	recorder datarecording.DataRecorder
	monitor  *monitoring.Monitor
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{
		resultFileName: DefaultResultFileName,
	}
}

// WithNumSetBits sets the number of set-index bits of the cache.
func (b Builder) WithNumSetBits(numSetBits int) Builder {
	b.numSetBits = numSetBits
	return b
}

// WithWayAssociativity sets the number of blocks per set of the cache.
func (b Builder) WithWayAssociativity(wayAssociativity int) Builder {
	b.wayAssociativity = wayAssociativity
	return b
}

// WithLog2BlockSize sets the number of block-offset bits of the cache.
func (b Builder) WithLog2BlockSize(log2BlockSize int) Builder {
	b.log2BlockSize = log2BlockSize
	return b
}

// WithTraceFileName sets the trace to replay.
func (b Builder) WithTraceFileName(traceFileName string) Builder {
	b.traceFileName = traceFileName
	return b
}

// WithResultFileName sets where the machine-readable counters are written.
func (b Builder) WithResultFileName(resultFileName string) Builder {
	b.resultFileName = resultFileName
	return b
}

// WithVerbose makes the simulation log every replayed event.
func (b Builder) WithVerbose(verbose bool) Builder {
	b.verbose = verbose
	return b
}

// WithRecorder attaches a data recorder that stores every access and the
// run summary.
func (b Builder) WithRecorder(recorder datarecording.DataRecorder) Builder {
	b.recorder = recorder
	return b
}

// WithMonitor attaches a monitor that exposes the run through a web server.
func (b Builder) WithMonitor(monitor *monitoring.Monitor) Builder {
	b.monitor = monitor
	return b
}

// Build builds a simulation with a freshly constructed cache.
func (b Builder) Build() *Simulation {
	s := &Simulation{
		id:               xid.New().String(),
		numSetBits:       b.numSetBits,
		wayAssociativity: b.wayAssociativity,
		log2BlockSize:    b.log2BlockSize,
		traceFileName:    b.traceFileName,
		resultFileName:   b.resultFileName,
		verbose:          b.verbose,
		recorder:         b.recorder,
		monitor:          b.monitor,
	}

	s.cache = cache.MakeBuilder().
		WithNumSetBits(b.numSetBits).
		WithWayAssociativity(b.wayAssociativity).
		WithLog2BlockSize(b.log2BlockSize).
		Build()

	if s.monitor != nil {
		s.monitor.RegisterSubject("Cache", s.cache)
	}

	return s
}
