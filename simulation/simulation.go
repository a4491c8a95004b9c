// Package simulation wires a cache model, a trace replayer, and the optional
// recording and monitoring services into one simulation run.
package simulation

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sarchlab/cachesim/cache"
	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/monitoring"
	"github.com/sarchlab/cachesim/trace"
)

// A Simulation replays one memory trace against one cache and reports the
// resulting counters.
type Simulation struct {
	id string

	numSetBits       int
	wayAssociativity int
	log2BlockSize    int

	traceFileName  string
	resultFileName string
	verbose        bool

	cache    *cache.Cache
	recorder datarecording.DataRecorder
	monitor  *monitoring.Monitor
}

// ID returns the unique ID of the simulation run.
func (s *Simulation) ID() string {
	return s.id
}

// Cache returns the simulated cache.
func (s *Simulation) Cache() *cache.Cache {
	return s.cache
}

// Run replays the whole trace and reports the counters. The trace is
// processed strictly in order, one access at a time.
func (s *Simulation) Run() error {
	file, err := os.Open(s.traceFileName)
	if err != nil {
		return fmt.Errorf("cannot open trace: %w", err)
	}
	defer file.Close()

	reader, bar := s.attachProgress(file)

	replayer := s.buildReplayer(reader)
	if err := replayer.Replay(); err != nil {
		return fmt.Errorf("cannot replay trace: %w", err)
	}

	if bar != nil {
		s.monitor.CompleteProgressBar(bar)
	}

	stats := s.cache.Stats()

	s.recordSummary(stats)

	return WriteSummary(os.Stdout, s.resultFileName, stats)
}

// Terminate releases the services attached to the simulation.
func (s *Simulation) Terminate() {
	if s.recorder != nil {
		s.recorder.Close()
	}

	if s.monitor != nil {
		s.monitor.StopServer()
	}
}

func (s *Simulation) buildReplayer(reader io.Reader) *trace.Replayer {
	builder := trace.MakeBuilder().
		WithAccessor(s.cache).
		WithReader(reader)

	if s.verbose {
		builder = builder.WithVerboseLogger(log.New(os.Stdout, "", 0))
	}

	if s.recorder != nil {
		builder = builder.WithTracer(NewDBTracer(s.recorder))
	}

	return builder.Build()
}

// attachProgress wraps the trace file so that reading it advances a progress
// bar on the monitor, when one is attached.
func (s *Simulation) attachProgress(file *os.File) (
	io.Reader,
	*monitoring.ProgressBar,
) {
	if s.monitor == nil {
		return file, nil
	}

	info, err := file.Stat()
	if err != nil {
		return file, nil
	}

	bar := s.monitor.CreateProgressBar(
		"Replaying "+s.traceFileName, uint64(info.Size()))

	return &progressReader{reader: file, bar: bar}, bar
}

func (s *Simulation) recordSummary(stats cache.Stats) {
	if s.recorder == nil {
		return
	}

	s.recorder.CreateTable(RunSummaryTableName, RunSummaryEntry{})
	s.recorder.InsertData(RunSummaryTableName, RunSummaryEntry{
		RunID:            s.id,
		TraceFileName:    s.traceFileName,
		NumSetBits:       s.numSetBits,
		WayAssociativity: s.wayAssociativity,
		Log2BlockSize:    s.log2BlockSize,
		Accesses:         stats.Accesses,
		Hits:             stats.Hits,
		Misses:           stats.Misses,
		Evictions:        stats.Evictions,
	})
	s.recorder.Flush()
}

type progressReader struct {
	reader io.Reader
	bar    *monitoring.ProgressBar
}

func (r *progressReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	if n > 0 {
		r.bar.IncrementFinished(uint64(n))
	}

	return n, err
}
