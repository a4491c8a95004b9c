package trace

import (
	"io"
	"log"
)

// A Builder can build replayers.
type Builder struct {
	accessor Accessor
	reader   io.Reader
	logger   *log.Logger
	tracer   Tracer
}

// MakeBuilder creates a builder with default parameters.
func MakeBuilder() Builder {
	return Builder{}
}

// WithAccessor sets the cache that the replayer feeds.
func (b Builder) WithAccessor(accessor Accessor) Builder {
	b.accessor = accessor
	return b
}

// WithReader sets the source of trace lines.
func (b Builder) WithReader(reader io.Reader) Builder {
	b.reader = reader
	return b
}

// WithVerboseLogger sets a logger that reports every replayed event. A nil
// logger keeps the replayer quiet.
func (b Builder) WithVerboseLogger(logger *log.Logger) Builder {
	b.logger = logger
	return b
}

// WithTracer sets a tracer that observes every replayed access.
func (b Builder) WithTracer(tracer Tracer) Builder {
	b.tracer = tracer
	return b
}

// Build builds a replayer.
func (b Builder) Build() *Replayer {
	if b.accessor == nil {
		panic("replayer requires an accessor")
	}

	if b.reader == nil {
		panic("replayer requires a trace reader")
	}

	return &Replayer{
		accessor: b.accessor,
		reader:   b.reader,
		logger:   b.logger,
		tracer:   b.tracer,
	}
}
