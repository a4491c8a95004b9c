package simulation

import (
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/cachesim/cache"
)

// DefaultResultFileName is where the machine-readable counters go unless the
// user picks another location.
const DefaultResultFileName = ".cachesim_results"

// WriteSummary reports the final counters twice: a human-readable line on w,
// and a result file holding the same three integers space-separated for
// external grading and analysis tools.
func WriteSummary(w io.Writer, resultFileName string, stats cache.Stats) error {
	fmt.Fprintf(w, "hits:%d misses:%d evictions:%d\n",
		stats.Hits, stats.Misses, stats.Evictions)

	file, err := os.Create(resultFileName)
	if err != nil {
		return fmt.Errorf("cannot create result file: %w", err)
	}

	_, err = fmt.Fprintf(file, "%d %d %d\n",
		stats.Hits, stats.Misses, stats.Evictions)
	if err != nil {
		file.Close()
		return fmt.Errorf("cannot write result file: %w", err)
	}

	return file.Close()
}
