package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/simulation"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the runs stored in a recording database.",
	Long: `report reads a database written by "run --record" and prints the ` +
		`stored run summaries. With --accesses, the individual replayed ` +
		`accesses are printed as well.`,
	Run: func(cmd *cobra.Command, _ []string) {
		reportRuns(cmd)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().String("db", "",
		"recording database file to read")
	reportCmd.Flags().Bool("accesses", false,
		"print the individual replayed accesses")
	reportCmd.Flags().Int("limit", 20,
		"maximum number of accesses to print")

	must(reportCmd.MarkFlagRequired("db"))
}

func reportRuns(cmd *cobra.Command) {
	reader := datarecording.NewReader(stringFlag(cmd, "db"))
	defer reader.Close()

	reader.MapTable(
		simulation.RunSummaryTableName, simulation.RunSummaryEntry{})
	reader.MapTable(
		simulation.AccessTableName, simulation.AccessEntry{})

	printSummaries(reader)

	if boolFlag(cmd, "accesses") {
		printAccesses(reader, intFlag(cmd, "limit"))
	}
}

func printSummaries(reader datarecording.DataReader) {
	summaries, _, err := reader.Query(
		context.Background(),
		simulation.RunSummaryTableName,
		datarecording.QueryParams{},
	)
	if err != nil {
		atexit.Fatal(err)
	}

	for _, s := range summaries {
		summary := s.(*simulation.RunSummaryEntry)
		fmt.Printf("run %s: trace=%s s=%d E=%d b=%d "+
			"hits:%d misses:%d evictions:%d\n",
			summary.RunID,
			summary.TraceFileName,
			summary.NumSetBits,
			summary.WayAssociativity,
			summary.Log2BlockSize,
			summary.Hits,
			summary.Misses,
			summary.Evictions,
		)
	}
}

func printAccesses(reader datarecording.DataReader, limit int) {
	accesses, totalCount, err := reader.Query(
		context.Background(),
		simulation.AccessTableName,
		datarecording.QueryParams{OrderBy: "Seq", Limit: limit},
	)
	if err != nil {
		atexit.Fatal(err)
	}

	for _, a := range accesses {
		access := a.(*simulation.AccessEntry)
		fmt.Printf("%6d %s %x,%d set=%d tag=%x %s\n",
			access.Seq,
			access.Op,
			access.Address,
			access.Size,
			access.SetID,
			access.Tag,
			describeAccess(access),
		)
	}

	if totalCount > len(accesses) {
		fmt.Printf("... %d more accesses\n", totalCount-len(accesses))
	}
}

func describeAccess(access *simulation.AccessEntry) string {
	switch {
	case access.Hit:
		return "hit"
	case access.Eviction:
		return "miss eviction"
	default:
		return "miss"
	}
}
