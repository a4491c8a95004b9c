package cmd

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/cachesim/datarecording"
	"github.com/sarchlab/cachesim/monitoring"
	"github.com/sarchlab/cachesim/simulation"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Replay a memory trace against a cache model.",
	Long: `run constructs a cache from the given geometry, replays the ` +
		`trace file against it, and reports the hit, miss, and eviction ` +
		`counts. Loads and stores trigger one access each, modifies trigger ` +
		`two, and instruction fetches are ignored.`,
	Run: func(cmd *cobra.Command, _ []string) {
		runSimulation(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().IntP("num-set-bits", "s", 0,
		"number of set-index bits (the cache has 2^s sets)")
	runCmd.Flags().IntP("associativity", "E", 0,
		"number of lines per set")
	runCmd.Flags().IntP("block-bits", "b", 0,
		"number of block-offset bits (blocks are 2^b bytes)")
	runCmd.Flags().StringP("trace", "t", "",
		"trace file to replay")
	runCmd.Flags().BoolP("verbose", "v", false,
		"log every replayed event")
	runCmd.Flags().StringP("output", "o", simulation.DefaultResultFileName,
		"file that the final counters are written to")
	runCmd.Flags().Bool("record", false,
		"record every access and the run summary into a SQLite database")
	runCmd.Flags().String("db", "",
		"name of the recording database, without the .sqlite3 suffix")
	runCmd.Flags().Bool("monitor", false,
		"expose the run through a monitoring web server")
	runCmd.Flags().Int("monitor-port", 0,
		"port of the monitoring server, 0 picks a random port")
	runCmd.Flags().Bool("open-dashboard", false,
		"open the monitoring page in the default browser")

	must(runCmd.MarkFlagRequired("num-set-bits"))
	must(runCmd.MarkFlagRequired("associativity"))
	must(runCmd.MarkFlagRequired("block-bits"))
	must(runCmd.MarkFlagRequired("trace"))
}

func runSimulation(cmd *cobra.Command) {
	numSetBits := intFlag(cmd, "num-set-bits")
	associativity := intFlag(cmd, "associativity")
	blockBits := intFlag(cmd, "block-bits")

	if numSetBits < 1 || associativity < 1 || blockBits < 1 {
		atexit.Fatal("geometry parameters -s, -E, and -b must all be at " +
			"least 1")
	}

	builder := simulation.MakeBuilder().
		WithNumSetBits(numSetBits).
		WithWayAssociativity(associativity).
		WithLog2BlockSize(blockBits).
		WithTraceFileName(stringFlag(cmd, "trace")).
		WithResultFileName(stringFlag(cmd, "output")).
		WithVerbose(boolFlag(cmd, "verbose"))

	if boolFlag(cmd, "record") || envBool("CACHESIM_RECORD") {
		builder = builder.WithRecorder(
			datarecording.NewDataRecorder(stringFlag(cmd, "db")))
	}

	monitor := startMonitor(cmd)
	if monitor != nil {
		builder = builder.WithMonitor(monitor)
	}

	s := builder.Build()
	defer s.Terminate()

	if err := s.Run(); err != nil {
		s.Terminate()
		atexit.Fatal(err)
	}
}

func startMonitor(cmd *cobra.Command) *monitoring.Monitor {
	if !boolFlag(cmd, "monitor") && !envBool("CACHESIM_MONITOR") {
		return nil
	}

	port := intFlag(cmd, "monitor-port")
	if port == 0 {
		port = envInt("CACHESIM_MONITOR_PORT")
	}

	monitor := monitoring.NewMonitor().WithPortNumber(port)
	monitor.StartServer()

	if boolFlag(cmd, "open-dashboard") {
		monitor.OpenDashboard()
	}

	return monitor
}

func intFlag(cmd *cobra.Command, name string) int {
	v, err := cmd.Flags().GetInt(name)
	must(err)
	return v
}

func stringFlag(cmd *cobra.Command, name string) string {
	v, err := cmd.Flags().GetString(name)
	must(err)
	return v
}

func boolFlag(cmd *cobra.Command, name string) bool {
	v, err := cmd.Flags().GetBool(name)
	must(err)
	return v
}

func envBool(name string) bool {
	v := os.Getenv(name)
	return v == "1" || v == "true"
}

func envInt(name string) int {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil {
		return 0
	}

	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
