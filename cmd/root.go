// Package cmd provides the command-line interface for cachesim.
package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use: "cachesim",
	Short: "Cachesim replays Valgrind memory traces against a " +
		"set-associative cache model.",
	Long: `Cachesim replays Valgrind memory traces against a set-associative ` +
		`cache model with LRU replacement, and reports the number of hits, ` +
		`misses, and evictions. Runs can optionally be recorded into a ` +
		`SQLite database and observed live through a monitoring server.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	// A .env file can predefine the environment-based defaults, such as
	// CACHESIM_MONITOR and CACHESIM_RECORD.
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
