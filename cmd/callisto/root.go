package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "callisto",
	Short: "Mercator Callisto - tracing edge proxy",
	Long: `Mercator Callisto is an HTTP edge proxy with request tracing.

Each inbound request is classified by the trace status embedded in its
x-request-id: health checks and unmarked requests pass through untraced,
while client-forced, service-forced, and sampled requests produce a span
enriched with a canonical set of request, response, and timing tags and
exported over OTLP.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.yaml", "config file path")
}
