package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/config"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Validate a configuration file without starting the server.

All validation errors are reported together, not just the first one.

Examples:
  # Validate the default config
  callisto validate

  # Validate a specific file
  callisto validate --config /etc/callisto/config.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}

		fmt.Printf("%s: configuration is valid\n", cfgFile)
		fmt.Printf("  listen:  %s\n", cfg.Proxy.ListenAddress)
		fmt.Printf("  upstream: %s\n", cfg.Proxy.UpstreamURL)
		fmt.Printf("  tracing: enabled=%v operation=%s verbose=%v\n",
			cfg.Telemetry.Tracing.Enabled,
			cfg.Telemetry.Tracing.OperationName,
			cfg.Telemetry.Tracing.Verbose,
		)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
