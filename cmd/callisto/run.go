package main

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/spf13/cobra"

	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/proxy"
	"mercator-hq/callisto/pkg/server"
	"mercator-hq/callisto/pkg/telemetry/health"
	"mercator-hq/callisto/pkg/telemetry/logging"
	"mercator-hq/callisto/pkg/telemetry/metrics"
	"mercator-hq/callisto/pkg/telemetry/tracing"
	"mercator-hq/callisto/pkg/telemetry/tracing/oteldriver"
)

var runFlags struct {
	listenAddress string
	logLevel      string
	watch         bool
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the Callisto proxy server",
	Long: `Start the Callisto proxy server with the specified configuration.

The server listens on the configured address, forwards requests to the
configured upstream, and traces requests according to the trace status
embedded in their x-request-id.

Examples:
  # Start with default config
  callisto run

  # Start with custom config
  callisto run --config /etc/callisto/config.yaml

  # Override listen address
  callisto run --listen 0.0.0.0:8080

  # Reload configuration on file change
  callisto run --watch`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runFlags.listenAddress, "listen", "l", "", "override listen address")
	runCmd.Flags().StringVar(&runFlags.logLevel, "log-level", "", "override log level (debug, info, warn, error)")
	runCmd.Flags().BoolVar(&runFlags.watch, "watch", false, "reload configuration on file change")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if runFlags.listenAddress != "" {
		cfg.Proxy.ListenAddress = runFlags.listenAddress
	}
	if runFlags.logLevel != "" {
		cfg.Telemetry.Logging.Level = runFlags.logLevel
	}

	logger, err := logging.New(cfg.Telemetry.Logging, nil)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	store := config.NewStore(cfg)

	var driver tracing.Driver = tracing.NoopDriver{}
	if cfg.Telemetry.Tracing.Enabled {
		otel, err := oteldriver.New(&cfg.Telemetry.Tracing)
		if err != nil {
			return fmt.Errorf("failed to initialize tracing: %w", err)
		}
		defer func() {
			if err := otel.Shutdown(context.Background()); err != nil {
				logger.Error("tracing shutdown failed", "error", err)
			}
		}()
		driver = otel
	}

	var collector *metrics.Collector
	if cfg.Telemetry.Metrics.Enabled {
		collector = metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
	}

	tracer := tracing.NewTracer(driver, cfg.Node)
	handler := proxy.NewHandler(store, tracer, collector, logger)

	checker := health.New(0)
	checker.RegisterCheck("upstream", upstreamCheck(store))

	if runFlags.watch {
		watcher, err := config.NewWatcher(cfgFile, logger, store.Replace)
		if err != nil {
			return fmt.Errorf("failed to create config watcher: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("failed to start config watcher: %w", err)
		}
		defer watcher.Stop()
	}

	srv := server.NewServer(store, handler, collector, checker, server.VersionInfo{
		Version:   Version,
		Commit:    GitCommit,
		BuildTime: BuildDate,
	}, logger)
	return srv.Start(cmd.Context())
}

// upstreamCheck reports whether the configured upstream accepts TCP
// connections. It reads the active config snapshot on each probe so a
// reload is reflected immediately.
func upstreamCheck(store *config.Store) health.CheckFunc {
	return func(ctx context.Context) error {
		upstream := store.Load().Proxy.UpstreamURL
		if upstream == "" {
			return fmt.Errorf("no upstream configured")
		}

		u, err := url.Parse(upstream)
		if err != nil {
			return fmt.Errorf("invalid upstream url: %w", err)
		}
		host := u.Host
		if u.Port() == "" {
			port := "80"
			if u.Scheme == "https" {
				port = "443"
			}
			host = net.JoinHostPort(u.Hostname(), port)
		}

		var d net.Dialer
		conn, err := d.DialContext(ctx, "tcp", host)
		if err != nil {
			return err
		}
		return conn.Close()
	}
}
