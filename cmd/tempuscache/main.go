// Command tempuscache runs an interactive REPL front-end over the
// tempuscache library: a small, independently replaceable collaborator
// that is not part of the cache's tested core.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tempuscache/tempuscache"
	"github.com/tempuscache/tempuscache/metrics"
)

var (
	maxMemoryFlag  int64
	maxKeysFlag    int
	metricsAddr    string
	verboseLogging bool
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tempuscache",
		Short: "An in-process key-value cache with an interactive REPL",
		RunE:  runServe,
	}

	cmd.Flags().Int64Var(&maxMemoryFlag, "max-memory", 100*1024*1024, "byte budget for the cache")
	cmd.Flags().IntVar(&maxKeysFlag, "max-keys", 10000, "maximum number of retained keys")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().BoolVar(&verboseLogging, "verbose", false, "emit debug-level structured logs to stderr")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if !verboseLogging {
		logger = logger.Level(zerolog.InfoLevel)
	} else {
		logger = logger.Level(zerolog.DebugLevel)
	}

	opts := []tempuscache.Option{
		tempuscache.WithMaxMemory(maxMemoryFlag),
		tempuscache.WithMaxKeys(maxKeysFlag),
		tempuscache.WithLogger(logger),
	}

	if metricsAddr != "" {
		registry := prometheus.NewRegistry()
		collector := metrics.NewCollector(registry)
		opts = append(opts, tempuscache.WithMetrics(collector))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		go func() {
			logger.Info().Str("addr", metricsAddr).Msg("serving /metrics")
			if err := http.ListenAndServe(metricsAddr, mux); err != nil {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	cache, err := tempuscache.New(opts...)
	if err != nil {
		return err
	}

	return newREPL(cache, os.Stdout).run()
}
