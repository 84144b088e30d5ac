package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/aretw0/nfa/internal/cli"
	"github.com/aretw0/nfa/internal/presentation/tui"
	httpAdapter "github.com/aretw0/nfa/pkg/adapters/http"
	"github.com/aretw0/nfa/pkg/observability"
	"github.com/aretw0/nfa/pkg/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Serves the automaton as a JSON API over HTTP, with Prometheus metrics on /metrics.
Verdicts are cached in memory, or in Redis when --redis-addr is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")
		redisAddr, _ := cmd.Flags().GetString("redis-addr")
		ttl, _ := cmd.Flags().GetDuration("cache-ttl")

		logger, err := newLogger(cmd)
		if err != nil {
			return err
		}

		// 1. Metrics
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics := observability.NewMetrics(reg)

		// 2. Automaton
		hooks := observability.Combine(metrics.Hooks(), observability.LoggingHooks(logger))
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		file, _ := cmd.Flags().GetString("file")
		n, err := cli.LoadAutomaton(cli.Config{File: file, Logger: logger, Hooks: hooks})
		if err != nil {
			return err
		}

		// 3. Cache
		cache, closeCache, err := cli.NewCache(ctx, cli.CacheConfig{
			RedisAddr: redisAddr,
			Prefix:    "nfa:" + n.Name() + ":",
			TTL:       ttl,
		}, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeCache(); err != nil {
				logger.Warn("failed to close cache", "err", err)
			}
		}()

		a := service.New(n,
			service.WithCache(cache),
			service.WithMetrics(metrics),
			service.WithLogger(logger),
		)

		// 4. Listen
		ln, err := net.Listen("tcp", ":"+port)
		if err != nil {
			return fmt.Errorf("failed to listen on port %s: %w", port, err)
		}
		tui.NewStyles().PrintBanner(cmd.ErrOrStderr(), fmt.Sprintf("serving %s on %s", n.Name(), ln.Addr()))

		handler := httpAdapter.NewHandler(a,
			httpAdapter.WithGatherer(reg),
			httpAdapter.WithLogger(logger),
		)
		return cli.Serve(ctx, ln, handler, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	serveCmd.Flags().String("redis-addr", "", "Redis address for the verdict cache (host:port)")
	serveCmd.Flags().Duration("cache-ttl", 0, "Expiry for cached verdicts in Redis (0 keeps them)")
}
