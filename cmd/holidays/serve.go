package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/cyp0633/libholiday/calendar"
	"github.com/cyp0633/libholiday/computus"
	"github.com/cyp0633/libholiday/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		configPath string
		listen     string
	)

	c := &cobra.Command{
		Use:     "serve",
		Short:   "Serve holiday feeds over HTTP",
		Example: "holidays serve --config ./holidays.yaml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config := server.DefaultConfig()
			if configPath != "" {
				var err error
				if config, err = server.LoadConfig(configPath); err != nil {
					return err
				}
			}
			if listen != "" {
				config.Listen = listen
			}
			// An explicit flag wins over the file
			if !cmd.Flags().Changed("log-level") {
				if err := a.setupLogger(config.LogLevel); err != nil {
					return err
				}
			}
			cmd.SilenceUsage = true

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, a, config)
		},
	}

	c.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	c.Flags().StringVar(&listen, "listen", "", "listen address, overrides the configuration")
	return c
}

// newHandler wires the feed and the metrics endpoint described by config
func newHandler(a *app, config server.Config) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	engine := computus.NewEngine(computus.Config{
		CacheEnabled: !config.Cache.Disabled,
		CacheConfig:  computus.CacheConfig{MaxEntries: config.Cache.MaxEntries},
		Logger:       a.logger,
		Metrics:      computus.NewMetrics(reg),
	})
	assembler := calendar.New(calendar.WithEngine(engine), calendar.WithLogger(a.logger))

	feed, err := server.New(config, server.Options{
		Assembler:  assembler,
		Logger:     a.logger,
		Registerer: reg,
	})
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(feed.Prefix(), feed)
	if config.MetricsPath != "" {
		mux.Handle(config.MetricsPath, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}
	return mux, nil
}

func serve(ctx context.Context, a *app, config server.Config) error {
	handler, err := newHandler(a, config)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         config.Listen,
		Handler:      handler,
		ReadTimeout:  config.ReadTimeout,
		WriteTimeout: config.WriteTimeout,
		IdleTimeout:  config.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting holiday feed",
			"listen", config.Listen,
			"prefix", config.URLPrefix,
			"metrics_path", config.MetricsPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", "timeout", config.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
