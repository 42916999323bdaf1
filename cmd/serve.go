package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"cafeteria/internal/adapters/out/postgres"
	redisadapter "cafeteria/internal/adapters/out/redis"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var migrate bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server and scheduled jobs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, migrate)
		},
	}
	c.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return c
}

func serve(ctx context.Context, migrate bool) error {
	cfg, logger, conns, err := boot(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conns.Close() }()

	if migrate {
		if err = postgres.Migrate(conns.SQL); err != nil {
			return err
		}
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		if rdb, err = redisadapter.Connect(ctx, cfg.RedisURL); err != nil {
			return err
		}
		defer func() { _ = rdb.Close() }()
	}

	root, err := NewCompositionRoot(cfg, conns, rdb, logger)
	if err != nil {
		return err
	}

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e := root.CreateHTTPHandler()
	srv := &http.Server{
		Addr:              net.JoinHostPort("0.0.0.0", cfg.HTTPPort),
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
