package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"natnails.dev/internal/config"
	"natnails.dev/internal/handlers"
	"natnails.dev/internal/logger"
	"natnails.dev/internal/middleware"
	"natnails.dev/internal/ratelimit"
	"natnails.dev/internal/services"
	"natnails.dev/internal/store"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Serve the NatNails site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&cfgFile, "config", "c", "natnails.yaml", "path to the YAML config file")
	return cmd
}

func run(parent context.Context, cfg *config.Config) error {
	if parent == nil {
		parent = context.Background()
	}
	log := logger.New("natnails", logger.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	content, err := config.LoadContent(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	db, err := store.Open(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	limiter := ratelimit.NewMemory()
	if addr := cfg.RateLimit.RedisAddr; addr != "" {
		redisLimiter, err := ratelimit.NewRedis(addr, cfg.RateLimit.RedisPass, cfg.RateLimit.RedisDB, log)
		if err != nil {
			log.Warn("redis rate limiter unavailable", "error", err)
		} else {
			limiter.Close()
			limiter = redisLimiter
		}
	}
	defer limiter.Close()

	router, err := handlers.SetupRoutes(handlers.Dependencies{
		Config:   cfg,
		Content:  content,
		Contacts: services.NewContactService(db, limiter, cfg.RateLimit.Limit, cfg.RateLimit.Window, log),
		Metrics:  middleware.NewMetrics(),
		Logger:   log,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelError),
	}

	errorCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "addr", cfg.Server.Addr, "projects", len(content.Projects.Projects))
		errorCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
		log.Info("server stopped")
		return nil
	case err := <-errorCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}
}
