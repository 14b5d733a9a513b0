package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"manifold-sniper/internal/config"
	"manifold-sniper/internal/journal"
	"manifold-sniper/internal/manifold"
	"manifold-sniper/internal/reactor"
	"manifold-sniper/internal/stream"
	"manifold-sniper/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	handle := flag.String("handle", "", "handle of the user to watch")
	apiKey := flag.String("key", "", "Manifold API key (or MANIFOLD_API_KEY)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting sniper",
		"version", version.Version,
		"commit", version.Commit,
	)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags and environment override the file
	if *handle != "" {
		cfg.Watch.Handle = *handle
	}
	if *apiKey != "" {
		cfg.API.Key = *apiKey
	} else if cfg.API.Key == "" {
		cfg.API.Key = os.Getenv("MANIFOLD_API_KEY")
	}

	if cfg.Watch.Handle == "" || cfg.API.Key == "" {
		fmt.Fprintln(os.Stderr, "usage: sniper -handle <user> -key <api-key> [-config <file>]")
		os.Exit(2)
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Create context with signal-driven cancellation
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := manifold.NewClient(
		cfg.API.BaseURL,
		cfg.API.Key,
		manifold.WithLogger(logger),
		manifold.WithTimeouts(cfg.API.UserTimeout, cfg.API.MarketTimeout, cfg.API.TradeTimeout),
	)

	// Resolve the watched identity once; everything downstream keys off
	// the opaque user ID, never the handle.
	watched, err := client.GetUserByHandle(ctx, cfg.Watch.Handle)
	if err != nil {
		logger.Error("failed to resolve watched user", "handle", cfg.Watch.Handle, "error", err)
		os.Exit(1)
	}
	logger.Info("watching user",
		"handle", cfg.Watch.Handle,
		"user_id", watched.ID,
	)

	// Verify the credential before streaming
	me, err := client.GetMe(ctx)
	if err != nil {
		logger.Error("api key check failed", "error", err)
		os.Exit(1)
	}
	logger.Info("trading as",
		"username", me.Username,
		"balance", me.Balance,
	)

	var recorder reactor.Recorder
	if cfg.Database != nil {
		jnl, err := journal.Open(ctx, *cfg.Database, logger)
		if err != nil {
			logger.Error("failed to open reaction journal", "error", err)
			os.Exit(1)
		}
		defer jnl.Close()
		recorder = jnl
		logger.Info("reaction journal enabled",
			"host", cfg.Database.Host,
			"database", cfg.Database.Name,
		)
	}

	streamClient := stream.NewClient(stream.ClientConfig{
		URL:          cfg.Stream.URL,
		PingInterval: cfg.Stream.PingInterval,
		WriteTimeout: cfg.Stream.WriteTimeout,
		BufferSize:   cfg.Stream.BufferSize,
	}, logger)

	if err := streamClient.Connect(ctx); err != nil {
		logger.Error("failed to connect stream", "url", cfg.Stream.URL, "error", err)
		os.Exit(1)
	}
	defer streamClient.Close()

	logger.Info("sniper running", "stream_url", cfg.Stream.URL)

	r := reactor.New(watched.ID, client, recorder, logger)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.Run(gctx, streamClient.Events())
	})

	g.Go(func() error {
		select {
		case err := <-streamClient.Errors():
			return fmt.Errorf("stream: %w", err)
		case <-gctx.Done():
			return gctx.Err()
		}
	})

	err = g.Wait()
	streamClient.Close()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("sniper stopped", "error", err)
		os.Exit(1)
	}

	logger.Info("sniper stopped")
}

func loadConfig(path string) (*config.SniperConfig, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadWithDefaults(path)
}
