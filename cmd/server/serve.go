package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/firetop/gamebook-api/internal/config"
	"github.com/firetop/gamebook-api/internal/dataset"
	"github.com/firetop/gamebook-api/internal/dice"
	"github.com/firetop/gamebook-api/internal/handlers/ws"
	"github.com/firetop/gamebook-api/internal/orchestrators/game"
	redisclient "github.com/firetop/gamebook-api/internal/redis"
	"github.com/firetop/gamebook-api/internal/repositories/player"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the WebSocket server",
	Long:  `Start the gamebook server: loads the narrative dataset, connects to Redis, and serves the WebSocket gateway.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "listen address (overrides LISTEN_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if listenAddr != "" {
		cfg.ListenAddr = listenAddr
	}

	setupLogger(cfg.LogLevel)

	ds, err := dataset.Load(&dataset.Config{
		StoryPath: cfg.StoryPath,
		TextsPath: cfg.TextsPath,
	})
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	slog.Info("dataset loaded", "sections", ds.Len(), "path", cfg.StoryPath)

	client, err := redisclient.NewClient(cfg.RedisEndpoint, &redisclient.Options{
		UseTLS: cfg.RedisUseTLS,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}

	repo, err := player.NewRedis(&player.RedisConfig{Client: client})
	if err != nil {
		return fmt.Errorf("failed to create player repository: %w", err)
	}

	registry := ws.NewRegistry()

	svc, err := game.NewOrchestrator(&game.Config{
		PlayerRepo: repo,
		Dataset:    ds,
		Sink:       registry,
		Roller:     dice.NewToolkitRoller(),
	})
	if err != nil {
		return fmt.Errorf("failed to create game service: %w", err)
	}

	handler, err := ws.NewHandler(&ws.HandlerConfig{
		GameService: svc,
		Registry:    registry,
	})
	if err != nil {
		return fmt.Errorf("failed to create websocket handler: %w", err)
	}

	mux := http.NewServeMux()
	mux.Handle("/ws", handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	errChan := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err.Error())
			_ = srv.Close()
		}
		return nil
	case err := <-errChan:
		return err
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
