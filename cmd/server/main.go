package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/spacesedan/commentlens/config"
	"github.com/spacesedan/commentlens/internal/api"
	"github.com/spacesedan/commentlens/internal/clients"
	"github.com/spacesedan/commentlens/internal/logging"
	"github.com/spacesedan/commentlens/internal/monitoring"
	"github.com/spacesedan/commentlens/internal/processing"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		slog.Error("[Main] Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var (
		cache       processing.CommentCache
		cacheHealth *atomic.Bool
	)
	if cfg.Cache.Enabled() {
		vc, err := clients.NewValkeyCommentCache(ctx, cfg.Cache)
		if err != nil {
			slog.Warn("[Main] Comment cache unavailable, continuing without it",
				slog.String("error", err.Error()))
		} else {
			defer vc.Close()
			cache = vc
			cacheHealth = &atomic.Bool{}
			go monitoring.MonitorCacheHealth(ctx, vc, cacheHealth)
		}
	}

	s := api.NewServer(cfg, cache).WithCacheHealth(cacheHealth)
	addr := ":" + strconv.Itoa(cfg.ServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.Shutdown(shutdownCtx)
	}()

	slog.Info("[Main] Listening", slog.String("addr", addr))
	if err := s.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("[Main] Server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
