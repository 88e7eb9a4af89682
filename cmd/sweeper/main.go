package main

import (
	"context"
	"errors"
	"fmt"
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"github.com/md-zeon/sweeper/internal/config"
	"github.com/md-zeon/sweeper/internal/handlers"
	"github.com/md-zeon/sweeper/internal/middleware"
	"github.com/md-zeon/sweeper/internal/session"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func createLogger() *slog.Logger {
	if config.Development() {
		return slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}

func main() {
	logger := createLogger()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	registry := session.NewRegistry(config.SessionTTL())
	go registry.Sweep(ctx, time.Minute)

	handler := handlers.NewGameHandler(
		logger,
		registry,
		session.NewHighscores(100),
		config.NewWebSocket(),
		createRand(),
	)

	addr := config.Addr()
	server := &http.Server{
		Addr: addr,
		Handler: middleware.Wrap(
			handler.ServeMux(),
			middleware.Cors(),
			middleware.Logging(logger),
		),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		sCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(sCtx)
	})

	logger.Info(
		"game online",
		slog.String("addr", addr),
		slog.String("base path", config.BasePath()),
	)

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
