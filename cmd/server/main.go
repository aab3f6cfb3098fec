package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/flamesblue/server/internal/config"
	"codeberg.org/flamesblue/server/internal/logger"
)

// @title FlamesBlue AI Builder API
// @version 1.0
// @description Capability listing and deterministic prompt-to-HTML landing
// @description page generation, with a best-effort database diagnostic probe.
// @description Runs without external model dependencies.

func main() {
	logger.Info("starting flamesblue builder server")

	cfg := config.Load()

	srv := NewServer(cfg)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close database connection if one was established
	if srv.store != nil {
		if err := srv.store.Close(ctx); err != nil {
			logger.ErrorErr(err, "failed to close database connection")
		}
	}

	logger.Info("server stopped")
}
