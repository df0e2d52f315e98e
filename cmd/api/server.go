package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"movie-app/internal/config"
	"movie-app/pkg/container"
)

const shutdownTimeout = 10 * time.Second

// Serve builds the container, starts the HTTP server and blocks until
// SIGINT or SIGTERM.
func Serve(cfg *config.Config) error {
	// ========================================
	// 1. BUILD DI CONTAINER
	// ========================================
	appContainer, err := container.NewContainer(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer appContainer.Cleanup()

	// ========================================
	// 2. SETUP ROUTER
	// ========================================
	router, err := SetupRouter(appContainer)
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	// ========================================
	// 3. CONFIGURE HTTP SERVER
	// ========================================
	port := cfg.App.Port
	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", port),
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	// ========================================
	// 4. START SERVER (NON-BLOCKING)
	// ========================================
	serveErr := make(chan error, 1)
	go func() {
		log.Info().Msgf("Server running on http://localhost:%s", port)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// ========================================
	// 5. GRACEFUL SHUTDOWN
	// ========================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		return fmt.Errorf("failed to start server: %w", err)
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited gracefully")
	return nil
}
