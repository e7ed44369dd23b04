package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/thenoetrevino/taskflow/internal/fakeapi"
	"golang.org/x/crypto/bcrypt"
)

// devserver serves an in-memory TaskFlow API seeded with a demo account.
// It reads TASKFLOW_DEV_ADDR and TASKFLOW_DEV_SECRET, optionally from .env.
func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}

	addr := os.Getenv("TASKFLOW_DEV_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8000"
	}

	opts := []fakeapi.Option{fakeapi.WithBcryptCost(bcrypt.DefaultCost)}
	if secret := os.Getenv("TASKFLOW_DEV_SECRET"); secret != "" {
		opts = append(opts, fakeapi.WithSecret(secret))
	}

	gin.SetMode(gin.ReleaseMode)
	api := fakeapi.New(opts...)
	user, err := api.Seed()
	if err != nil {
		slog.Error("failed to seed demo data", "error", err)
		os.Exit(1)
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.ListenAndServe()
	}()

	slog.Info("taskflow dev server starting",
		"addr", addr,
		"demo_email", user.Email,
		"demo_password", fakeapi.DemoPassword,
		"pid", os.Getpid(),
	)

	select {
	case err := <-errChan:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}

	slog.Info("taskflow dev server shutting down gracefully")
}
