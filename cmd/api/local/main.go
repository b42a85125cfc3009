//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rescuedao/rescuedao-api/apps/api/server"
	"github.com/rescuedao/rescuedao-api/libs/go/config"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
	"go.uber.org/zap"
)

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize logger first
	logger.InitLogger(cfg.Stage)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize server", zap.Error(err))
	}
	defer srv.Close()

	if err := srv.Run(ctx); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}
