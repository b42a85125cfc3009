// Command rescuectl manages the persisted role configuration and converts
// token amounts for operators.
package main

import (
	"fmt"
	"os"

	"github.com/rescuedao/rescuedao-api/libs/go/config"
	"github.com/rescuedao/rescuedao-api/libs/go/logger"
)

func main() {
	config.LoadDotEnv()
	logger.InitLoggerWithConfig(logger.LoggerConfig{
		Level:       envOr(logger.EnvLogLevel, "warn"),
		Stage:       envOr(config.EnvStage, "local"),
		EnableColor: true,
	})
	defer func() { _ = logger.Sync() }()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
