package main

import (
	"io"

	"github.com/osse101/gla-tools/internal/config"
	"github.com/osse101/gla-tools/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) io.Closer {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
	loggerConfig.LogDir = cfg.LogDir

	return logger.InitLogger(loggerConfig)
}
