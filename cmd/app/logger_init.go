package main

import (
	"github.com/osse101/CaseBox_Go/internal/config"
	"github.com/osse101/CaseBox_Go/internal/logger"
)

// loggerConfig builds the logger configuration from the app configuration
func loggerConfig(cfg *config.Config) logger.Config {
	// Determine if we should add source info (only in dev)
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	return logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		addSource,
	)
}
