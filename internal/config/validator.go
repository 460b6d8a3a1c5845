package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"slices"
	"strings"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks ranges and combinations that Load cannot catch on its own.
// All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.DataDir) == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", EnvDataDir))
	}
	if strings.TrimSpace(c.CasesDir) == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", EnvCasesDir))
	}
	if c.BalanceFile == "" || c.InventoryFile == "" {
		errs = append(errs, fmt.Errorf("%s and %s must not be empty", EnvBalanceFile, EnvInventoryFile))
	} else if filepath.Clean(c.BalancePath()) == filepath.Clean(c.InventoryPath()) {
		errs = append(errs, fmt.Errorf("%s and %s must name different files", EnvBalanceFile, EnvInventoryFile))
	}
	if math.IsNaN(c.StartingBalance) || math.IsInf(c.StartingBalance, 0) || c.StartingBalance < 0 {
		errs = append(errs, fmt.Errorf("%s must be a non-negative number, got %v", EnvStartingBalance, c.StartingBalance))
	}
	if c.ReelLength <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive, got %d", EnvReelLength, c.ReelLength))
	}
	if c.PersistRetryDelay < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative, got %s", EnvPersistRetryDelay, c.PersistRetryDelay))
	}
	if !slices.Contains(validLogLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("%s must be one of %s, got %q", EnvLogLevel, strings.Join(validLogLevels, ", "), c.LogLevel))
	}
	if !slices.Contains(validLogFormats, c.LogFormat) {
		errs = append(errs, fmt.Errorf("%s must be one of %s, got %q", EnvLogFormat, strings.Join(validLogFormats, ", "), c.LogFormat))
	}

	return errors.Join(errs...)
}

// ValidateWithWarnings runs Validate and also returns warnings for settings
// that work but are probably not intended.
func (c *Config) ValidateWithWarnings() ([]string, error) {
	// First do the critical validation
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var warnings []string

	if c.Environment == EnvironmentProduction && c.LogFormat != "json" {
		warnings = append(warnings, "LOG_FORMAT is not json in production - log shippers expect structured output")
	}

	if c.StartingBalance == 0 {
		warnings = append(warnings, "STARTING_BALANCE is 0 - no case can be opened on a fresh data directory")
	}

	return warnings, nil
}
