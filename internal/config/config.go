package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the host configuration. The core packages never read it
// directly; the host passes explicit values down.
type Config struct {
	DataDir           string
	CasesDir          string
	BalanceFile       string
	InventoryFile     string
	StartingBalance   float64
	ReelLength        int
	PersistRetryDelay time.Duration

	LogLevel    string
	LogFormat   string
	LogDir      string
	ServiceName string
	Version     string
	Environment string

	MetricsFile string // empty disables the textfile export
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		DataDir:           getEnv(EnvDataDir, DefaultDataDir),
		CasesDir:          getEnv(EnvCasesDir, DefaultCasesDir),
		BalanceFile:       getEnv(EnvBalanceFile, DefaultBalanceFile),
		InventoryFile:     getEnv(EnvInventoryFile, DefaultInventoryFile),
		ReelLength:        getEnvAsInt(EnvReelLength, DefaultReelLength),
		PersistRetryDelay: getEnvAsDuration(EnvPersistRetryDelay, DefaultPersistRetryDelay),
		LogLevel:          strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:         strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		LogDir:            getEnv(EnvLogDir, DefaultLogDir),
		ServiceName:       getEnv(EnvServiceName, DefaultServiceName),
		Version:           getEnv(EnvVersion, DefaultVersion),
		Environment:       getEnv(EnvEnvironment, DefaultEnvironment),
		MetricsFile:       getEnv(EnvMetricsFile, ""),
	}

	balanceStr := getEnv(EnvStartingBalance, strconv.FormatFloat(DefaultStartingBalance, 'f', -1, 64))
	balance, err := strconv.ParseFloat(balanceStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", EnvStartingBalance, err)
	}
	cfg.StartingBalance = balance

	return cfg, nil
}

// BalancePath is where the balance file lives.
func (c *Config) BalancePath() string {
	return filepath.Join(c.DataDir, c.BalanceFile)
}

// InventoryPath is where the inventory file lives.
func (c *Config) InventoryPath() string {
	return filepath.Join(c.DataDir, c.InventoryFile)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the default when the variable is unset or not a
// Go duration string
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}
