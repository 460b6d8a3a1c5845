package config

import "time"

// Environment variable names
const (
	EnvDataDir           = "DATA_DIR"
	EnvCasesDir          = "CASES_DIR"
	EnvBalanceFile       = "BALANCE_FILE"
	EnvInventoryFile     = "INVENTORY_FILE"
	EnvStartingBalance   = "STARTING_BALANCE"
	EnvReelLength        = "REEL_LENGTH"
	EnvPersistRetryDelay = "PERSIST_RETRY_DELAY"
	EnvLogLevel          = "LOG_LEVEL"
	EnvLogFormat         = "LOG_FORMAT"
	EnvLogDir            = "LOG_DIR"
	EnvServiceName       = "SERVICE_NAME"
	EnvVersion           = "VERSION"
	EnvEnvironment       = "ENVIRONMENT"
	EnvMetricsFile       = "METRICS_FILE"
)

// Defaults
const (
	DefaultDataDir           = "data"
	DefaultCasesDir          = "cases"
	DefaultBalanceFile       = "money.txt"
	DefaultInventoryFile     = "inventory.txt"
	DefaultStartingBalance   = 1000.0
	DefaultReelLength        = 20
	DefaultPersistRetryDelay = 25 * time.Millisecond
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultLogDir            = "logs"
	DefaultServiceName       = "casebox"
	DefaultVersion           = "dev"
	DefaultEnvironment       = "dev"
)

// EnvironmentProduction is the ENVIRONMENT value that enables production checks
const EnvironmentProduction = "prod"
