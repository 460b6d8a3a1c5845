package domain

// DefaultStartingBalance is the balance granted on first run.
const DefaultStartingBalance = 1000.0

// Persisted file naming
const (
	BackupSuffix = ".bak"
	TempSuffix   = ".tmp"
)
