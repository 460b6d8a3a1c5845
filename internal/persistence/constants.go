package persistence

import "time"

// File permissions for persisted state
const (
	DirPermission  = 0o755
	FilePermission = 0o644
)

// MidRenameRetryDelay is how long Load waits before re-reading a primary file
// that vanished while a backup exists, which is what a concurrent save looks
// like between its two renames.
const MidRenameRetryDelay = 25 * time.Millisecond

// Load sources
const (
	SourceDefault Source = iota
	SourcePrimary
	SourceBackup
)

// Error context messages for wrapped errors
const (
	ErrContextEncode        = "failed to encode payload"
	ErrContextWriteTemp     = "failed to write temp file"
	ErrContextRotateBackup  = "failed to rotate primary to backup"
	ErrContextReplace       = "failed to replace primary"
	ErrContextMissingDigest = "missing digest line"
	ErrContextDigest        = "digest mismatch"
	ErrContextDecode        = "failed to decode payload"
)

// Log messages
const (
	LogMsgRecoveredFromBackup = "Primary file failed verification, recovered from backup"
	LogMsgHealFailed          = "Failed to rewrite primary from backup"
	LogMsgBothCorrupt         = "Primary and backup failed verification, falling back to default"
	LogMsgRollbackFailed      = "Failed to restore backup after write failure"
	LogMsgSaved               = "State saved"
)

// Log field keys
const (
	LogFieldPath   = "path"
	LogFieldBackup = "backup"
	LogFieldError  = "error"
	LogFieldBytes  = "bytes"
)
