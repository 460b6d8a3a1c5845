package bootstrap

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseBox_Go/internal/logger"
)

func TestSetupLogger_WritesStdoutAndSessionFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	var stdout bytes.Buffer
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	f, err := setupLogger(dir, logger.DefaultConfig(), &stdout, now)
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	assert.Equal(t, filepath.Join(dir, "session_2024-05-01_09-30-00.log"), f.Name())
	assert.Contains(t, stdout.String(), LogMsgStartingCaseBox)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgLoggingInitialized)
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("session_2024-01-%02d_00-00-00.log", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Len(t, names, LogFileRetentionCount+1)
	assert.Contains(t, names, "notes.txt")
	assert.NotContains(t, names, "session_2024-01-03_00-00-00.log")
	assert.Contains(t, names, "session_2024-01-04_00-00-00.log")
	assert.Contains(t, names, "session_2024-01-12_00-00-00.log")
}

func TestCleanupLogs_MissingDirIsIgnored(t *testing.T) {
	assert.NotPanics(t, func() {
		cleanupLogs(filepath.Join(t.TempDir(), "nope"))
	})
}
