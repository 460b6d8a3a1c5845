package bootstrap

import (
	"context"

	"github.com/osse101/CaseBox_Go/internal/logger"
	"github.com/osse101/CaseBox_Go/internal/metrics"
)

// GracefulShutdown flushes what the process keeps outside the state files.
// Every mutation is already on disk, so the only work left is the optional
// metrics textfile. Errors are logged, never returned.
func GracefulShutdown(ctx context.Context, app *App) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	if path := app.Config.MetricsFile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			log.Error(LogMsgMetricsWriteFailed, LogFieldPath, path, LogFieldError, err)
		} else {
			log.Info(LogMsgMetricsWritten, LogFieldPath, path)
		}
	}

	log.Info(LogMsgStopped,
		LogFieldBalance, app.Ledger.Current(),
		LogFieldItems, app.Inventory.Len())
}
