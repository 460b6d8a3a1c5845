package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/osse101/CaseBox_Go/internal/bootstrap"
	"github.com/osse101/CaseBox_Go/internal/config"
	"github.com/osse101/CaseBox_Go/internal/logger"
	"github.com/osse101/CaseBox_Go/internal/lootbox"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	warnings, err := cfg.ValidateWithWarnings()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg.LogDir, loggerConfig(cfg))
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn("Configuration warning", "warning", w)
	}

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())

	app, err := bootstrap.Initialize(ctx, cfg)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to initialize", "error", err)
		return
	}

	logCatalog(ctx, app)
	bootstrap.GracefulShutdown(ctx, app)
}

// logCatalog prints every case with its drop chances, which is all a
// headless run can show.
func logCatalog(ctx context.Context, app *bootstrap.App) {
	log := logger.FromContext(ctx)

	for _, c := range app.Economy.ListCases() {
		log.Info("Case available", "case", c.Name, "price", c.Price, "items", len(c.Items))

		odds, err := lootbox.CaseOdds(c.Items)
		if err != nil {
			log.Warn("Cannot compute odds", "case", c.Name, "error", err)
			continue
		}
		for _, o := range odds {
			log.Debug("Drop chance",
				"case", c.Name,
				"item", o.Item.DisplayName(),
				"rarity", o.Item.Rarity,
				"chance", lootbox.FormatChance(o.Chance))
		}

		if reel, err := app.Economy.PreviewReel(c, app.Config.ReelLength); err == nil && len(reel) > 0 {
			log.Debug("Reel preview", "case", c.Name, "lands_on", reel[len(reel)-1].DisplayName())
		}
	}

	log.Info("Ready",
		"balance", app.Economy.Balance(),
		"inventory", len(app.Economy.InventorySnapshot()))
}
