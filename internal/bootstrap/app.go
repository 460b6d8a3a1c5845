package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/osse101/CaseBox_Go/internal/catalog"
	"github.com/osse101/CaseBox_Go/internal/concurrency"
	"github.com/osse101/CaseBox_Go/internal/config"
	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/economy"
	"github.com/osse101/CaseBox_Go/internal/inventory"
	"github.com/osse101/CaseBox_Go/internal/ledger"
	"github.com/osse101/CaseBox_Go/internal/logger"
	"github.com/osse101/CaseBox_Go/internal/lootbox"
	"github.com/osse101/CaseBox_Go/internal/persistence"
	"github.com/osse101/CaseBox_Go/internal/validation"
)

// App holds every component of a running simulator. The presentation layer
// talks to Economy; the rest is exposed for hosts that want summaries.
type App struct {
	Config        *config.Config
	Ledger        *ledger.Ledger
	Inventory     *inventory.Store
	Catalog       *catalog.Catalog
	CatalogErrors []error
	Selector      *lootbox.Selector
	Economy       economy.Service
}

// Initialize loads state and the catalog and wires the economy service.
// Broken catalog entries are logged and kept in CatalogErrors; they never
// stop startup.
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.FromContext(ctx)

	if err := os.MkdirAll(cfg.DataDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
	}

	locks := concurrency.NewLockManager()
	retry := persistence.WithRetryDelay(cfg.PersistRetryDelay)

	records, err := validation.NewOwnedItemValidator()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCompileSchema, err)
	}

	balanceStore := persistence.NewChecksumStore[decimal.Decimal](
		cfg.BalancePath(), persistence.NewBalanceCodec(cfg.StartingBalance), locks, retry)
	inventoryStore := persistence.NewChecksumStore[[]domain.OwnedItem](
		cfg.InventoryPath(), persistence.JSONLinesCodec[domain.OwnedItem]{Schema: records}, locks, retry)

	wallet := ledger.New(ctx, balanceStore)
	inv := inventory.New(ctx, inventoryStore)

	cat, catErrs := catalog.NewLoader().LoadAll(ctx, cfg.CasesDir)
	for _, err := range catErrs {
		log.Warn(LogMsgCatalogEntryFailed, LogFieldError, err)
	}
	if cat.Len() == 0 {
		log.Warn(LogMsgCatalogEmpty, LogFieldCasesDir, cfg.CasesDir)
	}

	selector := lootbox.NewSelector()

	log.Info(LogMsgStateLoaded,
		LogFieldDataDir, cfg.DataDir,
		LogFieldBalance, wallet.Current(),
		LogFieldItems, inv.Len(),
		LogFieldValue, inv.TotalValue(),
		LogFieldCases, cat.Len())

	return &App{
		Config:        cfg,
		Ledger:        wallet,
		Inventory:     inv,
		Catalog:       cat,
		CatalogErrors: catErrs,
		Selector:      selector,
		Economy:       economy.NewService(cat, wallet, inv, selector),
	}, nil
}
