package ledger

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/logger"
	"github.com/osse101/CaseBox_Go/internal/persistence"
)

// Store is the persistence the ledger needs.
type Store interface {
	Save(ctx context.Context, balance decimal.Decimal) error
	Load(ctx context.Context) (decimal.Decimal, persistence.LoadResult)
}

// Ledger owns the account balance. Every mutation is persisted before it
// returns; a failed save leaves the balance as it was.
type Ledger struct {
	mu      sync.RWMutex
	store   Store
	balance decimal.Decimal
}

// New loads the balance from store. On first run the starting balance is
// written straight away so the balance file exists.
func New(ctx context.Context, store Store) *Ledger {
	log := logger.FromContext(ctx)

	balance, res := store.Load(ctx)
	l := &Ledger{store: store, balance: balance}

	if res.Source == persistence.SourceDefault {
		if err := store.Save(ctx, balance); err != nil {
			log.Error(LogMsgSeedFailed, LogFieldError, err)
		} else if !res.Corrupt {
			log.Info(LogMsgSeeded, LogFieldBalance, balance.String())
		}
	}

	log.Info(LogMsgInitialized,
		LogFieldBalance, balance.String(),
		LogFieldSource, res.Source.String(),
		LogFieldCorrupt, res.Corrupt)
	return l
}

// Current returns the balance.
func (l *Ledger) Current() float64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balance.InexactFloat64()
}

// Credit adds amount to the balance. Zero is a no-op.
func (l *Ledger) Credit(ctx context.Context, amount float64) error {
	d, err := validateAmount(amount)
	if err != nil {
		return err
	}
	if d.IsZero() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.commitLocked(ctx, l.balance.Add(d)); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgCredited, LogFieldAmount, d.String(), LogFieldBalance, l.balance.String())
	return nil
}

// Debit subtracts amount if the balance covers it, otherwise it returns
// domain.ErrInsufficientFunds and leaves the balance alone.
func (l *Ledger) Debit(ctx context.Context, amount float64) error {
	d, err := validateAmount(amount)
	if err != nil {
		return err
	}
	if d.IsZero() {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	log := logger.FromContext(ctx)
	if l.balance.LessThan(d) {
		log.Info(LogMsgInsufficientFund, LogFieldAmount, d.String(), LogFieldBalance, l.balance.String())
		return fmt.Errorf("%w: need %s, have %s", domain.ErrInsufficientFunds, d.StringFixed(2), l.balance.StringFixed(2))
	}

	if err := l.commitLocked(ctx, l.balance.Sub(d)); err != nil {
		return err
	}
	log.Info(LogMsgDebited, LogFieldAmount, d.String(), LogFieldBalance, l.balance.String())
	return nil
}

// CanAfford reports whether a debit of amount would succeed.
func (l *Ledger) CanAfford(amount float64) bool {
	d, err := validateAmount(amount)
	if err != nil {
		return false
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.balance.GreaterThanOrEqual(d)
}

func (l *Ledger) commitLocked(ctx context.Context, next decimal.Decimal) error {
	if err := l.store.Save(ctx, next); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, LogFieldBalance, l.balance.String(), LogFieldError, err)
		return err
	}
	l.balance = next
	return nil
}

func validateAmount(amount float64) (decimal.Decimal, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero, fmt.Errorf("%w: amount %v", domain.ErrInvalidInput, amount)
	}
	if amount < 0 {
		return decimal.Zero, fmt.Errorf("%w: negative amount %v", domain.ErrInvalidInput, amount)
	}
	return decimal.NewFromFloat(amount), nil
}
