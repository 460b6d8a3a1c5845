package economy

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseBox_Go/internal/catalog"
	"github.com/osse101/CaseBox_Go/internal/concurrency"
	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/inventory"
	"github.com/osse101/CaseBox_Go/internal/ledger"
	"github.com/osse101/CaseBox_Go/internal/lootbox"
	"github.com/osse101/CaseBox_Go/internal/persistence"
	"github.com/osse101/CaseBox_Go/internal/testing/leaktest"
	"github.com/osse101/CaseBox_Go/internal/utils"
)

type stack struct {
	svc       Service
	ledger    *ledger.Ledger
	inventory *inventory.Store
	balance   *persistence.ChecksumStore[decimal.Decimal]
	items     *persistence.ChecksumStore[[]domain.OwnedItem]
}

// newStack wires real stores under dir, the way the host does.
func newStack(t *testing.T, dir string, cases []domain.Case, rnd func() float64) stack {
	t.Helper()
	ctx := context.Background()
	locks := concurrency.NewLockManager()

	balanceStore := persistence.NewChecksumStore[decimal.Decimal](filepath.Join(dir, "money.txt"),
		persistence.NewBalanceCodec(domain.DefaultStartingBalance), locks)
	itemStore := persistence.NewChecksumStore[[]domain.OwnedItem](filepath.Join(dir, "inventory.txt"),
		persistence.JSONLinesCodec[domain.OwnedItem]{}, locks)

	l := ledger.New(ctx, balanceStore)
	inv := inventory.New(ctx, itemStore)
	svc := NewService(catalog.New(cases), l, inv, lootbox.NewSelectorWithRand(rnd))

	return stack{svc: svc, ledger: l, inventory: inv, balance: balanceStore, items: itemStore}
}

func verifies(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	_, err = persistence.Unframe(string(data))
	assert.NoError(t, err, "%s should verify", filepath.Base(path))
}

func TestEndToEnd_OpenThenReload(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()
	c := createTestCase("Alpha Case", 50)

	s := newStack(t, dir, []domain.Case{c}, utils.SequenceFloat(0.99))
	assert.Equal(t, 1000.0, s.svc.Balance())

	res, err := s.svc.OpenCase(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, 950.0, res.Balance)
	assert.Equal(t, "Pistol", res.Item.ItemName)
	assert.Equal(t, c.Name, res.Item.CaseName)
	assert.NotEmpty(t, res.Item.ID)

	verifies(t, s.balance.Path())
	verifies(t, s.items.Path())

	reloaded := newStack(t, dir, []domain.Case{c}, utils.SequenceFloat(0))
	assert.Equal(t, 950.0, reloaded.svc.Balance())
	snap := reloaded.svc.InventorySnapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, res.Item, snap[0])
}

func TestEndToEnd_OpenAndSellAll(t *testing.T) {
	ctx := context.Background()
	c := createTestCase("Alpha Case", 10)
	// 0.0 lands on the legendary knife, 0.99 on the pistol.
	s := newStack(t, t.TempDir(), []domain.Case{c}, utils.SequenceFloat(0, 0.99, 0.99))

	for i := 0; i < 3; i++ {
		_, err := s.svc.OpenCase(ctx, c)
		require.NoError(t, err)
	}
	assert.Equal(t, 970.0, s.svc.Balance())

	res, err := s.svc.SellItems(ctx, []int{2, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, res.ItemsSold)
	assert.Equal(t, []string{"Pistol", "Knife"}, []string{res.Items[0].ItemName, res.Items[1].ItemName})
	assert.Equal(t, 501.0, res.TotalCredited)
	assert.Equal(t, 1471.0, s.svc.Balance())

	left := s.svc.InventorySnapshot()
	require.Len(t, left, 1)
	assert.Equal(t, "Pistol", left[0].ItemName)

	_, err = s.svc.SellItem(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEndToEnd_FailedSaleKeepsInventoryOrder(t *testing.T) {
	ctx := context.Background()
	s := newStack(t, t.TempDir(), nil, utils.SequenceFloat(0))
	a, b, c := createOwned("a", 1), createOwned("b", 2), createOwned("c", 3)
	for _, it := range []domain.OwnedItem{a, b, c} {
		require.NoError(t, s.inventory.Add(ctx, it))
	}

	wallet := &MockWallet{}
	creditErr := errors.New("balance write failed")
	wallet.On("Credit", mock.Anything, mock.Anything).Return(creditErr)
	svc := NewService(catalog.New(nil), wallet, s.inventory, lootbox.NewSelectorWithRand(utils.SequenceFloat(0)))

	_, err := svc.SellItems(ctx, []int{0, 2})
	require.ErrorIs(t, err, creditErr)
	assert.Equal(t, []domain.OwnedItem{a, b, c}, s.inventory.Snapshot())

	_, err = svc.SellItem(ctx, 1)
	require.ErrorIs(t, err, creditErr)
	assert.Equal(t, []domain.OwnedItem{a, b, c}, s.inventory.Snapshot())

	persisted, _ := s.items.Load(ctx)
	assert.Equal(t, []domain.OwnedItem{a, b, c}, persisted)
}

func TestEndToEnd_InsufficientFundsLeavesStateAlone(t *testing.T) {
	ctx := context.Background()
	c := createTestCase("Pricey", 1000.01)
	s := newStack(t, t.TempDir(), []domain.Case{c}, utils.SequenceFloat(0))

	_, err := s.svc.OpenCase(ctx, c)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, 1000.0, s.svc.Balance())
	assert.Empty(t, s.svc.InventorySnapshot())
}

func TestConcurrentOpens_KeepBalanceAndInventoryInStep(t *testing.T) {
	ctx := context.Background()
	c := createTestCase("Cheap", 7)
	s := newStack(t, t.TempDir(), []domain.Case{c}, utils.SeededFloat(42))
	leaks := leaktest.NewGoroutineChecker(t)

	const workers = 20
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.svc.OpenCase(ctx, c)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1000.0-7*workers, s.svc.Balance())
	assert.Len(t, s.svc.InventorySnapshot(), workers)
	leaks.Check(0)
}
