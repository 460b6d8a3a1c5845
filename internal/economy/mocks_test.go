package economy

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CaseBox_Go/internal/domain"
)

// MockWallet implements Wallet for testing
type MockWallet struct {
	mock.Mock
}

func (m *MockWallet) Current() float64 {
	args := m.Called()
	return args.Get(0).(float64)
}

func (m *MockWallet) Credit(ctx context.Context, amount float64) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

func (m *MockWallet) Debit(ctx context.Context, amount float64) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

// MockInventory implements Inventory for testing
type MockInventory struct {
	mock.Mock
}

func (m *MockInventory) Add(ctx context.Context, item domain.OwnedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockInventory) RemoveAt(ctx context.Context, index int) (domain.OwnedItem, error) {
	args := m.Called(ctx, index)
	return args.Get(0).(domain.OwnedItem), args.Error(1)
}

func (m *MockInventory) RemoveMany(ctx context.Context, indices []int) ([]domain.OwnedItem, []int, error) {
	args := m.Called(ctx, indices)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.OwnedItem), args.Get(1).([]int), args.Error(2)
}

func (m *MockInventory) Restore(ctx context.Context, at []int, items []domain.OwnedItem) error {
	args := m.Called(ctx, at, items)
	return args.Error(0)
}

func (m *MockInventory) Snapshot() []domain.OwnedItem {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.OwnedItem)
}

// MockDrawer implements Drawer for testing
type MockDrawer struct {
	mock.Mock
}

func (m *MockDrawer) Draw(items []domain.Item) (domain.Item, error) {
	args := m.Called(items)
	return args.Get(0).(domain.Item), args.Error(1)
}

func (m *MockDrawer) Reel(items []domain.Item, n int) ([]domain.Item, error) {
	args := m.Called(items, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

// staticCases implements CaseLister for testing
type staticCases []domain.Case

func (c staticCases) Cases() []domain.Case {
	return c
}

// Test fixtures
var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func createTestItem(name string, price float64, rarity domain.Rarity) domain.Item {
	return domain.Item{ItemName: name, SkinName: "Test Skin", Price: price, Rarity: rarity}
}

func createTestCase(name string, price float64) domain.Case {
	return domain.Case{
		Name:     name,
		Price:    price,
		ImageRef: name + ".png",
		Items: []domain.Item{
			createTestItem("Knife", 500, domain.RarityLegendary),
			createTestItem("Pistol", 1, domain.RarityCommon),
		},
	}
}

func createOwned(name string, price float64) domain.OwnedItem {
	return createTestItem(name, price, domain.RarityCommon).Own("id-"+name, "Test Case", fixedNow)
}

type testDeps struct {
	wallet    *MockWallet
	inventory *MockInventory
	drawer    *MockDrawer
}

// newTestService builds a service with mocks and deterministic ids and clock.
func newTestService(cases ...domain.Case) (*service, testDeps) {
	deps := testDeps{
		wallet:    &MockWallet{},
		inventory: &MockInventory{},
		drawer:    &MockDrawer{},
	}
	svc := NewService(staticCases(cases), deps.wallet, deps.inventory, deps.drawer).(*service)
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return "fixed-id" }
	return svc, deps
}

func (d testDeps) assertExpectations(t mock.TestingT) {
	d.wallet.AssertExpectations(t)
	d.inventory.AssertExpectations(t)
	d.drawer.AssertExpectations(t)
}
