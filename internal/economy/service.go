package economy

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CaseBox_Go/internal/domain"
)

// Wallet is the balance the service spends from and credits to.
type Wallet interface {
	Current() float64
	Credit(ctx context.Context, amount float64) error
	Debit(ctx context.Context, amount float64) error
}

// Inventory is the owned-item collection the service fills and sells from.
type Inventory interface {
	Add(ctx context.Context, item domain.OwnedItem) error
	RemoveAt(ctx context.Context, index int) (domain.OwnedItem, error)
	RemoveMany(ctx context.Context, indices []int) ([]domain.OwnedItem, []int, error)
	Restore(ctx context.Context, at []int, items []domain.OwnedItem) error
	Snapshot() []domain.OwnedItem
}

// Drawer picks items out of a case.
type Drawer interface {
	Draw(items []domain.Item) (domain.Item, error)
	Reel(items []domain.Item, n int) ([]domain.Item, error)
}

// CaseLister provides the cases that can be opened.
type CaseLister interface {
	Cases() []domain.Case
}

// OpenResult is the outcome of a successful case opening.
type OpenResult struct {
	Case    string           `json:"case"`
	Price   float64          `json:"price"`
	Item    domain.OwnedItem `json:"item"`
	Balance float64          `json:"balance"`
}

// SellResult is the outcome of a sale. Items are listed in the order they
// were removed.
type SellResult struct {
	Items         []domain.OwnedItem `json:"items"`
	ItemsSold     int                `json:"items_sold"`
	TotalCredited float64            `json:"total_credited"`
	Balance       float64            `json:"balance"`
}

// Service is the interface a presentation layer drives.
type Service interface {
	ListCases() []domain.Case
	Balance() float64
	OpenCase(ctx context.Context, c domain.Case) (*OpenResult, error)
	SellItem(ctx context.Context, index int) (*SellResult, error)
	SellItems(ctx context.Context, indices []int) (*SellResult, error)
	InventorySnapshot() []domain.OwnedItem
	PreviewReel(c domain.Case, n int) ([]domain.Item, error)
}

type service struct {
	// mu serializes open and sell so the wallet and inventory move together.
	mu        sync.Mutex
	cases     CaseLister
	wallet    Wallet
	inventory Inventory
	drawer    Drawer
	now       func() time.Time
	newID     func() string
}

// NewService creates a new economy service
func NewService(cases CaseLister, wallet Wallet, inventory Inventory, drawer Drawer) Service {
	return &service{
		cases:     cases,
		wallet:    wallet,
		inventory: inventory,
		drawer:    drawer,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *service) ListCases() []domain.Case {
	return s.cases.Cases()
}

func (s *service) Balance() float64 {
	return s.wallet.Current()
}

func (s *service) InventorySnapshot() []domain.OwnedItem {
	return s.inventory.Snapshot()
}

// PreviewReel draws n cosmetic items for an opening animation. Nothing is
// charged or stored.
func (s *service) PreviewReel(c domain.Case, n int) ([]domain.Item, error) {
	return s.drawer.Reel(c.Items, n)
}
