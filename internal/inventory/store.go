package inventory

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/logger"
	"github.com/osse101/CaseBox_Go/internal/persistence"
)

// Persister is the persistence the inventory needs.
type Persister interface {
	Save(ctx context.Context, items []domain.OwnedItem) error
	Load(ctx context.Context) ([]domain.OwnedItem, persistence.LoadResult)
}

// Store is the ordered collection of owned items. Indexes are positions in
// insertion order; removing an item shifts later items down by one.
type Store struct {
	mu       sync.RWMutex
	db       Persister
	validate *validator.Validate
	items    []domain.OwnedItem
}

// New loads the inventory from db.
func New(ctx context.Context, db Persister) *Store {
	items, res := db.Load(ctx)
	if items == nil {
		items = make([]domain.OwnedItem, 0)
	}

	logger.FromContext(ctx).Info(LogMsgLoaded,
		LogFieldSize, len(items),
		LogFieldSource, res.Source.String(),
		LogFieldCorrupt, res.Corrupt)

	return &Store{db: db, validate: validator.New(), items: items}
}

// Add appends item and persists. A record the loader would refuse returns
// domain.ErrInvalidInput and writes nothing.
func (s *Store) Add(ctx context.Context, item domain.OwnedItem) error {
	if err := s.validateRecord(item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := append(s.cloneLocked(), item)
	if err := s.commitLocked(ctx, next); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgItemAdded, LogFieldItem, item.Item().DisplayName(), LogFieldSize, len(s.items))
	return nil
}

// RemoveAt removes and returns the item at index. An out of range index
// returns domain.ErrNotFound and writes nothing.
func (s *Store) RemoveAt(ctx context.Context, index int) (domain.OwnedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.items) {
		return domain.OwnedItem{}, fmt.Errorf("%w: index %d (size %d)", domain.ErrNotFound, index, len(s.items))
	}

	removed := s.items[index]
	next := make([]domain.OwnedItem, 0, len(s.items)-1)
	next = append(next, s.items[:index]...)
	next = append(next, s.items[index+1:]...)

	if err := s.commitLocked(ctx, next); err != nil {
		return domain.OwnedItem{}, err
	}
	logger.FromContext(ctx).Info(LogMsgItemsRemoved, LogFieldCount, 1, LogFieldSize, len(s.items))
	return removed, nil
}

// RemoveMany removes every valid index in one persisted generation. Indexes
// are applied from highest to lowest so earlier removals cannot shift later
// ones; removed items come back in that same descending order, together with
// the index each one was taken from. Duplicates and out of range indexes are
// ignored. No valid index means no write.
func (s *Store) RemoveMany(ctx context.Context, indices []int) ([]domain.OwnedItem, []int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log := logger.FromContext(ctx)

	seen := make(map[int]struct{}, len(indices))
	valid := make([]int, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(s.items) {
			log.Debug(LogMsgIndexIgnored, LogFieldIndex, idx, LogFieldSize, len(s.items))
			continue
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		valid = append(valid, idx)
	}
	if len(valid) == 0 {
		return []domain.OwnedItem{}, []int{}, nil
	}
	sort.Sort(sort.Reverse(sort.IntSlice(valid)))

	next := s.cloneLocked()
	removed := make([]domain.OwnedItem, 0, len(valid))
	for _, idx := range valid {
		removed = append(removed, next[idx])
		next = append(next[:idx], next[idx+1:]...)
	}

	if err := s.commitLocked(ctx, next); err != nil {
		return nil, nil, err
	}
	log.Info(LogMsgItemsRemoved, LogFieldCount, len(removed), LogFieldSize, len(s.items))
	return removed, valid, nil
}

// Restore puts items back at the indexes they were removed from, in one
// generation. at[i] is the original index of items[i]. Used to undo a sale
// whose credit could not be persisted; undoing the last removal leaves the
// inventory exactly as it was.
func (s *Store) Restore(ctx context.Context, at []int, items []domain.OwnedItem) error {
	if len(at) != len(items) {
		return fmt.Errorf("%w: %d indexes for %d items", domain.ErrInvalidInput, len(at), len(items))
	}
	if len(items) == 0 {
		return nil
	}
	for _, it := range items {
		if err := s.validateRecord(it); err != nil {
			return err
		}
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return at[order[a]] < at[order[b]] })

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cloneLocked()
	for _, i := range order {
		idx := min(max(at[i], 0), len(next))
		next = slices.Insert(next, idx, items[i])
	}
	if err := s.commitLocked(ctx, next); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgItemsRestored, LogFieldCount, len(items), LogFieldSize, len(s.items))
	return nil
}

// Snapshot returns a copy of the inventory.
func (s *Store) Snapshot() []domain.OwnedItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cloneLocked()
}

// Get returns the item at index without removing it.
func (s *Store) Get(index int) (domain.OwnedItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if index < 0 || index >= len(s.items) {
		return domain.OwnedItem{}, false
	}
	return s.items[index], true
}

// Len returns the number of owned items.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// TotalValue sums the price of every owned item.
func (s *Store) TotalValue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SumPrices(s.items)
}

func (s *Store) validateRecord(item domain.OwnedItem) error {
	if err := s.validate.Struct(item); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, ErrMsgInvalidRecord, err)
	}
	return nil
}

func (s *Store) cloneLocked() []domain.OwnedItem {
	out := make([]domain.OwnedItem, len(s.items), len(s.items)+1)
	copy(out, s.items)
	return out
}

// commitLocked persists next and only then swaps it in.
func (s *Store) commitLocked(ctx context.Context, next []domain.OwnedItem) error {
	if err := s.db.Save(ctx, next); err != nil {
		logger.FromContext(ctx).Error(LogMsgPersistFailed, LogFieldSize, len(s.items), LogFieldError, err)
		return err
	}
	s.items = next
	return nil
}
