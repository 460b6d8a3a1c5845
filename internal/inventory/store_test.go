package inventory

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/persistence"
	"github.com/osse101/CaseBox_Go/internal/validation"
)

// MockPersister implements Persister for testing
type MockPersister struct {
	mock.Mock
}

func (m *MockPersister) Save(ctx context.Context, items []domain.OwnedItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockPersister) Load(ctx context.Context) ([]domain.OwnedItem, persistence.LoadResult) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Get(1).(persistence.LoadResult)
	}
	return args.Get(0).([]domain.OwnedItem), args.Get(1).(persistence.LoadResult)
}

func owned(name string, price float64) domain.OwnedItem {
	return domain.OwnedItem{ID: name, ItemName: name, SkinName: "Stock", Price: price, Rarity: domain.RarityCommon}
}

func newFileStore(t *testing.T) (*Store, *persistence.ChecksumStore[[]domain.OwnedItem]) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.txt")
	db := persistence.NewChecksumStore[[]domain.OwnedItem](path, persistence.JSONLinesCodec[domain.OwnedItem]{}, nil)
	return New(context.Background(), db), db
}

func seed(t *testing.T, s *Store, items ...domain.OwnedItem) {
	t.Helper()
	for _, it := range items {
		require.NoError(t, s.Add(context.Background(), it))
	}
}

func TestAdd_PersistsInOrder(t *testing.T) {
	s, db := newFileStore(t)
	a, b := owned("a", 1), owned("b", 2)
	seed(t, s, a, b)

	assert.Equal(t, []domain.OwnedItem{a, b}, s.Snapshot())

	reloaded := New(context.Background(), db)
	assert.Equal(t, []domain.OwnedItem{a, b}, reloaded.Snapshot())
}

func TestRemoveAt(t *testing.T) {
	ctx := context.Background()
	a, b, c := owned("a", 1), owned("b", 2), owned("c", 3)

	t.Run("valid index shifts later items", func(t *testing.T) {
		s, db := newFileStore(t)
		seed(t, s, a, b, c)

		got, err := s.RemoveAt(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, b, got)
		assert.Equal(t, []domain.OwnedItem{a, c}, s.Snapshot())

		persisted, _ := db.Load(ctx)
		assert.Equal(t, []domain.OwnedItem{a, c}, persisted)
	})

	for _, idx := range []int{-1, 3, 100} {
		t.Run("out of range", func(t *testing.T) {
			s, _ := newFileStore(t)
			seed(t, s, a, b, c)

			_, err := s.RemoveAt(ctx, idx)
			assert.ErrorIs(t, err, domain.ErrNotFound)
			assert.Equal(t, 3, s.Len())
		})
	}
}

func TestRemoveMany_OrderIndependent(t *testing.T) {
	ctx := context.Background()
	a, b, c := owned("a", 1), owned("b", 2), owned("c", 3)

	for _, indices := range [][]int{{0, 2}, {2, 0}} {
		s, db := newFileStore(t)
		seed(t, s, a, b, c)

		removed, at, err := s.RemoveMany(ctx, indices)
		require.NoError(t, err)
		assert.Equal(t, []domain.OwnedItem{c, a}, removed, "removed in descending index order")
		assert.Equal(t, []int{2, 0}, at)
		assert.Equal(t, []domain.OwnedItem{b}, s.Snapshot())

		persisted, _ := db.Load(ctx)
		assert.Equal(t, []domain.OwnedItem{b}, persisted)
	}
}

func TestRemoveMany_IgnoresInvalidAndDuplicates(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)
	a, b, c := owned("a", 1), owned("b", 2), owned("c", 3)
	seed(t, s, a, b, c)

	removed, at, err := s.RemoveMany(ctx, []int{1, 1, -3, 7})
	require.NoError(t, err)
	assert.Equal(t, []domain.OwnedItem{b}, removed)
	assert.Equal(t, []int{1}, at)
	assert.Equal(t, []domain.OwnedItem{a, c}, s.Snapshot())
}

func TestRemoveMany_SingleWrite(t *testing.T) {
	ctx := context.Background()
	db := &MockPersister{}
	start := []domain.OwnedItem{owned("a", 1), owned("b", 2), owned("c", 3), owned("d", 4)}
	db.On("Load", mock.Anything).Return(start, persistence.LoadResult{Source: persistence.SourcePrimary})
	db.On("Save", mock.Anything, []domain.OwnedItem{owned("b", 2)}).Return(nil).Once()

	s := New(ctx, db)
	removed, _, err := s.RemoveMany(ctx, []int{3, 0, 2})
	require.NoError(t, err)
	assert.Len(t, removed, 3)

	db.AssertNumberOfCalls(t, "Save", 1)
	db.AssertExpectations(t)
}

func TestRemoveMany_NothingValidNoWrite(t *testing.T) {
	ctx := context.Background()
	db := &MockPersister{}
	db.On("Load", mock.Anything).Return(nil, persistence.LoadResult{Source: persistence.SourceDefault})

	s := New(ctx, db)
	removed, _, err := s.RemoveMany(ctx, []int{0, 5})
	require.NoError(t, err)
	assert.Empty(t, removed)
	db.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPersistFailure_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := &MockPersister{}
	start := []domain.OwnedItem{owned("a", 1), owned("b", 2)}
	db.On("Load", mock.Anything).Return(start, persistence.LoadResult{Source: persistence.SourcePrimary})
	db.On("Save", mock.Anything, mock.Anything).Return(errors.New("disk full"))

	s := New(ctx, db)

	assert.Error(t, s.Add(ctx, owned("c", 3)))
	_, err := s.RemoveAt(ctx, 0)
	assert.Error(t, err)
	_, _, err = s.RemoveMany(ctx, []int{0, 1})
	assert.Error(t, err)

	assert.Equal(t, start, s.Snapshot())
}

func TestRestore_PutsItemsBackInPlace(t *testing.T) {
	ctx := context.Background()
	a, b, c, d, e := owned("a", 1), owned("b", 2), owned("c", 3), owned("d", 4), owned("e", 5)
	all := []domain.OwnedItem{a, b, c, d, e}

	for _, indices := range [][]int{{0, 2}, {4, 1, 3}, {0, 1, 2, 3, 4}, {2}} {
		s, db := newFileStore(t)
		seed(t, s, all...)

		removed, at, err := s.RemoveMany(ctx, indices)
		require.NoError(t, err)
		require.NoError(t, s.Restore(ctx, at, removed))

		assert.Equal(t, all, s.Snapshot(), "indices %v", indices)
		persisted, _ := db.Load(ctx)
		assert.Equal(t, all, persisted)
	}
}

func TestRestore_EdgeCases(t *testing.T) {
	ctx := context.Background()
	s, _ := newFileStore(t)
	a, b := owned("a", 1), owned("b", 2)
	seed(t, s, a)

	require.NoError(t, s.Restore(ctx, nil, nil))
	assert.ErrorIs(t, s.Restore(ctx, []int{0, 1}, []domain.OwnedItem{b}), domain.ErrInvalidInput)

	require.NoError(t, s.Restore(ctx, []int{9}, []domain.OwnedItem{b}), "index past the end appends")
	assert.Equal(t, []domain.OwnedItem{a, b}, s.Snapshot())
}

func TestAdd_RejectsRecordsThatWouldNotReload(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name string
		item domain.OwnedItem
	}{
		{"empty item name", domain.OwnedItem{SkinName: "Fade", Price: 1}},
		{"empty skin name", domain.OwnedItem{ItemName: "Knife", Price: 1}},
		{"negative price", domain.OwnedItem{ItemName: "Knife", SkinName: "Fade", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := &MockPersister{}
			db.On("Load", mock.Anything).Return(nil, persistence.LoadResult{Source: persistence.SourceDefault})
			s := New(ctx, db)

			assert.ErrorIs(t, s.Add(ctx, tt.item), domain.ErrInvalidInput)
			assert.ErrorIs(t, s.Restore(ctx, []int{0}, []domain.OwnedItem{tt.item}), domain.ErrInvalidInput)
			assert.Zero(t, s.Len())
			db.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestAdd_RecordSurvivesSchemaReload(t *testing.T) {
	ctx := context.Background()
	records, err := validation.NewOwnedItemValidator()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "inventory.txt")
	db := persistence.NewChecksumStore[[]domain.OwnedItem](path, persistence.JSONLinesCodec[domain.OwnedItem]{Schema: records}, nil)
	s := New(ctx, db)

	first, second := owned("a", 1), owned("b", 0)
	second.Rarity = ""
	seed(t, s, first, second)

	reloaded, res := db.Load(ctx)
	assert.Equal(t, persistence.SourcePrimary, res.Source)
	assert.Equal(t, []domain.OwnedItem{first, second}, reloaded)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newFileStore(t)
	seed(t, s, owned("a", 1))

	snap := s.Snapshot()
	snap[0].Price = 999

	got, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, 1.0, got.Price)

	_, ok = s.Get(5)
	assert.False(t, ok)
}

func TestTotalValue(t *testing.T) {
	s, _ := newFileStore(t)
	seed(t, s, owned("a", 1.5), owned("b", 2.5))
	assert.Equal(t, 4.0, s.TotalValue())
}
