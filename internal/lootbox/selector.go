package lootbox

import (
	"fmt"
	"sort"

	"github.com/osse101/CaseBox_Go/internal/domain"
	"github.com/osse101/CaseBox_Go/internal/utils"
)

// Weight returns the draw weight for a rarity.
func Weight(r domain.Rarity) int {
	if w, ok := rarityWeights[domain.ParseRarity(string(r))]; ok {
		return w
	}
	return WeightUnknown
}

// Selector draws items with rarity-weighted probability.
type Selector struct {
	rnd func() float64 // For rolling RNG
}

// NewSelector creates a selector backed by utils.RandomFloat.
func NewSelector() *Selector {
	return &Selector{rnd: utils.RandomFloat}
}

// NewSelectorWithRand creates a selector with a custom [0,1) source.
func NewSelectorWithRand(rnd func() float64) *Selector {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Selector{rnd: rnd}
}

// Draw picks one item. P(item i) = Weight(i) / sum of all weights.
func (s *Selector) Draw(items []domain.Item) (domain.Item, error) {
	t, err := newTable(items)
	if err != nil {
		return domain.Item{}, err
	}
	return t.pick(s.rnd()), nil
}

// table holds cumulative weights so repeated draws from one case are
// a binary search each.
type table struct {
	items      []domain.Item
	cumulative []int
	total      int
}

func newTable(items []domain.Item) (*table, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: nothing to draw from", domain.ErrEmptyCase)
	}

	t := &table{
		items:      items,
		cumulative: make([]int, len(items)),
	}
	for i, it := range items {
		t.total += Weight(it.Rarity)
		t.cumulative[i] = t.total
	}
	return t, nil
}

// pick maps a roll in [0,1) onto an item.
func (t *table) pick(roll float64) domain.Item {
	target := roll * float64(t.total)
	idx := sort.Search(len(t.cumulative), func(i int) bool {
		return float64(t.cumulative[i]) > target
	})
	if idx >= len(t.items) {
		idx = len(t.items) - 1
	}
	return t.items[idx]
}
