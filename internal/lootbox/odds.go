package lootbox

import (
	"fmt"

	"github.com/osse101/CaseBox_Go/internal/domain"
)

// Odds is the probability of drawing one item from a case.
type Odds struct {
	Item   domain.Item
	Weight int
	Chance float64
}

// CaseOdds lists every item of a case with its drop chance, in case order.
func CaseOdds(items []domain.Item) ([]Odds, error) {
	t, err := newTable(items)
	if err != nil {
		return nil, err
	}

	out := make([]Odds, len(items))
	for i, it := range items {
		w := Weight(it.Rarity)
		out[i] = Odds{
			Item:   it,
			Weight: w,
			Chance: float64(w) / float64(t.total),
		}
	}
	return out, nil
}

// FormatChance renders a probability as a percentage with two decimals.
func FormatChance(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}
