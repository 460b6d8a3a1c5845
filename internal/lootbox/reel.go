package lootbox

import (
	"fmt"

	"github.com/osse101/CaseBox_Go/internal/domain"
)

// Reel returns n independent weighted draws for an opening animation.
// It has no side effects; the real result is drawn separately.
func (s *Selector) Reel(items []domain.Item, n int) ([]domain.Item, error) {
	if n < 0 || n > MaxReelLength {
		return nil, fmt.Errorf("%w: reel length %d", domain.ErrInvalidInput, n)
	}
	t, err := newTable(items)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Item, n)
	for i := range out {
		out[i] = t.pick(s.rnd())
	}
	return out, nil
}
