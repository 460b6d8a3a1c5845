package persistence

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/osse101/CaseBox_Go/internal/domain"
)

// Codec converts a payload to and from its canonical text form.
type Codec[T any] interface {
	Encode(payload T) (string, error)
	Decode(text string) (T, error)
	Default() T
}

// BalanceCodec stores a single non-negative decimal as plain text.
type BalanceCodec struct {
	Initial decimal.Decimal
}

// NewBalanceCodec returns a codec whose default is initial.
func NewBalanceCodec(initial float64) BalanceCodec {
	return BalanceCodec{Initial: decimal.NewFromFloat(initial)}
}

func (c BalanceCodec) Encode(d decimal.Decimal) (string, error) {
	if d.IsNegative() {
		return "", fmt.Errorf("%w: negative balance %s", domain.ErrInvalidInput, d.String())
	}
	if d.IsInteger() {
		return d.StringFixed(1), nil
	}
	return d.String(), nil
}

func (c BalanceCodec) Decode(text string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative balance %s", domain.ErrIntegrity, d.String())
	}
	return d, nil
}

func (c BalanceCodec) Default() decimal.Decimal {
	return c.Initial
}

// RecordValidator checks one encoded record before it is decoded.
type RecordValidator interface {
	ValidateBytes(data []byte) error
}

// JSONLinesCodec stores a slice as one JSON object per line. When Schema is
// set, every line must pass it or the whole payload is rejected.
type JSONLinesCodec[E any] struct {
	Schema RecordValidator
}

func (JSONLinesCodec[E]) Encode(items []E) (string, error) {
	lines := make([]string, 0, len(items))
	for i, it := range items {
		b, err := json.Marshal(it)
		if err != nil {
			return "", fmt.Errorf("record %d: %w", i, err)
		}
		lines = append(lines, string(b))
	}
	return strings.Join(lines, "\n"), nil
}

func (c JSONLinesCodec[E]) Decode(text string) ([]E, error) {
	items := make([]E, 0)
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if c.Schema != nil {
			if err := c.Schema.ValidateBytes([]byte(line)); err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
		}
		var it E
		if err := json.Unmarshal([]byte(line), &it); err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		items = append(items, it)
	}
	return items, nil
}

func (JSONLinesCodec[E]) Default() []E {
	return make([]E, 0)
}
