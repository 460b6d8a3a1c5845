package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnedItem is an inventory record. It is a value copy of a catalog Item taken
// when the item was drawn; later catalog changes never touch it.
type OwnedItem struct {
	ID         string    `json:"id,omitempty"`
	ItemName   string    `json:"item" validate:"required"`
	SkinName   string    `json:"skin" validate:"required"`
	Price      float64   `json:"price" validate:"gte=0"`
	Rarity     Rarity    `json:"rarity"`
	SpriteRef  string    `json:"sprite,omitempty"`
	CaseName   string    `json:"case,omitempty"`
	ObtainedAt time.Time `json:"obtained_at"`
}

// Item returns the catalog-shaped view of the record.
func (o OwnedItem) Item() Item {
	return Item{
		ItemName:  o.ItemName,
		SkinName:  o.SkinName,
		Price:     o.Price,
		Rarity:    o.Rarity,
		SpriteRef: o.SpriteRef,
	}
}

// SumPrices totals the price of every record. The sum is taken in decimal so
// many small prices do not drift.
func SumPrices(items []OwnedItem) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(decimal.NewFromFloat(it.Price))
	}
	return total.InexactFloat64()
}
