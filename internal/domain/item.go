package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
)

// Rarity is the rarity class of a catalog item. Unrecognized values keep
// their raw text so owned records round-trip unchanged.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityMythical  Rarity = "mythical"
	RarityLegendary Rarity = "legendary"
)

var knownRarities = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityMythical,
	RarityLegendary,
}

// ParseRarity maps a catalog rarity string onto a known class, ignoring case.
// Unknown strings are returned trimmed but otherwise untouched.
func ParseRarity(s string) Rarity {
	trimmed := strings.TrimSpace(s)
	folded := cases.Fold().String(trimmed)
	for _, r := range knownRarities {
		if folded == string(r) {
			return r
		}
	}
	return Rarity(trimmed)
}

// Known reports whether r is one of the five rarity classes.
func (r Rarity) Known() bool {
	for _, k := range knownRarities {
		if r == k {
			return true
		}
	}
	return false
}

// Item is an immutable catalog definition of a droppable skin.
type Item struct {
	ItemName  string  `json:"item" validate:"required"`
	SkinName  string  `json:"skin" validate:"required"`
	Price     float64 `json:"price" validate:"gte=0"`
	Rarity    Rarity  `json:"rarity"` // empty or unknown draws at the lowest weight
	SpriteRef string  `json:"sprite,omitempty"` // empty when the case ships no sprite
}

// DisplayName is the "Item | Skin" label used in logs and listings.
func (i Item) DisplayName() string {
	return i.ItemName + " | " + i.SkinName
}

// Own copies the item into a fresh inventory record.
func (i Item) Own(id, caseName string, now time.Time) OwnedItem {
	return OwnedItem{
		ID:         id,
		ItemName:   i.ItemName,
		SkinName:   i.SkinName,
		Price:      i.Price,
		Rarity:     i.Rarity,
		SpriteRef:  i.SpriteRef,
		CaseName:   caseName,
		ObtainedAt: now.UTC(),
	}
}

// Case is a priced bundle of weighted items loaded from the catalog.
type Case struct {
	Name     string  `validate:"required"`
	Price    float64 `validate:"gte=0"`
	ImageRef string  `validate:"required"`
	Items    []Item  `validate:"min=1,dive"`
}
