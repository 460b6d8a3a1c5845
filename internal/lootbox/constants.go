package lootbox

import "github.com/osse101/CaseBox_Go/internal/domain"

// ============================================================================
// Rarity Weights
// ============================================================================

// Relative draw weights per rarity class. An item's chance is its weight over
// the summed weights of every item in the case.
const (
	WeightCommon    = 50
	WeightUncommon  = 30
	WeightRare      = 15
	WeightMythical  = 4
	WeightLegendary = 1

	// WeightUnknown applies to rarities outside the table.
	WeightUnknown = 1
)

var rarityWeights = map[domain.Rarity]int{
	domain.RarityCommon:    WeightCommon,
	domain.RarityUncommon:  WeightUncommon,
	domain.RarityRare:      WeightRare,
	domain.RarityMythical:  WeightMythical,
	domain.RarityLegendary: WeightLegendary,
}

// ============================================================================
// Reel
// ============================================================================

// DefaultReelLength is the number of cosmetic draws shown before the result.
const DefaultReelLength = 20

// MaxReelLength bounds a single reel request.
const MaxReelLength = 1000
