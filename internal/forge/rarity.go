package forge

import (
	"math"
	"sort"
)

// Rarity is a cosmetic strength tier.
type Rarity struct {
	ID    string
	Label string
	Name  string
	Min   float64
}

// Rarity ids.
const (
	RarityCommon    = "common"
	RarityMagic     = "magic"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
	RarityAncient   = "ancient"
)

// rarities is ordered by Min ascending; the first entry has Min 0.
var rarities = []Rarity{
	{ID: RarityCommon, Min: 0, Label: "Common", Name: "Rusty Iron Sword"},
	{ID: RarityMagic, Min: 28, Label: "Magic", Name: "Enchanted Dagger"},
	{ID: RarityRare, Min: 45, Label: "Rare", Name: "Masterwork Battleaxe"},
	{ID: RarityEpic, Min: 65, Label: "Epic", Name: "Relic of the Old Ones"},
	{ID: RarityLegendary, Min: 85, Label: "Legendary", Name: "World Boss Drop"},
	{ID: RarityAncient, Min: 110, Label: "Ancient", Name: "Developer Backdoor"},
}

// Rarities returns the tier table, lowest first.
func Rarities() []Rarity {
	out := make([]Rarity, len(rarities))
	copy(out, rarities)
	return out
}

// RarityFor returns the highest tier whose minimum is <= entropy.
// Entropy below zero (or NaN) falls back to the lowest tier.
func RarityFor(entropy float64) Rarity {
	if math.IsNaN(entropy) {
		return rarities[0]
	}
	i := sort.Search(len(rarities), func(i int) bool {
		return rarities[i].Min > entropy
	})
	if i == 0 {
		return rarities[0]
	}
	return rarities[i-1]
}

// RarityByID looks up a tier by id.
func RarityByID(id string) (Rarity, bool) {
	for _, r := range rarities {
		if r.ID == id {
			return r, true
		}
	}
	return Rarity{}, false
}
