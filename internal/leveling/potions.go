package leveling

import (
	"fmt"

	"github.com/osse101/gla-tools/internal/domain"
)

// Potion size labels
const (
	LabelLarge  = "grande"
	LabelMedium = "média"
	LabelSmall  = "pequena"
)

// Denomination is one potion size and the experience it grants
type Denomination struct {
	Label     string `json:"label"`
	UnitValue int64  `json:"unit_value"`
}

// Potion values per tier, largest first
var denominationsByTier = map[domain.PotionTier][]Denomination{
	domain.PotionTierDiamante: {{LabelLarge, 50000}, {LabelMedium, 5000}, {LabelSmall, 500}},
	domain.PotionTierOuro:     {{LabelLarge, 100000}, {LabelMedium, 10000}, {LabelSmall, 1000}},
	domain.PotionTierPrata:    {{LabelLarge, 200000}, {LabelMedium, 20000}, {LabelSmall, 2000}},
	domain.PotionTierBronze:   {{LabelLarge, 300000}, {LabelMedium, 30000}, {LabelSmall, 3000}},
}

// DenominationsFor returns a copy of the potion set for tier
func DenominationsFor(tier domain.PotionTier) ([]Denomination, error) {
	set, ok := denominationsByTier[tier]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}
	out := make([]Denomination, len(set))
	copy(out, set)
	return out, nil
}

// Decompose greedily splits xp into potions, largest denomination first.
// Whatever is left below the smallest denomination is dropped, so the result
// never exceeds xp and falls short by less than the smallest unit value.
// denoms must be sorted by descending UnitValue with every UnitValue > 0.
func Decompose(xp int64, denoms []Denomination) []domain.PotionCount {
	counts := make([]domain.PotionCount, len(denoms))
	remaining := xp
	if remaining < 0 {
		remaining = 0
	}
	for i, d := range denoms {
		n := remaining / d.UnitValue
		remaining -= n * d.UnitValue
		counts[i] = domain.PotionCount{Label: d.Label, UnitValue: d.UnitValue, Count: n}
	}
	return counts
}

// CoveredExperience sums count*unit over a breakdown
func CoveredExperience(counts []domain.PotionCount) int64 {
	var total int64
	for _, c := range counts {
		total += c.Count * c.UnitValue
	}
	return total
}
