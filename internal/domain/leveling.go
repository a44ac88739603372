package domain

// PotionTier selects the experience value of each potion size
type PotionTier string

const (
	PotionTierDiamante PotionTier = "Diamante"
	PotionTierOuro     PotionTier = "Ouro"
	PotionTierPrata    PotionTier = "Prata"
	PotionTierBronze   PotionTier = "Bronze"
)

// PotionTiers lists the tiers in display order
var PotionTiers = []PotionTier{
	PotionTierDiamante,
	PotionTierOuro,
	PotionTierPrata,
	PotionTierBronze,
}

// IsValid reports whether t is one of the fixed tiers
func (t PotionTier) IsValid() bool {
	switch t {
	case PotionTierDiamante, PotionTierOuro, PotionTierPrata, PotionTierBronze:
		return true
	}
	return false
}

// PotionCount is one line of a potion breakdown
type PotionCount struct {
	Label     string `json:"label"`
	UnitValue int64  `json:"unit_value"`
	Count     int64  `json:"count"`
}

// PotionPlan is the result of converting a level range into potions
type PotionPlan struct {
	StartLevel int           `json:"start_level"`
	EndLevel   int           `json:"end_level"`
	Tier       PotionTier    `json:"tier"`
	Experience int64         `json:"experience"`
	Potions    []PotionCount `json:"potions"`
	// Covered is the experience the potions actually provide; Experience-Covered
	// is the truncated remainder below the smallest potion.
	Covered int64 `json:"covered"`
	// PublishedExperience is set when the range matches a figure published
	// alongside the level table.
	PublishedExperience *int64 `json:"published_experience,omitempty"`
}
