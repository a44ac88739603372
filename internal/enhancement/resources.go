package enhancement

import (
	"fmt"

	"github.com/osse101/gla-tools/internal/domain"
)

// Crystals consumed by a single boost attempt, per slot
var crystalsPerAttempt = map[domain.EquipmentSlot]int{
	domain.SlotEmblema:  2,
	domain.SlotCapacete: 2,
	domain.SlotCalca:    2,
	domain.SlotPeito:    4,
	domain.SlotArma:     4,
	domain.SlotColar:    4,
}

// crystalBand binds a crystal type to an inclusive range of boost levels
type crystalBand struct {
	Low, High int
	Type      domain.CrystalType
}

// crystalBands partition [MinLevel, MaxLevel]
var crystalBands = []crystalBand{
	{1, 4, domain.CrystalCeu},
	{5, 8, domain.CrystalSabio},
	{9, 12, domain.CrystalCarmesim},
	{13, 16, domain.CrystalRadiante},
}

// CrystalsPerAttempt returns how many crystals one attempt on slot consumes
func CrystalsPerAttempt(slot domain.EquipmentSlot) (int, error) {
	n, ok := crystalsPerAttempt[slot]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownSlot, slot)
	}
	return n, nil
}

// CrystalTypeFor returns the crystal consumed when boosting to level.
// Anything above the Carmesim band is Radiante.
func CrystalTypeFor(level int) domain.CrystalType {
	for _, b := range crystalBands {
		if level >= b.Low && level <= b.High {
			return b.Type
		}
	}
	return domain.CrystalRadiante
}

// LevelsFor returns the inclusive level band of a crystal type
func LevelsFor(c domain.CrystalType) (low, high int, err error) {
	for _, b := range crystalBands {
		if b.Type == c {
			return b.Low, b.High, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", domain.ErrUnknownCrystalType, c)
}

// ExpectedCrystals is the expected crystal spend to reach level on slot.
// Levels below 1 cost nothing; levels above the cap are priced as the cap.
func ExpectedCrystals(slot domain.EquipmentSlot, level int) (float64, error) {
	per, err := CrystalsPerAttempt(slot)
	if err != nil {
		return 0, err
	}
	if level < MinLevel {
		return 0, nil
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	r := RuleFor(level)
	return ExpectedAttempts(r.SuccessChance, r.PityCap) * float64(per), nil
}

// MaxCrystals is the guaranteed worst case: every attempt fails until pity.
// Clamping matches ExpectedCrystals.
func MaxCrystals(slot domain.EquipmentSlot, level int) (int, error) {
	per, err := CrystalsPerAttempt(slot)
	if err != nil {
		return 0, err
	}
	if level < MinLevel {
		return 0, nil
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	return RuleFor(level).PityCap * per, nil
}
