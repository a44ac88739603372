package enhancement

import (
	"fmt"

	"github.com/osse101/gla-tools/internal/domain"
)

// transferBandCeilings are the upper levels of each transfer cost band, ascending
var transferBandCeilings = []int{4, 8, 12, 16}

// Gem cost to move a boost to another item, by band ceiling and slot
var transferCosts = map[int]map[domain.EquipmentSlot]int{
	4: {
		domain.SlotCapacete: 1,
		domain.SlotPeito:    2,
		domain.SlotCalca:    1,
		domain.SlotEmblema:  1,
		domain.SlotArma:     2,
		domain.SlotColar:    2,
	},
	8: {
		domain.SlotCapacete: 3,
		domain.SlotPeito:    5,
		domain.SlotCalca:    3,
		domain.SlotEmblema:  3,
		domain.SlotArma:     5,
		domain.SlotColar:    5,
	},
	12: {
		domain.SlotCapacete: 6,
		domain.SlotPeito:    10,
		domain.SlotCalca:    6,
		domain.SlotEmblema:  6,
		domain.SlotArma:     10,
		domain.SlotColar:    10,
	},
	16: {
		domain.SlotCapacete: 10,
		domain.SlotPeito:    15,
		domain.SlotCalca:    10,
		domain.SlotEmblema:  10,
		domain.SlotArma:     15,
		domain.SlotColar:    15,
	},
}

// transferBand returns the smallest band ceiling >= level; levels past the last
// ceiling use the last band
func transferBand(level int) int {
	for _, c := range transferBandCeilings {
		if level <= c {
			return c
		}
	}
	return transferBandCeilings[len(transferBandCeilings)-1]
}

// TransferCost returns the gems needed to transfer a slot's boost at level.
// An unboosted item (level <= 0) costs nothing.
func TransferCost(slot domain.EquipmentSlot, level int) (int, error) {
	if !slot.IsValid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownSlot, slot)
	}
	if level <= 0 {
		return 0, nil
	}
	return transferCosts[transferBand(level)][slot], nil
}
