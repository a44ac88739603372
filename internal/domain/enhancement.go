package domain

import "fmt"

// EquipmentSlot identifies the boosted piece of equipment
type EquipmentSlot string

const (
	SlotEmblema  EquipmentSlot = "Emblema"
	SlotCapacete EquipmentSlot = "Capacete"
	SlotCalca    EquipmentSlot = "Calça"
	SlotPeito    EquipmentSlot = "Peito"
	SlotArma     EquipmentSlot = "Arma"
	SlotColar    EquipmentSlot = "Colar"
)

// EquipmentSlots lists the slots in display order
var EquipmentSlots = []EquipmentSlot{
	SlotEmblema,
	SlotCapacete,
	SlotCalca,
	SlotPeito,
	SlotArma,
	SlotColar,
}

// IsValid reports whether s is one of the fixed slots
func (s EquipmentSlot) IsValid() bool {
	switch s {
	case SlotEmblema, SlotCapacete, SlotCalca, SlotPeito, SlotArma, SlotColar:
		return true
	}
	return false
}

// CrystalType is the resource consumed by boost attempts within a band of levels
type CrystalType string

const (
	CrystalCeu      CrystalType = "Cristais do Céu"
	CrystalSabio    CrystalType = "Cristais do Sábio"
	CrystalCarmesim CrystalType = "Cristais Carmesim"
	CrystalRadiante CrystalType = "Cristais Radiante"
)

// CrystalTypes lists the crystal types in band order
var CrystalTypes = []CrystalType{
	CrystalCeu,
	CrystalSabio,
	CrystalCarmesim,
	CrystalRadiante,
}

// IsValid reports whether c is one of the fixed crystal types
func (c CrystalType) IsValid() bool {
	switch c {
	case CrystalCeu, CrystalSabio, CrystalCarmesim, CrystalRadiante:
		return true
	}
	return false
}

// MaxCrystalPrice bounds a single crystal price so that a full estimate
// (at most a few hundred crystals) cannot overflow int64 berry totals
const MaxCrystalPrice int64 = 1_000_000_000_000_000

// PriceTable maps each crystal type to its price in berry.
// Missing entries price at zero.
type PriceTable map[CrystalType]int64

// Validate rejects negative prices and prices above MaxCrystalPrice
func (p PriceTable) Validate() error {
	for _, c := range CrystalTypes {
		v, ok := p[c]
		if !ok {
			continue
		}
		if v < 0 || v > MaxCrystalPrice {
			return fmt.Errorf("%w: price for %s must be between 0 and %d, got %d",
				ErrInvalidInput, c, MaxCrystalPrice, v)
		}
	}
	return nil
}

// Price returns the unit price for c, or 0 when absent
func (p PriceTable) Price(c CrystalType) int64 {
	if p == nil {
		return 0
	}
	return p[c]
}

// LevelEstimate is the cost of reaching a single boost level
type LevelEstimate struct {
	Level       int         `json:"level"`
	CrystalType CrystalType `json:"crystal_type"`
	// Expected is the un-floored expected crystal count
	Expected  float64 `json:"expected"`
	Low       int64   `json:"low"`
	High      int64   `json:"high"`
	UnitPrice int64   `json:"unit_price"`
	CostLow   int64   `json:"cost_low"`
	CostHigh  int64   `json:"cost_high"`
}

// CrystalTotal sums the rows that consume one crystal type
type CrystalTotal struct {
	CrystalType CrystalType `json:"crystal_type"`
	// Low is floor(sum of un-floored expectations) within the band
	Low      int64 `json:"low"`
	High     int64 `json:"high"`
	CostLow  int64 `json:"cost_low"`
	CostHigh int64 `json:"cost_high"`
}

// UpgradeEstimate is the cost of boosting a slot from its current level to the cap
type UpgradeEstimate struct {
	Slot         EquipmentSlot   `json:"slot"`
	CurrentLevel int             `json:"current_level"`
	Levels       []LevelEstimate `json:"levels"`
	// TotalLow is floor(sum of un-floored expectations), not the sum of Low
	TotalLow      int64 `json:"total_low"`
	TotalHigh     int64 `json:"total_high"`
	TotalCostLow  int64 `json:"total_cost_low"`
	TotalCostHigh int64 `json:"total_cost_high"`
	// ByCrystal has one entry per crystal type present in Levels, in band order
	ByCrystal    []CrystalTotal `json:"by_crystal"`
	TransferCost int            `json:"transfer_cost"`
}
