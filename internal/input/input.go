// Package input turns user-typed strings from the CLI, HTTP query strings and
// Discord options into calculator values.
package input

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/osse101/gla-tools/internal/domain"
)

var (
	slotIndex    = lookup(domain.EquipmentSlots, nil)
	tierIndex    = lookup(domain.PotionTiers, nil)
	crystalIndex = lookup(domain.CrystalTypes, map[string]domain.CrystalType{
		"ceu":      domain.CrystalCeu,
		"sabio":    domain.CrystalSabio,
		"carmesim": domain.CrystalCarmesim,
		"radiante": domain.CrystalRadiante,
	})
)

// ParseLevel reads a whole-number level. Range checks are left to the caller.
func ParseLevel(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrParse, raw)
	}
	return n, nil
}

// ParseSlot resolves an equipment slot name, ignoring case and accents
func ParseSlot(raw string) (domain.EquipmentSlot, error) {
	if s, ok := slotIndex[normalize(raw)]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownSlot, raw)
}

// ParsePotionTier resolves a potion tier name, ignoring case and accents
func ParsePotionTier(raw string) (domain.PotionTier, error) {
	if t, ok := tierIndex[normalize(raw)]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownTier, raw)
}

// ParseCrystalType resolves a crystal type from its full name or short alias
func ParseCrystalType(raw string) (domain.CrystalType, error) {
	if c, ok := crystalIndex[normalize(raw)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", domain.ErrUnknownCrystalType, raw)
}

// ParsePrices converts raw per-crystal price strings into a price table.
// Blank, non-numeric, negative and oversized prices count as zero; every
// problem is reported in the returned warnings rather than failing the whole
// table. Keys are visited in sorted order, so when several keys name the same
// crystal the first one wins and the rest are reported as duplicates.
func ParsePrices(raw map[string]string) (domain.PriceTable, []string) {
	prices := make(domain.PriceTable, len(domain.CrystalTypes))
	var warnings []string

	for _, name := range slices.Sorted(maps.Keys(raw)) {
		c, err := ParseCrystalType(name)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf(WarnMsgUnknownCrystal, name))
			continue
		}
		if _, seen := prices[c]; seen {
			warnings = append(warnings, fmt.Sprintf(WarnMsgDuplicatePrice, c, name))
			continue
		}
		value := strings.TrimSpace(raw[name])
		if value == "" {
			prices[c] = 0
			continue
		}
		n, err := strconv.ParseInt(value, 10, 64)
		switch {
		case err != nil:
			warnings = append(warnings, fmt.Sprintf(WarnMsgBadPrice, c, value))
			n = 0
		case n < 0:
			warnings = append(warnings, fmt.Sprintf(WarnMsgNegativePrice, c, n))
			n = 0
		case n > domain.MaxCrystalPrice:
			warnings = append(warnings, fmt.Sprintf(WarnMsgPriceTooHigh, c, n, domain.MaxCrystalPrice))
			n = 0
		}
		prices[c] = n
	}
	slices.Sort(warnings)
	return prices, warnings
}
