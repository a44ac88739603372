package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/input"
)

// PriceFile is the on-disk layout of the default crystal prices
type PriceFile struct {
	Prices map[string]int64 `yaml:"prices" validate:"dive,keys,required,endkeys,min=0,max=1000000000000000"`
}

// LoadPrices reads the default crystal price table from a YAML file.
// A missing file yields an empty table, pricing every crystal at zero.
func LoadPrices(path string) (domain.PriceTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.PriceTable{}, nil
		}
		return nil, fmt.Errorf("failed to read prices file %s: %w", path, err)
	}
	return ParsePrices(data)
}

// ParsePrices decodes and validates a YAML price document
func ParsePrices(data []byte) (domain.PriceTable, error) {
	var file PriceFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse prices: %w", err)
	}
	if err := validator.New().Struct(file); err != nil {
		return nil, fmt.Errorf("%w: prices: %v", domain.ErrInvalidInput, err)
	}

	table := make(domain.PriceTable, len(file.Prices))
	for _, name := range slices.Sorted(maps.Keys(file.Prices)) {
		c, err := input.ParseCrystalType(name)
		if err != nil {
			return nil, err
		}
		if _, dup := table[c]; dup {
			return nil, fmt.Errorf("%w: prices: %q repeats the price for %s", domain.ErrInvalidInput, name, c)
		}
		table[c] = file.Prices[name]
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
