package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gla-tools/internal/domain"
)

func TestLoadPrices(t *testing.T) {
	t.Run("missing file is an empty table", func(t *testing.T) {
		prices, err := LoadPrices(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Empty(t, prices)
	})

	t.Run("reads names and aliases", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prices.yaml")
		doc := "prices:\n  Cristais do Céu: 1200\n  sabio: 3400\n  Cristais Carmesim: 0\n"
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

		prices, err := LoadPrices(path)
		require.NoError(t, err)
		assert.Equal(t, domain.PriceTable{
			domain.CrystalCeu:      1200,
			domain.CrystalSabio:    3400,
			domain.CrystalCarmesim: 0,
		}, prices)
	})

	t.Run("shipped sample parses", func(t *testing.T) {
		prices, err := LoadPrices(filepath.Join("..", "..", ConfigPathCrystalPrices))
		require.NoError(t, err)
		assert.Len(t, prices, len(domain.CrystalTypes))
	})
}

func TestParsePrices_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"negative price", "prices:\n  ceu: -1\n", domain.ErrInvalidInput},
		{"unknown crystal", "prices:\n  dourado: 5\n", domain.ErrUnknownCrystalType},
		{"price above limit", "prices:\n  radiante: 100000000000000000\n", domain.ErrInvalidInput},
		{"two names for one crystal", "prices:\n  ceu: 1\n  Cristais do Céu: 2\n", domain.ErrInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrices([]byte(tt.doc))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := ParsePrices([]byte("prices: [1, 2"))
	assert.Error(t, err)
}
