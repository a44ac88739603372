package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	Slot  string `json:"slot" validate:"slot"`
	Tier  string `json:"tier" validate:"potiontier"`
	Level int    `json:"level" validate:"min=1,max=16"`
}

// =============================================================================
// Validator Tests - best, boundary, edge and invalid cases
// =============================================================================

func TestValidator_SlotValidation(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		slot    string
		wantErr bool
	}{
		// Best case
		{"canonical", "Peito", false},
		// Boundary - empty allowed (not required)
		{"empty allowed", "", false},
		// Edge - case and accent insensitive
		{"no accent", "calca", false},
		{"uppercase accented", "CALÇA", false},
		// Invalid
		{"unknown", "Bota", true},
		{"typo", "Peit", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testRequest{Slot: tt.slot, Level: 1})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ErrMsgUnknownSlotError, FormatValidationError(err)["slot"])
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_PotionTierValidation(t *testing.T) {
	v := GetValidator()

	assert.NoError(t, v.ValidateStruct(testRequest{Tier: "prata", Level: 1}))
	assert.NoError(t, v.ValidateStruct(testRequest{Tier: "", Level: 1}))

	err := v.ValidateStruct(testRequest{Tier: "Platina", Level: 1})
	require.Error(t, err)
	assert.Equal(t, ErrMsgUnknownTierError, FormatValidationError(err)["tier"])
}

func TestFormatValidationError_Bounds(t *testing.T) {
	v := GetValidator()

	errs := FormatValidationError(v.ValidateStruct(testRequest{Level: 0}))
	assert.Equal(t, "Must be at least 1", errs["level"])

	errs = FormatValidationError(v.ValidateStruct(testRequest{Level: 17}))
	assert.Equal(t, "Must be at most 16", errs["level"])
}

func TestFormatValidationError_NotValidationErrors(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("x")))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
