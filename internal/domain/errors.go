package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Level errors
	ErrMsgInvalidRange = "invalid level range"

	// Input errors
	ErrMsgParse        = "not a valid number"
	ErrMsgInvalidInput = "invalid input"

	// Enumeration errors
	ErrMsgUnknownSlot        = "unknown equipment slot"
	ErrMsgUnknownTier        = "unknown potion tier"
	ErrMsgUnknownCrystalType = "unknown crystal type"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidRange is returned when level bounds are violated (1 <= start < end <= 140).
	ErrInvalidRange = errors.New(ErrMsgInvalidRange)

	// ErrParse is returned for non-numeric text where a number was expected.
	// It is distinct from ErrInvalidRange so callers can re-prompt differently.
	ErrParse = errors.New(ErrMsgParse)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrUnknownSlot        = errors.New(ErrMsgUnknownSlot)
	ErrUnknownTier        = errors.New(ErrMsgUnknownTier)
	ErrUnknownCrystalType = errors.New(ErrMsgUnknownCrystalType)
)
