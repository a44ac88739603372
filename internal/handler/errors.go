package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Operation failures, used as log context for respondServiceError
	ErrMsgExperienceFailed = "Failed to compute experience"
	ErrMsgPlanFailed       = "Failed to plan potions"
	ErrMsgEstimateFailed   = "Failed to estimate crystals"
	ErrMsgTransferFailed   = "Failed to resolve transfer cost"
)

// User-facing error messages derived from domain errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRangeError   = "Levels must satisfy 1 <= start < end <= 140"
	ErrMsgNotANumberError     = "Levels must be whole numbers"
	ErrMsgUnknownSlotError    = "Unknown equipment slot. Valid: Emblema, Capacete, Calça, Peito, Arma, Colar"
	ErrMsgUnknownTierError    = "Unknown potion tier. Valid: Diamante, Ouro, Prata, Bronze"
	ErrMsgUnknownCrystalError = "Unknown crystal type"
	ErrMsgInvalidInputError   = "Invalid input"
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."
)

// Validation failure kinds recorded in metrics
const (
	FailureKindDecode   = "decode"
	FailureKindFields   = "fields"
	FailureKindQuery    = "query"
	FailureKindDomain   = "domain"
	FailureKindInternal = "internal"
)

// Log messages
const (
	LogMsgEncodeFailed       = "Failed to encode JSON response"
	LogMsgWriteFailed        = "Failed to write response buffer"
	LogMsgRequestDecoded     = "Request decoded"
	LogMsgDecodeFailed       = "Failed to decode request"
	LogMsgMissingQueryParam  = "Missing query parameter"
	LogMsgInvalidQueryParam  = "Invalid query parameter"
	LogMsgPriceWarnings      = "Request prices had problems"
	LogMsgReadinessFailed    = "Readiness check failed"
	LogMsgEstimateServed     = "Crystal estimate served"
	LogMsgPlanServed         = "Potion plan served"
	LogMsgExperienceServed   = "Experience served"
	LogMsgTransferCostServed = "Transfer cost served"
)
