package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/enhancement"
	"github.com/osse101/gla-tools/internal/input"
	"github.com/osse101/gla-tools/internal/logger"
)

// PriceValue is a crystal price sent as a JSON number or string. Strings are
// kept verbatim so bad values can be reported instead of failing the request.
type PriceValue string

// UnmarshalJSON accepts 1200, "1200" and null
func (p *PriceValue) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PriceValue(n.String())
	return nil
}

// EstimateRequest asks for the crystal cost of boosting a slot to the cap.
// Prices missing from the request use the server's defaults.
type EstimateRequest struct {
	Slot         string                `json:"slot" validate:"required,slot"`
	CurrentLevel int                   `json:"current_level"`
	Prices       map[string]PriceValue `json:"prices,omitempty"`
}

// EstimateResponse is an estimate plus any problems found in the prices
type EstimateResponse struct {
	*domain.UpgradeEstimate
	Warnings []string `json:"warnings,omitempty"`
}

// TransferCostResponse is the gem cost to move a boost
type TransferCostResponse struct {
	Slot  domain.EquipmentSlot `json:"slot"`
	Level int                  `json:"level"`
	Gems  int                  `json:"gems"`
}

// HandleGetRules lists the per-level success chances and pity caps
// @Summary Boost rules
// @Tags crystals
// @Produce json
// @Success 200 {array} enhancement.RuleInfo
// @Router /api/v1/crystals/rules [get]
func HandleGetRules(svc enhancement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Rules(r.Context()))
	}
}

// HandleTransferCost returns the gem cost to transfer a slot's boost
// @Summary Boost transfer cost
// @Tags crystals
// @Produce json
// @Param slot query string true "Equipment slot"
// @Param level query int true "Current boost level"
// @Success 200 {object} TransferCostResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/crystals/transfer-cost [get]
func HandleTransferCost(svc enhancement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawSlot, ok := GetQueryParam(r, w, "slot")
		if !ok {
			return
		}
		level, ok := GetLevelQueryParam(r, w, "level")
		if !ok {
			return
		}
		slot, err := input.ParseSlot(rawSlot)
		if err != nil {
			respondServiceError(w, r, ErrMsgTransferFailed, err)
			return
		}

		gems, err := svc.TransferCost(r.Context(), slot, level)
		if err != nil {
			respondServiceError(w, r, ErrMsgTransferFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgTransferCostServed, "slot", slot, "level", level, "gems", gems)
		respondJSON(w, http.StatusOK, TransferCostResponse{Slot: slot, Level: level, Gems: gems})
	}
}

// HandleEstimate prices every remaining boost for a slot
// @Summary Crystal estimate
// @Tags crystals
// @Accept json
// @Produce json
// @Param request body EstimateRequest true "Slot, current level and optional prices"
// @Success 200 {object} EstimateResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/crystals/estimate [post]
func HandleEstimate(svc enhancement.Service, defaults domain.PriceTable) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req EstimateRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Estimate crystals"); err != nil {
			return
		}

		slot, err := input.ParseSlot(req.Slot)
		if err != nil {
			respondServiceError(w, r, ErrMsgEstimateFailed, err)
			return
		}

		prices, warnings := mergePrices(defaults, req.Prices)
		log := logger.FromContext(r.Context())
		if len(warnings) > 0 {
			log.Warn(LogMsgPriceWarnings, "warnings", warnings)
		}

		est, err := svc.Estimate(r.Context(), slot, req.CurrentLevel, prices)
		if err != nil {
			respondServiceError(w, r, ErrMsgEstimateFailed, err)
			return
		}

		log.Info(LogMsgEstimateServed, "slot", slot, "current_level", est.CurrentLevel, "total_cost_high", est.TotalCostHigh)
		respondJSON(w, http.StatusOK, EstimateResponse{UpgradeEstimate: est, Warnings: warnings})
	}
}

// mergePrices overlays the request's prices on the defaults
func mergePrices(defaults domain.PriceTable, raw map[string]PriceValue) (domain.PriceTable, []string) {
	merged := make(domain.PriceTable, len(domain.CrystalTypes))
	for c, p := range defaults {
		merged[c] = p
	}
	if len(raw) == 0 {
		return merged, nil
	}

	asStrings := make(map[string]string, len(raw))
	for k, v := range raw {
		asStrings[k] = string(v)
	}
	parsed, warnings := input.ParsePrices(asStrings)
	for c, p := range parsed {
		merged[c] = p
	}
	return merged, warnings
}

