package handler

import (
	"net/http"

	"github.com/osse101/gla-tools/internal/input"
	"github.com/osse101/gla-tools/internal/leveling"
	"github.com/osse101/gla-tools/internal/logger"
)

// ExperienceResponse is the experience between two levels
type ExperienceResponse struct {
	StartLevel int   `json:"start_level"`
	EndLevel   int   `json:"end_level"`
	Experience int64 `json:"experience"`
}

// PlanRequest asks for the potions needed to go from start to end.
// Level bounds are checked by the service so they report as an invalid range.
type PlanRequest struct {
	StartLevel int    `json:"start_level"`
	EndLevel   int    `json:"end_level"`
	Tier       string `json:"tier" validate:"required,potiontier"`
}

// HandleGetTiers lists the potion tiers and their denominations
// @Summary List potion tiers
// @Tags experience
// @Produce json
// @Success 200 {array} leveling.TierInfo
// @Router /api/v1/xp/tiers [get]
func HandleGetTiers(svc leveling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.Tiers(r.Context()))
	}
}

// HandleExperienceBetween returns the experience needed between two levels
// @Summary Experience between levels
// @Tags experience
// @Produce json
// @Param start query int true "Starting level (1-139)"
// @Param end query int true "Target level (2-140)"
// @Success 200 {object} ExperienceResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/xp/between [get]
func HandleExperienceBetween(svc leveling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, ok := GetLevelQueryParam(r, w, "start")
		if !ok {
			return
		}
		end, ok := GetLevelQueryParam(r, w, "end")
		if !ok {
			return
		}

		xp, err := svc.ExperienceBetween(r.Context(), start, end)
		if err != nil {
			respondServiceError(w, r, ErrMsgExperienceFailed, err)
			return
		}

		logger.FromContext(r.Context()).Debug(LogMsgExperienceServed, "start", start, "end", end, "xp", xp)
		respondJSON(w, http.StatusOK, ExperienceResponse{StartLevel: start, EndLevel: end, Experience: xp})
	}
}

// HandlePlanPotions breaks the experience between two levels into potions
// @Summary Plan potions for a level goal
// @Tags experience
// @Accept json
// @Produce json
// @Param request body PlanRequest true "Level goal and potion tier"
// @Success 200 {object} domain.PotionPlan
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/xp/plan [post]
func HandlePlanPotions(svc leveling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PlanRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Plan potions"); err != nil {
			return
		}

		tier, err := input.ParsePotionTier(req.Tier)
		if err != nil {
			respondServiceError(w, r, ErrMsgPlanFailed, err)
			return
		}

		plan, err := svc.PlanPotions(r.Context(), req.StartLevel, req.EndLevel, tier)
		if err != nil {
			respondServiceError(w, r, ErrMsgPlanFailed, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgPlanServed, "tier", tier, "xp", plan.Experience)
		respondJSON(w, http.StatusOK, plan)
	}
}
