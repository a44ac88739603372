package leveling

import (
	"context"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/logger"
	"github.com/osse101/gla-tools/internal/metrics"
)

// TierInfo describes one potion tier and its denominations
type TierInfo struct {
	Tier          domain.PotionTier `json:"tier"`
	Denominations []Denomination    `json:"denominations"`
}

// Service defines the experience planning operations
type Service interface {
	ExperienceBetween(ctx context.Context, start, end int) (int64, error)
	PlanPotions(ctx context.Context, start, end int, tier domain.PotionTier) (*domain.PotionPlan, error)
	Tiers(ctx context.Context) []TierInfo
}

type service struct{}

// NewService creates a new leveling service
func NewService() Service {
	return &service{}
}

func (s *service) ExperienceBetween(ctx context.Context, start, end int) (int64, error) {
	xp, err := ExperienceBetween(start, end)
	if err != nil {
		logger.FromContext(ctx).Debug(LogMsgInvalidRange, "start", start, "end", end)
		return 0, err
	}
	return xp, nil
}

// PlanPotions converts a level goal into a potion breakdown for tier
func (s *service) PlanPotions(ctx context.Context, start, end int, tier domain.PotionTier) (*domain.PotionPlan, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgPlanPotionsCalled, "start", start, "end", end, "tier", tier)

	denoms, err := DenominationsFor(tier)
	if err != nil {
		return nil, err
	}

	xp, err := s.ExperienceBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	potions := Decompose(xp, denoms)
	plan := &domain.PotionPlan{
		StartLevel: start,
		EndLevel:   end,
		Tier:       tier,
		Experience: xp,
		Potions:    potions,
		Covered:    CoveredExperience(potions),
	}
	if published, ok := PublishedExperience(start, end); ok {
		plan.PublishedExperience = &published
	}

	metrics.XPPlansComputed.WithLabelValues(string(tier)).Inc()
	log.Info(LogMsgPotionsPlanned, "start", start, "end", end, "tier", tier, "xp", xp)
	return plan, nil
}

// Tiers lists every tier with its potion values
func (s *service) Tiers(_ context.Context) []TierInfo {
	out := make([]TierInfo, 0, len(domain.PotionTiers))
	for _, t := range domain.PotionTiers {
		denoms, _ := DenominationsFor(t)
		out = append(out, TierInfo{Tier: t, Denominations: denoms})
	}
	return out
}
