package enhancement

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/logger"
	"github.com/osse101/gla-tools/internal/metrics"
)

// RuleInfo is an upgrade rule with its derived expectation
type RuleInfo struct {
	UpgradeRule
	ExpectedAttempts float64            `json:"expected_attempts"`
	CrystalType      domain.CrystalType `json:"crystal_type"`
}

// Service defines the boost cost operations
type Service interface {
	Estimate(ctx context.Context, slot domain.EquipmentSlot, currentLevel int, prices domain.PriceTable) (*domain.UpgradeEstimate, error)
	TransferCost(ctx context.Context, slot domain.EquipmentSlot, currentLevel int) (int, error)
	Rules(ctx context.Context) []RuleInfo
}

// Config controls the service's row cache
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type rowKey struct {
	slot    domain.EquipmentSlot
	current int
}

type service struct {
	rows *expirable.LRU[rowKey, []domain.LevelEstimate]
}

// NewService creates a new enhancement service. A CacheSize of zero disables the
// row cache.
func NewService(cfg Config) Service {
	s := &service{}
	if cfg.CacheSize > 0 {
		s.rows = expirable.NewLRU[rowKey, []domain.LevelEstimate](cfg.CacheSize, nil, cfg.CacheTTL)
	}
	return s
}

// Estimate prices a slot's remaining boosts. Rows do not depend on prices, so
// they are cached per (slot, clamped level) and priced on every call.
func (s *service) Estimate(ctx context.Context, slot domain.EquipmentSlot, currentLevel int, prices domain.PriceTable) (*domain.UpgradeEstimate, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgEstimateCalled, "slot", slot, "current_level", currentLevel)

	if !slot.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSlot, slot)
	}
	if err := prices.Validate(); err != nil {
		return nil, err
	}

	current := ClampLevel(currentLevel)
	rows, err := s.cachedRows(slot, current)
	if err != nil {
		return nil, err
	}
	transfer, err := TransferCost(slot, currentLevel)
	if err != nil {
		return nil, err
	}

	est := &domain.UpgradeEstimate{
		Slot:         slot,
		CurrentLevel: current,
		TransferCost: transfer,
	}
	priceRows(est, rows, prices)

	metrics.CrystalEstimatesComputed.WithLabelValues(string(slot)).Inc()
	log.Info(LogMsgEstimateComputed,
		"slot", slot,
		"current_level", current,
		"levels", len(est.Levels),
		"total_low", est.TotalLow,
		"total_high", est.TotalHigh)
	return est, nil
}

func (s *service) cachedRows(slot domain.EquipmentSlot, current int) ([]domain.LevelEstimate, error) {
	if s.rows == nil {
		return yieldRows(slot, current)
	}
	key := rowKey{slot: slot, current: current}
	if rows, ok := s.rows.Get(key); ok {
		metrics.EstimateCacheHits.Inc()
		return rows, nil
	}
	rows, err := yieldRows(slot, current)
	if err != nil {
		return nil, err
	}
	s.rows.Add(key, rows)
	return rows, nil
}

func (s *service) TransferCost(ctx context.Context, slot domain.EquipmentSlot, currentLevel int) (int, error) {
	cost, err := TransferCost(slot, currentLevel)
	if err != nil {
		return 0, err
	}
	logger.FromContext(ctx).Debug(LogMsgTransferCost, "slot", slot, "level", currentLevel, "gems", cost)
	return cost, nil
}

func (s *service) Rules(_ context.Context) []RuleInfo {
	rules := Rules()
	out := make([]RuleInfo, len(rules))
	for i, r := range rules {
		out[i] = RuleInfo{
			UpgradeRule:      r,
			ExpectedAttempts: ExpectedAttempts(r.SuccessChance, r.PityCap),
			CrystalType:      CrystalTypeFor(r.Level),
		}
	}
	return out
}
