package enhancement

import (
	"math"

	"github.com/osse101/gla-tools/internal/domain"
)

// ClampLevel forces a current boost level into [MinLevel, MaxLevel]
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// yieldRows computes the unpriced rows for every level above current.
// current must already be clamped.
func yieldRows(slot domain.EquipmentSlot, current int) ([]domain.LevelEstimate, error) {
	rows := make([]domain.LevelEstimate, 0, MaxLevel-current)
	for lvl := current + 1; lvl <= MaxLevel; lvl++ {
		expected, err := ExpectedCrystals(slot, lvl)
		if err != nil {
			return nil, err
		}
		high, err := MaxCrystals(slot, lvl)
		if err != nil {
			return nil, err
		}
		rows = append(rows, domain.LevelEstimate{
			Level:       lvl,
			CrystalType: CrystalTypeFor(lvl),
			Expected:    expected,
			Low:         int64(math.Floor(expected)),
			High:        int64(high),
		})
	}
	return rows, nil
}

// priceRows fills in prices on a copy of rows and aggregates the totals.
// TotalLow floors the sum of un-floored expectations once, while each row's Low
// is floored on its own, so TotalLow >= sum of Low.
func priceRows(est *domain.UpgradeEstimate, rows []domain.LevelEstimate, prices domain.PriceTable) {
	est.Levels = make([]domain.LevelEstimate, len(rows))
	est.ByCrystal = make([]domain.CrystalTotal, 0, len(crystalBands))

	var expectedSum, bandSum float64
	for i, r := range rows {
		r.UnitPrice = prices.Price(r.CrystalType)
		r.CostLow = r.Low * r.UnitPrice
		r.CostHigh = r.High * r.UnitPrice
		est.Levels[i] = r

		expectedSum += r.Expected
		est.TotalHigh += r.High
		est.TotalCostLow += r.CostLow
		est.TotalCostHigh += r.CostHigh

		n := len(est.ByCrystal)
		if n == 0 || est.ByCrystal[n-1].CrystalType != r.CrystalType {
			if n > 0 {
				est.ByCrystal[n-1].Low = int64(math.Floor(bandSum))
			}
			est.ByCrystal = append(est.ByCrystal, domain.CrystalTotal{CrystalType: r.CrystalType})
			bandSum = 0
			n++
		}
		bandSum += r.Expected
		ct := &est.ByCrystal[n-1]
		ct.High += r.High
		ct.CostLow += r.CostLow
		ct.CostHigh += r.CostHigh
	}
	if n := len(est.ByCrystal); n > 0 {
		est.ByCrystal[n-1].Low = int64(math.Floor(bandSum))
	}
	est.TotalLow = int64(math.Floor(expectedSum))
}

// EstimateRange prices every boost from currentLevel up to the cap for slot.
// currentLevel is clamped into [MinLevel, MaxLevel]; at the cap the breakdown is
// empty. The transfer cost is taken at the unclamped currentLevel. Prices
// outside [0, domain.MaxCrystalPrice] are rejected with domain.ErrInvalidInput.
func EstimateRange(slot domain.EquipmentSlot, currentLevel int, prices domain.PriceTable) (*domain.UpgradeEstimate, error) {
	if err := prices.Validate(); err != nil {
		return nil, err
	}
	current := ClampLevel(currentLevel)
	rows, err := yieldRows(slot, current)
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
	return est, nil
}
