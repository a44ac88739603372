// Package format renders engine results for people: pt-BR number grouping and
// the plain-text tables shared by the CLI and the Discord bot.
package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/gla-tools/internal/domain"
)

// Locale is the display language for every number
var Locale = language.BrazilianPortuguese

// Printers are not safe for concurrent use, so each call builds its own.
func printer() *message.Printer {
	return message.NewPrinter(Locale)
}

// Int groups thousands with "." as in 5.243.374
func Int(n int64) string {
	return printer().Sprintf("%d", n)
}

// Decimal renders f with two decimals and a "," separator
func Decimal(f float64) string {
	return printer().Sprintf("%.2f", f)
}

// Percent renders a 0..1 chance as a whole percentage
func Percent(chance float64) string {
	return printer().Sprintf("%d%%", int64(chance*100+0.5))
}

// Berry renders a price
func Berry(n int64) string {
	return Int(n) + " " + UnitBerry
}

// Span renders a low/high pair, collapsing equal ends
func Span(low, high int64) string {
	if low == high {
		return Int(low)
	}
	return fmt.Sprintf(SpanFormat, Int(low), Int(high))
}

// PotionLines lists a potion plan, one line per size that is actually used
func PotionLines(plan *domain.PotionPlan) []string {
	lines := make([]string, 0, len(plan.Potions))
	for _, p := range plan.Potions {
		if p.Count == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf(PotionLineFormat, Int(p.Count), p.Label, Int(p.UnitValue)))
	}
	if len(lines) == 0 {
		lines = append(lines, NoPotionsNeeded)
	}
	return lines
}

// EstimateTable renders the per-level rows as fixed-width text
func EstimateTable(est *domain.UpgradeEstimate) string {
	if len(est.Levels) == 0 {
		return AlreadyMaxed
	}
	var b strings.Builder
	fmt.Fprintf(&b, TableHeaderFormat, ColLevel, ColCrystal, ColCrystals, ColCost)
	for _, r := range est.Levels {
		fmt.Fprintf(&b, TableRowFormat,
			r.Level,
			ShortCrystalName(r.CrystalType),
			Span(r.Low, r.High),
			Span(r.CostLow, r.CostHigh))
	}
	return b.String()
}

// CrystalSummary lists the per-type totals, one line each
func CrystalSummary(est *domain.UpgradeEstimate) []string {
	lines := make([]string, 0, len(est.ByCrystal))
	for _, c := range est.ByCrystal {
		lines = append(lines, fmt.Sprintf(SummaryLineFormat, c.CrystalType, Span(c.Low, c.High), Span(c.CostLow, c.CostHigh)))
	}
	return lines
}

// ShortCrystalName drops the "Cristais" prefix for narrow tables
func ShortCrystalName(c domain.CrystalType) string {
	s := strings.TrimPrefix(string(c), "Cristais ")
	return strings.TrimPrefix(s, "do ")
}
