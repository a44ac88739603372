package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/enhancement"
	"github.com/osse101/gla-tools/internal/format"
	"github.com/osse101/gla-tools/internal/input"
	"github.com/osse101/gla-tools/internal/leveling"
)

type xpCommand struct {
	svc leveling.Service
}

func (c *xpCommand) Name() string        { return "xp" }
func (c *xpCommand) Description() string { return "XP e poções entre dois níveis" }
func (c *xpCommand) Usage() string       { return "<início> <fim> [poção]" }

func (c *xpCommand) Run(args []string, out io.Writer) error {
	if len(args) < 2 || len(args) > 3 {
		return usageError{c}
	}
	start, err := input.ParseLevel(args[0])
	if err != nil {
		return err
	}
	end, err := input.ParseLevel(args[1])
	if err != nil {
		return err
	}

	tiers := domain.PotionTiers
	if len(args) == 3 {
		tier, err := input.ParsePotionTier(args[2])
		if err != nil {
			return err
		}
		tiers = []domain.PotionTier{tier}
	}

	ctx := context.Background()
	xp, err := c.svc.ExperienceBetween(ctx, start, end)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Nível %d → %d: %s XP\n", start, end, format.Int(xp))

	for _, tier := range tiers {
		plan, err := c.svc.PlanPotions(ctx, start, end, tier)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s:\n", tier)
		for _, line := range format.PotionLines(plan) {
			fmt.Fprintf(out, "  %s\n", line)
		}
		if rest := plan.Experience - plan.Covered; rest > 0 {
			fmt.Fprintf(out, "  sobra: %s XP\n", format.Int(rest))
		}
	}
	return nil
}

type crystalsCommand struct {
	svc          enhancement.Service
	loadDefaults func() (domain.PriceTable, error)
}

func (c *crystalsCommand) Name() string        { return "cristais" }
func (c *crystalsCommand) Description() string { return "Cristais e berry até o nível máximo" }
func (c *crystalsCommand) Usage() string {
	return "<equipamento> <nível> [-ceu N] [-sabio N] [-carmesim N] [-radiante N]"
}

func (c *crystalsCommand) Run(args []string, out io.Writer) error {
	if len(args) < 2 {
		return usageError{c}
	}
	slot, err := input.ParseSlot(args[0])
	if err != nil {
		return err
	}
	level, err := input.ParseLevel(args[1])
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	raw := map[string]*string{
		"ceu":      fs.String("ceu", "", "preço do Cristal do Céu"),
		"sabio":    fs.String("sabio", "", "preço do Cristal do Sábio"),
		"carmesim": fs.String("carmesim", "", "preço do Cristal Carmesim"),
		"radiante": fs.String("radiante", "", "preço do Cristal Radiante"),
	}
	if err := fs.Parse(args[2:]); err != nil || fs.NArg() > 0 {
		return usageError{c}
	}

	prices := domain.PriceTable{}
	if c.loadDefaults != nil {
		defaults, err := c.loadDefaults()
		if err != nil {
			return err
		}
		for k, v := range defaults {
			prices[k] = v
		}
	}
	given := make(map[string]string)
	fs.Visit(func(f *flag.Flag) { given[f.Name] = *raw[f.Name] })
	overrides, warnings := input.ParsePrices(given)
	for k, v := range overrides {
		prices[k] = v
	}
	for _, w := range warnings {
		fmt.Fprintf(out, MsgWarning, w)
	}

	est, err := c.svc.Estimate(context.Background(), slot, level, prices)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s +%d\n\n", est.Slot, est.CurrentLevel)
	fmt.Fprint(out, format.EstimateTable(est))
	if len(est.Levels) > 0 {
		fmt.Fprintln(out)
		for _, line := range format.CrystalSummary(est) {
			fmt.Fprintln(out, line)
		}
		fmt.Fprintf(out, "\nTotal: %s cristais, %s %s\n",
			format.Span(est.TotalLow, est.TotalHigh),
			format.Span(est.TotalCostLow, est.TotalCostHigh), format.UnitBerry)
	} else {
		fmt.Fprintln(out)
	}
	fmt.Fprintf(out, "Transferência: %s %s\n", format.Int(int64(est.TransferCost)), format.UnitGems)
	return nil
}

type transferCommand struct {
	svc enhancement.Service
}

func (c *transferCommand) Name() string        { return "transferencia" }
func (c *transferCommand) Description() string { return "Gemas para transferir um aprimoramento" }
func (c *transferCommand) Usage() string       { return "<equipamento> <nível>" }

func (c *transferCommand) Run(args []string, out io.Writer) error {
	if len(args) != 2 {
		return usageError{c}
	}
	slot, err := input.ParseSlot(args[0])
	if err != nil {
		return err
	}
	level, err := input.ParseLevel(args[1])
	if err != nil {
		return err
	}

	gems, err := c.svc.TransferCost(context.Background(), slot, level)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s +%d: %s %s\n", slot, level, format.Int(int64(gems)), format.UnitGems)
	return nil
}

type rulesCommand struct {
	svc enhancement.Service
}

func (c *rulesCommand) Name() string        { return "regras" }
func (c *rulesCommand) Description() string { return "Chance, pity e tentativas esperadas por nível" }
func (c *rulesCommand) Usage() string       { return "" }

func (c *rulesCommand) Run(args []string, out io.Writer) error {
	if len(args) != 0 {
		return usageError{c}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%-3s %-7s %-5s %-10s %s\n", "Nv", "Chance", "Pity", "Esperado", "Cristal")
	for _, r := range c.svc.Rules(context.Background()) {
		fmt.Fprintf(&b, "%-3d %-7s %-5d %-10s %s\n",
			r.Level, format.Percent(r.SuccessChance), r.PityCap,
			format.Decimal(r.ExpectedAttempts), format.ShortCrystalName(r.CrystalType))
	}
	_, err := io.WriteString(out, b.String())
	return err
}
