package enhancement

import (
	"fmt"
	"math"
)

// Boost level bounds
const (
	MinLevel = 1
	MaxLevel = 16
)

// UpgradeRule is the success chance of a boost attempt at a level and the attempt
// number at which success is guaranteed (pity)
type UpgradeRule struct {
	Level         int     `json:"level"`
	SuccessChance float64 `json:"success_chance"`
	PityCap       int     `json:"pity_cap"`
}

// upgradeRules is indexed by level; index 0 is unused
var upgradeRules = [MaxLevel + 1]UpgradeRule{
	{},
	{1, 0.35, 3},
	{2, 0.30, 4},
	{3, 0.25, 5},
	{4, 0.20, 6},
	{5, 0.22, 5},
	{6, 0.18, 6},
	{7, 0.14, 8},
	{8, 0.10, 11},
	{9, 0.10, 11},
	{10, 0.09, 12},
	{11, 0.08, 13},
	{12, 0.07, 15},
	{13, 0.06, 17},
	{14, 0.05, 21},
	{15, 0.04, 26},
	{16, 0.03, 34},
}

// RuleFor returns the rule for a level in [MinLevel, MaxLevel].
// Asking for a level outside that range is a programming error.
func RuleFor(level int) UpgradeRule {
	if level < MinLevel || level > MaxLevel {
		panic(fmt.Sprintf("enhancement: no upgrade rule for level %d", level))
	}
	r := upgradeRules[level]
	if r.Level != level || r.PityCap < 1 {
		panic(fmt.Sprintf("enhancement: corrupt upgrade rule for level %d", level))
	}
	return r
}

// Rules returns a copy of every rule in level order
func Rules() []UpgradeRule {
	out := make([]UpgradeRule, 0, MaxLevel)
	for lvl := MinLevel; lvl <= MaxLevel; lvl++ {
		out = append(out, RuleFor(lvl))
	}
	return out
}

// ExpectedAttempts is the mean number of attempts until success when each
// attempt succeeds with chance p and attempt pityCap always succeeds:
//
//	sum_{k=1}^{pityCap-1} k*(1-p)^(k-1)*p + pityCap*(1-p)^(pityCap-1)
//
// The terms are accumulated in this order so results are reproducible to the bit.
func ExpectedAttempts(p float64, pityCap int) float64 {
	q := 1 - p
	e := 0.0
	for k := 1; k < pityCap; k++ {
		e += float64(k) * math.Pow(q, float64(k-1)) * p
	}
	e += float64(pityCap) * math.Pow(q, float64(pityCap-1))
	return e
}
