package enhancement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedAttempts_Table(t *testing.T) {
	want := map[int]float64{
		1:  2.0725,
		2:  2.533,
		3:  3.05078125,
		4:  3.68928,
		5:  3.23310256,
		6:  3.8666296032,
		7:  5.005586234952959,
		8:  6.861894039100001,
		9:  6.861894039100001,
		10: 7.528050139848838,
		11: 8.271836541968856,
		12: 9.475701970691219,
		13: 10.845336110265745,
		14: 13.188767474237686,
		15: 16.350478795407547,
		16: 21.499710848652157,
	}
	for lvl, expected := range want {
		r := RuleFor(lvl)
		assert.InDelta(t, expected, ExpectedAttempts(r.SuccessChance, r.PityCap), 1e-9, "level %d", lvl)
	}
}

func TestExpectedAttempts_Bounds(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		cap  int
		want float64
	}{
		{"certain success", 1.0, 5, 1},
		{"certain failure hits pity", 0.0, 7, 7},
		{"pity of one", 0.3, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExpectedAttempts(tt.p, tt.cap), 1e-12)
		})
	}
}

func TestExpectedAttempts_NeverExceedsPity(t *testing.T) {
	for _, r := range Rules() {
		e := ExpectedAttempts(r.SuccessChance, r.PityCap)
		assert.GreaterOrEqual(t, e, 1.0, "level %d", r.Level)
		assert.LessOrEqual(t, e, float64(r.PityCap), "level %d", r.Level)
	}
}

func TestExpectedAttempts_IncreasesWithPity(t *testing.T) {
	for _, p := range []float64{0.03, 0.1, 0.35, 0.9} {
		prev := ExpectedAttempts(p, 1)
		for c := 2; c <= 40; c++ {
			next := ExpectedAttempts(p, c)
			assert.Greater(t, next, prev, "p=%v cap=%d", p, c)
			prev = next
		}
	}
}

func TestRules_Ordered(t *testing.T) {
	rules := Rules()
	require.Len(t, rules, MaxLevel)
	for i, r := range rules {
		assert.Equal(t, i+1, r.Level)
		assert.Greater(t, r.SuccessChance, 0.0)
		assert.LessOrEqual(t, r.SuccessChance, 1.0)
		assert.GreaterOrEqual(t, r.PityCap, 1)
	}

	rules[0].PityCap = 99
	assert.Equal(t, 3, RuleFor(1).PityCap, "Rules must return a copy")
}

func TestRuleFor_PanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { RuleFor(0) })
	assert.Panics(t, func() { RuleFor(17) })
	assert.NotPanics(t, func() { RuleFor(16) })
}
