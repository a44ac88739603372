package leveling

import (
	"fmt"

	"github.com/osse101/gla-tools/internal/domain"
)

// Level bounds for experience lookups
const (
	MinLevel = 1
	MaxLevel = 140
)

// cumulativeXP[level] is the total experience needed to reach level from level 0.
// Level 1 is the starting level, so cumulativeXP[0] == cumulativeXP[1] == 0.
var cumulativeXP = [MaxLevel + 1]int64{
	0,
	0, 98, 199, 388, 790, 1498, 2565, 4176, 6397, 9230,
	12956, 17596, 23083, 29830, 37795, 46824, 57498, 69694, 83153, 98660,
	115993, 134770, 156016, 179392, 204375, 232266, 262591, 294668, 330110, 368290,
	408349, 452248, 499189, 548118, 601744, 658352, 717039, 780570, 847751, 917084,
	991790, 1070450, 1151317, 1238104, 1329149, 1422438, 1522212, 1626548, 1733147, 1846814,
	1965347, 2086144, 2214610, 2348246, 2484129, 2628300, 2777945, 2929802, 3090584, 3257144,
	3425863, 3604162, 3788543, 3975012, 4171734, 4374842, 4579949, 4796000, 5018741, 5243374,
	5479660, 5722940, 5967987, 6225414, 6490139, 6756488, 7035962, 7323038, 7611577, 7914004,
	8224337, 8535954, 8862240, 9196736, 9532319, 9883370, 10242935, 10603372, 10980094, 11365634,
	11751813, 12155112, 12567533, 12980342, 13411124, 13851332, 14291659, 14750830, 15219731, 15688464,
	16176930, 16675430, 17173457, 17692124, 18221129, 18749338, 19299112, 19859528, 20418807, 21000594,
	21593327, 22184564, 22799270, 23425226, 24049309, 24697840, 25357925, 26015742, 26699004, 27394124,
	28086563, 28805462, 29536523, 30264472, 31019914, 31787822, 32552169, 33345060, 34150721, 34952354,
	35783600, 36627920, 37467727, 38338234, 39222119, 40100988, 41011662, 41936018, 42854837, 43806584,
}

// milestone is a level range whose total was published separately from the table
type milestone struct {
	start, end int
}

// publishedMilestones are the round figures quoted for common goals. They do not
// match the per-level table exactly; the table stays authoritative for math.
var publishedMilestones = map[milestone]int64{
	{1, 70}:   5246500,
	{70, 140}: 38566500,
	{1, 140}:  43813000,
}

// CumulativeXP returns the total experience to reach level from level 0
func CumulativeXP(level int) (int64, error) {
	if level < 0 || level > MaxLevel {
		return 0, fmt.Errorf("%w: level %d outside 0-%d", domain.ErrInvalidRange, level, MaxLevel)
	}
	return cumulativeXP[level], nil
}

// ExperienceBetween returns the experience needed to go from start to end.
// Requires MinLevel <= start < end <= MaxLevel.
func ExperienceBetween(start, end int) (int64, error) {
	if err := ValidateRange(start, end); err != nil {
		return 0, err
	}
	return cumulativeXP[end] - cumulativeXP[start], nil
}

// ValidateRange checks that start and end form a valid level goal
func ValidateRange(start, end int) error {
	if start < MinLevel || end > MaxLevel || start >= end {
		return fmt.Errorf("%w: %d -> %d (need %d <= start < end <= %d)",
			domain.ErrInvalidRange, start, end, MinLevel, MaxLevel)
	}
	return nil
}

// PublishedExperience returns the published figure for a range, if one exists
func PublishedExperience(start, end int) (int64, bool) {
	v, ok := publishedMilestones[milestone{start, end}]
	return v, ok
}
