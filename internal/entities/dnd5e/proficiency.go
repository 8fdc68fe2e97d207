package dnd5e

import (
	"math"
	"strconv"
	"strings"
)

// Level bounds for player characters
const (
	MinLevel = 1
	MaxLevel = 20
)

// ProficiencyBonusForLevel returns floor((level-1)/4)+2. Levels outside 1..20
// are clamped first.
func ProficiencyBonusForLevel(level int) int {
	return floorDiv(ClampLevel(level)-1, 4) + 2
}

// ClampLevel bounds a level to 1..20
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// crSteps is ordered from the highest threshold down
var crSteps = []struct {
	min   float64
	bonus int
}{
	{29, 9},
	{25, 8},
	{21, 7},
	{17, 6},
	{13, 5},
	{9, 4},
	{5, 3},
}

// ProficiencyBonusForCR maps a challenge rating onto the stat-block step table.
// Anything below CR 5, including fractional ratings, gets +2.
func ProficiencyBonusForCR(cr float64) int {
	for _, step := range crSteps {
		if cr >= step.min {
			return step.bonus
		}
	}
	return 2
}

// ParseChallengeRating reads "5", "0.5" or "1/4" style ratings.
// Anything it cannot read, or that comes out negative, is 0.
func ParseChallengeRating(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	var cr float64
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil || d == 0 {
			return 0
		}
		cr = n / d
	} else {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		cr = v
	}

	if math.IsNaN(cr) || math.IsInf(cr, 0) || cr < 0 {
		return 0
	}
	return cr
}

// FormatChallengeRating renders a rating the way stat blocks print it:
// 0.125, 0.25 and 0.5 become "1/8", "1/4" and "1/2".
func FormatChallengeRating(cr float64) string {
	switch cr {
	case 0.125:
		return "1/8"
	case 0.25:
		return "1/4"
	case 0.5:
		return "1/2"
	}
	return strconv.FormatFloat(cr, 'f', -1, 64)
}
