package modifiers

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// first signed integer anywhere in the text, e.g. "Stealth +7"
	bonusPattern = regexp.MustCompile(`[+-]\s*\d+`)

	// signed integer followed by "to hit", e.g. "Melee Weapon Attack: +4 to hit"
	toHitPattern = regexp.MustCompile(`(?i)([+-]\s*\d+)\s+to\s+hit`)
)

// ParsedBonus is the result of scraping a bonus out of stat block prose.
// OK is false when the text holds no usable number.
type ParsedBonus struct {
	Value int
	OK    bool
}

// ParseBonus extracts the first `[+-]\s*\d+` in text
func ParseBonus(text string) ParsedBonus {
	return parseSigned(bonusPattern.FindString(text))
}

// ParseToHit extracts N from the first "+N to hit" (any case) in text
func ParseToHit(text string) ParsedBonus {
	m := toHitPattern.FindStringSubmatch(text)
	if m == nil {
		return ParsedBonus{}
	}
	return parseSigned(m[1])
}

func parseSigned(s string) ParsedBonus {
	if s == "" {
		return ParsedBonus{}
	}
	s = strings.Join(strings.Fields(s), "")
	n, err := strconv.Atoi(s)
	if err != nil {
		return ParsedBonus{}
	}
	return ParsedBonus{Value: n, OK: true}
}
