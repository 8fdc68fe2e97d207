// Package features resolves which class and subclass features a character
// has at a given level.
package features

import (
	"strings"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

// Source tag prefixes
const (
	SourceClass    = "class"
	SourceSubclass = "subclass"
)

// Resolve returns the features unlocked at or before level. Class features
// come first in table order, followed by subclass features in table order.
// Subclass features are only included once level reaches the class's
// subclass level and subclassName names a known subclass.
//
// An unknown class yields an empty list. The table and scores are not modified.
func Resolve(table *dnd5e.RuleTable, className, subclassName string, level int, scores dnd5e.AbilityScores) []dnd5e.Feature {
	classKey, class, ok := table.Class(className)
	if !ok {
		return []dnd5e.Feature{}
	}

	classSlug := Slug(classKey)
	out := make([]dnd5e.Feature, 0, len(class.Features))
	for _, f := range class.Features {
		if f.Level > level {
			continue
		}
		out = append(out, build(f, classSlug+":"+Slug(f.Name), SourceClass+":"+classKey, level, scores))
	}

	if level < class.SubclassLevel {
		return out
	}
	subKey, sub, ok := class.Subclass(subclassName)
	if !ok {
		return out
	}

	prefix := classSlug + ":" + Slug(subKey) + ":"
	for _, f := range sub.Features {
		if f.Level > level {
			continue
		}
		out = append(out, build(f, prefix+Slug(f.Name), SourceSubclass+":"+subKey, level, scores))
	}
	return out
}

func build(f dnd5e.ClassFeature, id, source string, level int, scores dnd5e.AbilityScores) dnd5e.Feature {
	feature := dnd5e.Feature{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Source:      source,
		Level:       f.Level,
		Recharge:    f.Recharge,
	}
	if f.Uses != nil {
		n := ResolveUses(*f.Uses, level, scores)
		feature.Uses = &dnd5e.FeatureUses{Max: n, Current: n}
	}
	return feature
}

// ResolveUses turns a symbolic uses formula into a count. The result is never
// below 1, so a formula that works out to zero or less still grants one use.
func ResolveUses(spec dnd5e.UsesSpec, level int, scores dnd5e.AbilityScores) int {
	var n int
	switch spec.Kind {
	case dnd5e.UsesLevel:
		n = level
	case dnd5e.UsesProf:
		n = dnd5e.ProficiencyBonusForLevel(level)
	case dnd5e.UsesAbility:
		n = scores.Modifier(spec.Ability)
	default:
		n = spec.Value
	}
	if n < 1 {
		return 1
	}
	return n
}

// Slug lowercases s and collapses every run of non-alphanumerics to '-'
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
