package dnd5e

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// RuleTable is the static class/subclass rule data. It is loaded once and
// treated as read-only for the life of the process.
type RuleTable struct {
	Version string                      `json:"version" yaml:"version"`
	Classes map[string]*ClassDefinition `json:"classes" yaml:"classes"`
}

// Class looks up a class by name. An exact key match wins, otherwise the
// lookup falls back to a case-insensitive comparison.
func (t *RuleTable) Class(name string) (string, *ClassDefinition, bool) {
	if t == nil || name == "" {
		return "", nil, false
	}
	if def, ok := t.Classes[name]; ok && def != nil {
		return name, def, true
	}
	for key, def := range t.Classes {
		if def != nil && SameName(key, name) {
			return key, def, true
		}
	}
	return "", nil, false
}

// ClassDefinition describes one class
type ClassDefinition struct {
	HitDie        int                            `json:"hit_die" yaml:"hit_die"`
	SubclassLevel int                            `json:"subclass_level" yaml:"subclass_level"`
	Features      []ClassFeature                 `json:"features" yaml:"features"`
	Spellcasting  *SpellcastingTable             `json:"spellcasting,omitempty" yaml:"spellcasting,omitempty"`
	Subclasses    map[string]*SubclassDefinition `json:"subclasses,omitempty" yaml:"subclasses,omitempty"`
}

// Subclass looks up a subclass using the same rules as RuleTable.Class
func (c *ClassDefinition) Subclass(name string) (string, *SubclassDefinition, bool) {
	if c == nil || name == "" {
		return "", nil, false
	}
	if def, ok := c.Subclasses[name]; ok && def != nil {
		return name, def, true
	}
	for key, def := range c.Subclasses {
		if def != nil && SameName(key, name) {
			return key, def, true
		}
	}
	return "", nil, false
}

// SubclassDefinition describes one subclass
type SubclassDefinition struct {
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Features    []ClassFeature `json:"features" yaml:"features"`
}

// SpellcastingTable lists spell slots per character level. Slots[0] is level 1
// and each inner slice is indexed by spell level minus one.
type SpellcastingTable struct {
	Ability Ability `json:"ability" yaml:"ability"`
	Slots   [][]int `json:"slots,omitempty" yaml:"slots,omitempty"`
}

// SlotsAt returns the spell slots for a character level, or nil
func (s *SpellcastingTable) SlotsAt(level int) []int {
	if s == nil || level < 1 || level > len(s.Slots) {
		return nil
	}
	return s.Slots[level-1]
}

// Recharge says when a limited feature comes back
type Recharge string

// Recharge policies
const (
	RechargeNone      Recharge = ""
	RechargeShortRest Recharge = "short_rest"
	RechargeLongRest  Recharge = "long_rest"
	RechargeDawn      Recharge = "dawn"
)

// ClassFeature is a single row of a class or subclass feature list
type ClassFeature struct {
	Level       int       `json:"level" yaml:"level"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	Uses        *UsesSpec `json:"uses,omitempty" yaml:"uses,omitempty"`
	Recharge    Recharge  `json:"recharge,omitempty" yaml:"recharge,omitempty"`
}

// UsesKind is the symbol a uses formula is written in
type UsesKind string

// Uses formula kinds
const (
	UsesFixed   UsesKind = "fixed"
	UsesLevel   UsesKind = "level"
	UsesProf    UsesKind = "prof"
	UsesAbility UsesKind = "ability"
)

// UsesSpec is the symbolic "uses" quota of a feature: 'level', 'prof', an
// ability code, or a literal integer. It reads and writes as that scalar in
// both JSON and YAML.
type UsesSpec struct {
	Kind    UsesKind
	Ability Ability
	Value   int
}

// FixedUses builds a literal uses spec
func FixedUses(n int) *UsesSpec {
	return &UsesSpec{Kind: UsesFixed, Value: n}
}

// AbilityUses builds an ability-modifier uses spec
func AbilityUses(a Ability) *UsesSpec {
	return &UsesSpec{Kind: UsesAbility, Ability: a}
}

// ParseUsesSpec reads "level", "prof", an ability code or an integer
func ParseUsesSpec(s string) (UsesSpec, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case string(UsesLevel):
		return UsesSpec{Kind: UsesLevel}, nil
	case string(UsesProf):
		return UsesSpec{Kind: UsesProf}, nil
	}
	if a := Ability(s); a.Valid() {
		return UsesSpec{Kind: UsesAbility, Ability: a}, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return UsesSpec{}, fmt.Errorf("invalid uses %q: want level, prof, an ability code or an integer", s)
	}
	return UsesSpec{Kind: UsesFixed, Value: n}, nil
}

// String renders the spec back to its scalar form
func (u UsesSpec) String() string {
	switch u.Kind {
	case UsesLevel, UsesProf:
		return string(u.Kind)
	case UsesAbility:
		return string(u.Ability)
	default:
		return strconv.Itoa(u.Value)
	}
}

// MarshalJSON writes integers as numbers and symbols as strings
func (u UsesSpec) MarshalJSON() ([]byte, error) {
	if u.Kind == UsesFixed || u.Kind == "" {
		return json.Marshal(u.Value)
	}
	return json.Marshal(u.String())
}

// UnmarshalJSON accepts a number or a symbol string
func (u *UsesSpec) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*u = UsesSpec{Kind: UsesFixed, Value: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("uses must be a number or string: %w", err)
	}
	parsed, err := ParseUsesSpec(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// MarshalYAML writes the scalar form
func (u UsesSpec) MarshalYAML() (interface{}, error) {
	if u.Kind == UsesFixed || u.Kind == "" {
		return u.Value, nil
	}
	return u.String(), nil
}

// UnmarshalYAML accepts `uses: 3` or `uses: wis`
func (u *UsesSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: uses must be a scalar", value.Line)
	}
	parsed, err := ParseUsesSpec(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*u = parsed
	return nil
}
