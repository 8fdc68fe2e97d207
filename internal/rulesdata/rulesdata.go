// Package rulesdata loads class and subclass rule tables from YAML
package rulesdata

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-companion/internal/engine/features"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
)

//go:embed classes.yaml
var defaultTable []byte

var (
	defaultOnce   sync.Once
	defaultParsed *dnd5e.RuleTable
	defaultErr    error
)

// Default returns the embedded SRD rule table. It is parsed once; callers
// share the result and must not modify it.
func Default() (*dnd5e.RuleTable, error) {
	defaultOnce.Do(func() {
		defaultParsed, defaultErr = Parse(defaultTable)
	})
	return defaultParsed, defaultErr
}

// Load reads a rule table from a YAML file
func Load(path string) (*dnd5e.RuleTable, error) {
	if path == "" {
		return nil, errors.InvalidArgument("rules path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("rules file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read rules file %s", path)
	}

	table, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load rules file %s", path)
	}
	return table, nil
}

// Parse decodes and validates a YAML rule table. Unknown keys are rejected.
func Parse(data []byte) (*dnd5e.RuleTable, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var table dnd5e.RuleTable
	if err := dec.Decode(&table); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode rule table")
	}

	if table.Classes == nil {
		table.Classes = make(map[string]*dnd5e.ClassDefinition)
	}

	if err := Validate(&table); err != nil {
		return nil, err
	}
	return &table, nil
}

// Validate checks hit dice, subclass levels and feature levels
func Validate(table *dnd5e.RuleTable) error {
	if table == nil {
		return errors.InvalidArgument("rule table cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	for _, name := range sortedKeys(table.Classes) {
		class := table.Classes[name]
		if class == nil {
			vb.RequiredField(name)
			continue
		}
		if class.HitDie <= 0 {
			vb.Field(name+".hit_die", "must be positive")
		}
		errors.ValidateRange(name+".subclass_level", class.SubclassLevel, dnd5e.MinLevel, dnd5e.MaxLevel, vb)
		validateFeatures(name, class.Features, vb)

		if class.Spellcasting != nil && !class.Spellcasting.Ability.Valid() {
			vb.InvalidField(name+".spellcasting.ability", fmt.Sprintf("unknown ability %q", class.Spellcasting.Ability))
		}

		for _, subName := range sortedKeys(class.Subclasses) {
			sub := class.Subclasses[subName]
			if sub == nil {
				vb.RequiredField(name + "." + subName)
				continue
			}
			validateFeatures(name+"."+subName, sub.Features, vb)
		}
	}
	return vb.Build()
}

// validateFeatures also rejects names that slug to the same feature ID within
// one class or subclass.
func validateFeatures(prefix string, list []dnd5e.ClassFeature, vb *errors.ValidationBuilder) {
	seen := make(map[string]int, len(list))
	for i, f := range list {
		field := fmt.Sprintf("%s.features[%d]", prefix, i)
		errors.ValidateRange(field+".level", f.Level, dnd5e.MinLevel, dnd5e.MaxLevel, vb)
		errors.ValidateRequired(field+".name", f.Name, vb)
		if slug := features.Slug(f.Name); slug != "" {
			if first, dup := seen[slug]; dup {
				vb.InvalidField(field+".name", fmt.Sprintf("duplicates features[%d] %q", first, f.Name))
			} else {
				seen[slug] = i
			}
		}
		switch f.Recharge {
		case dnd5e.RechargeNone, dnd5e.RechargeShortRest, dnd5e.RechargeLongRest, dnd5e.RechargeDawn:
		default:
			vb.InvalidField(field+".recharge", string(f.Recharge))
		}
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
