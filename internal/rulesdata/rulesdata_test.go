package rulesdata_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-companion/internal/engine/features"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/rulesdata"
)

func TestDefault_LoadsAllClasses(t *testing.T) {
	table, err := rulesdata.Default()
	require.NoError(t, err)

	for _, name := range []string{"Barbarian", "Fighter", "Rogue", "Cleric", "Wizard", "Bard", "Monk", "Paladin"} {
		_, class, ok := table.Class(name)
		require.True(t, ok, name)
		assert.Positive(t, class.HitDie, name)
		assert.NotEmpty(t, class.Features, name)
	}

	again, err := rulesdata.Default()
	require.NoError(t, err)
	assert.Same(t, table, again)
}

func TestDefault_BarbarianLevelFive(t *testing.T) {
	table, err := rulesdata.Default()
	require.NoError(t, err)

	_, barbarian, ok := table.Class("barbarian")
	require.True(t, ok)
	assert.Equal(t, 12, barbarian.HitDie)
	assert.Equal(t, 3, barbarian.SubclassLevel)

	got := features.Resolve(table, "Barbarian", "", 5, dnd5e.AbilityScores{dnd5e.AbilityConstitution: 16})

	names := make([]string, 0, len(got))
	for _, f := range got {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"Rage", "Unarmored Defense", "Reckless Attack", "Danger Sense",
		"Rage Uses", "Extra Attack", "Fast Movement",
	}, names)

	require.NotNil(t, got[0].Uses)
	assert.Equal(t, 2, got[0].Uses.Max)
	assert.Equal(t, dnd5e.RechargeLongRest, got[0].Recharge)
	require.NotNil(t, got[4].Uses)
	assert.Equal(t, 3, got[4].Uses.Max)
}

func TestDefault_SymbolicUses(t *testing.T) {
	table, err := rulesdata.Default()
	require.NoError(t, err)

	_, bard, ok := table.Class("Bard")
	require.True(t, ok)
	require.NotNil(t, bard.Features[1].Uses)
	assert.Equal(t, dnd5e.UsesAbility, bard.Features[1].Uses.Kind)
	assert.Equal(t, dnd5e.AbilityCharisma, bard.Features[1].Uses.Ability)

	_, monk, ok := table.Class("Monk")
	require.True(t, ok)
	require.NotNil(t, monk.Features[2].Uses)
	assert.Equal(t, dnd5e.UsesLevel, monk.Features[2].Uses.Kind)

	_, cleric, ok := table.Class("Cleric")
	require.True(t, ok)
	assert.Equal(t, []int{4, 3, 2}, cleric.Spellcasting.SlotsAt(5))
}

func TestParse_Rejects(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
	}{
		{
			name: "zero hit die",
			yaml: "classes:\n  Fighter:\n    hit_die: 0\n    subclass_level: 3\n    features: []\n",
		},
		{
			name: "subclass level out of range",
			yaml: "classes:\n  Fighter:\n    hit_die: 10\n    subclass_level: 21\n    features: []\n",
		},
		{
			name: "feature level out of range",
			yaml: "classes:\n  Fighter:\n    hit_die: 10\n    subclass_level: 3\n    features:\n      - level: 0\n        name: Second Wind\n",
		},
		{
			name: "subclass feature level out of range",
			yaml: "classes:\n  Fighter:\n    hit_die: 10\n    subclass_level: 3\n    features: []\n    subclasses:\n      Champion:\n        features:\n          - level: 25\n            name: Improved Critical\n",
		},
		{
			name: "bad uses",
			yaml: "classes:\n  Fighter:\n    hit_die: 10\n    subclass_level: 3\n    features:\n      - level: 1\n        name: Second Wind\n        uses: often\n",
		},
		{
			name: "bad recharge",
			yaml: "classes:\n  Fighter:\n    hit_die: 10\n    subclass_level: 3\n    features:\n      - level: 1\n        name: Second Wind\n        recharge: weekly\n",
		},
		{
			name: "duplicate feature name",
			yaml: "classes:\n  Fighter:\n    hit_die: 10\n    subclass_level: 3\n    features:\n      - level: 4\n        name: Ability Score Improvement\n      - level: 8\n        name: ability score improvement\n",
		},
		{
			name: "duplicate subclass feature name",
			yaml: "classes:\n  Fighter:\n    hit_die: 10\n    subclass_level: 3\n    features: []\n    subclasses:\n      Champion:\n        features:\n          - level: 3\n            name: Improved Critical\n          - level: 15\n            name: Improved Critical\n",
		},
		{
			name: "unknown field",
			yaml: "classes:\n  Fighter:\n    hit_die: 10\n    subclass_level: 3\n    hit_points: 10\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := rulesdata.Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestParse_SameNameInClassAndSubclass(t *testing.T) {
	table, err := rulesdata.Parse([]byte("classes:\n  Fighter:\n    hit_die: 10\n    subclass_level: 3\n    features:\n      - level: 1\n        name: Fighting Style\n    subclasses:\n      Champion:\n        features:\n          - level: 10\n            name: Fighting Style\n"))
	require.NoError(t, err)

	got := features.Resolve(table, "Fighter", "Champion", 10, nil)
	require.Len(t, got, 2)
	assert.NotEqual(t, got[0].ID, got[1].ID)
}

func TestParse_EmptyTable(t *testing.T) {
	table, err := rulesdata.Parse([]byte("version: empty\n"))
	require.NoError(t, err)
	assert.NotNil(t, table.Classes)
	assert.Empty(t, features.Resolve(table, "Barbarian", "", 5, nil))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rules.yaml")
	content := "version: homebrew\nclasses:\n  Gunslinger:\n    hit_die: 10\n    subclass_level: 3\n    features:\n      - level: 1\n        name: Grit\n        uses: wis\n        recharge: short_rest\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	table, err := rulesdata.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "homebrew", table.Version)

	got := features.Resolve(table, "Gunslinger", "", 1, dnd5e.AbilityScores{dnd5e.AbilityWisdom: 14})
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Uses.Max)
}

func TestLoad_Errors(t *testing.T) {
	_, err := rulesdata.Load("")
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = rulesdata.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.IsNotFound(err))
}
