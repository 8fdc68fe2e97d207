package dnd5e_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

func TestAbilityModifier(t *testing.T) {
	tests := []struct {
		score int
		want  int
	}{
		{1, -5},
		{3, -4},
		{8, -1},
		{9, -1},
		{10, 0},
		{11, 0},
		{16, 3},
		{20, 5},
		{30, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dnd5e.AbilityModifier(tt.score), "score %d", tt.score)
	}
}

func TestAbilityScores_MissingScoreIsZero(t *testing.T) {
	scores := dnd5e.AbilityScores{dnd5e.AbilityStrength: 18}
	assert.Equal(t, 4, scores.Modifier(dnd5e.AbilityStrength))
	assert.Equal(t, 0, scores.Modifier(dnd5e.AbilityWisdom))

	var empty dnd5e.AbilityScores
	assert.Equal(t, 0, empty.Modifier(dnd5e.AbilityDexterity))
}

func TestParseAbility(t *testing.T) {
	a, ok := dnd5e.ParseAbility("Dexterity")
	require.True(t, ok)
	assert.Equal(t, dnd5e.AbilityDexterity, a)

	a, ok = dnd5e.ParseAbility(" WIS ")
	require.True(t, ok)
	assert.Equal(t, dnd5e.AbilityWisdom, a)

	_, ok = dnd5e.ParseAbility("luck")
	assert.False(t, ok)
}

func TestLookupSkill(t *testing.T) {
	assert.Len(t, dnd5e.SkillAbilities, 18)

	name, ability, ok := dnd5e.LookupSkill("sleight-of-hand")
	require.True(t, ok)
	assert.Equal(t, dnd5e.SkillSleightOfHand, name)
	assert.Equal(t, dnd5e.AbilityDexterity, ability)

	_, ability, ok = dnd5e.LookupSkill("ARCANA")
	require.True(t, ok)
	assert.Equal(t, dnd5e.AbilityIntelligence, ability)

	_, _, ok = dnd5e.LookupSkill("Basket Weaving")
	assert.False(t, ok)
}

func TestProficiencyBonusForLevel(t *testing.T) {
	tests := map[int]int{
		0: 2, 1: 2, 4: 2, 5: 3, 8: 3, 9: 4, 13: 5, 17: 6, 20: 6, 25: 6,
	}
	for level, want := range tests {
		assert.Equal(t, want, dnd5e.ProficiencyBonusForLevel(level), "level %d", level)
	}
}

func TestProficiencyBonusForCR_Boundaries(t *testing.T) {
	tests := []struct {
		cr   float64
		want int
	}{
		{0, 2},
		{0.25, 2},
		{4, 2},
		{4.5, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{12, 4},
		{13, 5},
		{17, 6},
		{21, 7},
		{24, 7},
		{25, 8},
		{28, 8},
		{29, 9},
		{30, 9},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, dnd5e.ProficiencyBonusForCR(tt.cr), "cr %v", tt.cr)
	}
}

func TestParseChallengeRating(t *testing.T) {
	tests := map[string]float64{
		"5":       5,
		"1/4":     0.25,
		" 1 / 2 ": 0.5,
		"0.125":   0.125,
		"":        0,
		"abc":     0,
		"1/0":     0,
		"x/2":     0,
		"-3":      0,
		"NaN":     0,
		"Inf":     0,
	}
	for in, want := range tests {
		assert.Equal(t, want, dnd5e.ParseChallengeRating(in), "input %q", in)
	}
}

func TestFormatChallengeRating(t *testing.T) {
	assert.Equal(t, "1/8", dnd5e.FormatChallengeRating(0.125))
	assert.Equal(t, "1/4", dnd5e.FormatChallengeRating(0.25))
	assert.Equal(t, "1/2", dnd5e.FormatChallengeRating(0.5))
	assert.Equal(t, "17", dnd5e.FormatChallengeRating(17))
}

func TestUsesSpec_YAML(t *testing.T) {
	var feature dnd5e.ClassFeature
	err := yaml.Unmarshal([]byte("level: 1\nname: Bardic Inspiration\nuses: cha\nrecharge: long_rest\n"), &feature)
	require.NoError(t, err)
	require.NotNil(t, feature.Uses)
	assert.Equal(t, dnd5e.UsesAbility, feature.Uses.Kind)
	assert.Equal(t, dnd5e.AbilityCharisma, feature.Uses.Ability)
	assert.Equal(t, dnd5e.RechargeLongRest, feature.Recharge)

	err = yaml.Unmarshal([]byte("level: 1\nname: Rage\nuses: 2\n"), &feature)
	require.NoError(t, err)
	assert.Equal(t, dnd5e.UsesFixed, feature.Uses.Kind)
	assert.Equal(t, 2, feature.Uses.Value)

	out, err := yaml.Marshal(dnd5e.ClassFeature{Level: 2, Name: "Ki", Uses: &dnd5e.UsesSpec{Kind: dnd5e.UsesLevel}})
	require.NoError(t, err)
	assert.Contains(t, string(out), "uses: level")

	err = yaml.Unmarshal([]byte("level: 1\nname: Bad\nuses: [1, 2]\n"), &feature)
	assert.Error(t, err)
}

func TestUsesSpec_JSON(t *testing.T) {
	var u dnd5e.UsesSpec
	require.NoError(t, json.Unmarshal([]byte(`"prof"`), &u))
	assert.Equal(t, dnd5e.UsesProf, u.Kind)

	require.NoError(t, json.Unmarshal([]byte(`4`), &u))
	assert.Equal(t, dnd5e.UsesFixed, u.Kind)
	assert.Equal(t, 4, u.Value)

	assert.Error(t, json.Unmarshal([]byte(`"sometimes"`), &u))

	data, err := json.Marshal(dnd5e.AbilityUses(dnd5e.AbilityWisdom))
	require.NoError(t, err)
	assert.JSONEq(t, `"wis"`, string(data))

	data, err = json.Marshal(dnd5e.FixedUses(3))
	require.NoError(t, err)
	assert.JSONEq(t, `3`, string(data))
}

func TestRuleTable_ClassLookupIgnoresCase(t *testing.T) {
	table := &dnd5e.RuleTable{
		Classes: map[string]*dnd5e.ClassDefinition{
			"Barbarian": {
				HitDie: 12,
				Subclasses: map[string]*dnd5e.SubclassDefinition{
					"Path of the Berserker": {},
				},
			},
		},
	}

	key, def, ok := table.Class("barbarian")
	require.True(t, ok)
	assert.Equal(t, "Barbarian", key)
	assert.Equal(t, 12, def.HitDie)

	key, _, ok = def.Subclass("path of the berserker")
	require.True(t, ok)
	assert.Equal(t, "Path of the Berserker", key)

	_, _, ok = table.Class("Artificer")
	assert.False(t, ok)

	var nilTable *dnd5e.RuleTable
	_, _, ok = nilTable.Class("Barbarian")
	assert.False(t, ok)
}

func TestCharacter_WithNotesDoesNotMutate(t *testing.T) {
	c := &dnd5e.Character{
		ID:                 "char_1",
		SkillProficiencies: []string{dnd5e.SkillAthletics},
		AbilityScores:      dnd5e.AbilityScores{dnd5e.AbilityStrength: 16},
	}
	merged := c.WithNotes(&dnd5e.DMNotes{
		CharacterID:        "char_1",
		SkillProficiencies: []string{"athletics", dnd5e.SkillStealth},
		SaveProficiencies:  []dnd5e.Ability{dnd5e.AbilityDexterity},
	})

	assert.Equal(t, []string{dnd5e.SkillAthletics, dnd5e.SkillStealth}, merged.SkillProficiencies)
	assert.True(t, merged.HasSave(dnd5e.AbilityDexterity))
	assert.Equal(t, []string{dnd5e.SkillAthletics}, c.SkillProficiencies)
	assert.False(t, c.HasSave(dnd5e.AbilityDexterity))

	merged.AbilityScores[dnd5e.AbilityStrength] = 8
	assert.Equal(t, 16, c.AbilityScores[dnd5e.AbilityStrength])
}

func TestActor_Accessors(t *testing.T) {
	pc := dnd5e.NewCharacterActor(&dnd5e.Character{ID: "char_1", Name: "Grog"})
	assert.Equal(t, "char_1", pc.GetID())
	assert.Equal(t, "Grog", pc.GetName())

	mon := dnd5e.NewStatBlockActor(&dnd5e.StatBlock{
		ID:            "goblin",
		Name:          "Goblin",
		AbilityScores: dnd5e.AbilityScores{dnd5e.AbilityDexterity: 14},
	})
	assert.Equal(t, "goblin", mon.GetID())
	assert.Equal(t, 2, mon.Scores().Modifier(dnd5e.AbilityDexterity))

	broken := &dnd5e.Actor{Kind: dnd5e.ActorKindCharacter}
	assert.Empty(t, broken.GetID())
	assert.Nil(t, broken.Scores())
}

func TestRollResult_JSONRoundTrip(t *testing.T) {
	in := dnd5e.RollResult{
		ID:        "roll_1",
		Title:     "Stealth",
		Formula:   "2d20kl1+7",
		Total:     8,
		Rolls:     []int{20, 1},
		FinalRoll: 1,
		IsFumble:  true,
		Breakdown: []dnd5e.BreakdownEntry{{Label: "Stat Block", Value: 7}},
		Timestamp: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Meta: dnd5e.RollMeta{
			Mode:      dnd5e.RollModeD20,
			Type:      dnd5e.AdvantageDisadvantage,
			DiceCount: 2,
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out dnd5e.RollResult
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
