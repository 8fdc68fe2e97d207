package features_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-companion/internal/engine/features"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
)

type ResolverTestSuite struct {
	suite.Suite
	table *dnd5e.RuleTable
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func (s *ResolverTestSuite) SetupTest() {
	s.table = &dnd5e.RuleTable{
		Version: "test",
		Classes: map[string]*dnd5e.ClassDefinition{
			"Barbarian": {
				HitDie:        12,
				SubclassLevel: 3,
				Features: []dnd5e.ClassFeature{
					{Level: 1, Name: "Rage", Uses: dnd5e.FixedUses(2), Recharge: dnd5e.RechargeLongRest},
					{Level: 1, Name: "Unarmored Defense"},
					{Level: 2, Name: "Reckless Attack"},
					{Level: 2, Name: "Danger Sense"},
					{Level: 3, Name: "Rage Uses", Uses: dnd5e.FixedUses(3), Recharge: dnd5e.RechargeLongRest},
					{Level: 5, Name: "Extra Attack"},
					{Level: 5, Name: "Fast Movement"},
					{Level: 7, Name: "Feral Instinct"},
				},
				Subclasses: map[string]*dnd5e.SubclassDefinition{
					"Path of the Berserker": {
						Features: []dnd5e.ClassFeature{
							{Level: 3, Name: "Frenzy"},
							{Level: 6, Name: "Mindless Rage"},
						},
					},
				},
			},
			"Wizard": {
				HitDie:        6,
				SubclassLevel: 2,
				Features: []dnd5e.ClassFeature{
					{Level: 1, Name: "Arcane Recovery", Uses: dnd5e.AbilityUses(dnd5e.AbilityIntelligence)},
					{Level: 1, Name: "Spell Mastery Drill", Uses: &dnd5e.UsesSpec{Kind: dnd5e.UsesProf}},
					{Level: 1, Name: "Scholar", Uses: &dnd5e.UsesSpec{Kind: dnd5e.UsesLevel}},
					{Level: 1, Name: "Cantrip Tweak", Uses: dnd5e.FixedUses(0)},
				},
			},
		},
	}
}

func names(list []dnd5e.Feature) []string {
	out := make([]string, 0, len(list))
	for _, f := range list {
		out = append(out, f.Name)
	}
	return out
}

func ids(list []dnd5e.Feature) map[string]bool {
	out := make(map[string]bool, len(list))
	for _, f := range list {
		out[f.ID] = true
	}
	return out
}

func (s *ResolverTestSuite) TestUnknownClassIsEmpty() {
	got := features.Resolve(s.table, "Artificer", "", 10, nil)
	s.NotNil(got)
	s.Empty(got)

	s.Empty(features.Resolve(nil, "Barbarian", "", 10, nil))
}

func (s *ResolverTestSuite) TestLevelFiveBarbarianWithoutSubclass() {
	got := features.Resolve(s.table, "Barbarian", "", 5, dnd5e.AbilityScores{dnd5e.AbilityConstitution: 16})

	s.Equal([]string{
		"Rage", "Unarmored Defense", "Reckless Attack", "Danger Sense",
		"Rage Uses", "Extra Attack", "Fast Movement",
	}, names(got))

	for _, f := range got {
		s.Equal("class:Barbarian", f.Source)
	}
	s.Equal("barbarian:rage", got[0].ID)
	s.Require().NotNil(got[0].Uses)
	s.Equal(2, got[0].Uses.Max)
	s.Equal(dnd5e.RechargeLongRest, got[0].Recharge)
	s.Require().NotNil(got[4].Uses)
	s.Equal(3, got[4].Uses.Max)
	s.Equal(3, got[4].Uses.Current)
}

func (s *ResolverTestSuite) TestSubclassFeaturesFollowClassFeatures() {
	got := features.Resolve(s.table, "barbarian", "Path of the Berserker", 6, nil)

	s.Equal([]string{
		"Rage", "Unarmored Defense", "Reckless Attack", "Danger Sense",
		"Rage Uses", "Extra Attack", "Fast Movement", "Frenzy", "Mindless Rage",
	}, names(got))

	frenzy := got[7]
	s.Equal("barbarian:path-of-the-berserker:frenzy", frenzy.ID)
	s.Equal("subclass:Path of the Berserker", frenzy.Source)
}

func (s *ResolverTestSuite) TestSubclassLockedBelowSubclassLevel() {
	got := features.Resolve(s.table, "Barbarian", "Path of the Berserker", 2, nil)
	s.NotContains(names(got), "Frenzy")
	s.Len(got, 4)
}

func (s *ResolverTestSuite) TestUnknownSubclassYieldsOnlyClassFeatures() {
	got := features.Resolve(s.table, "Barbarian", "Path of the Zealot", 10, nil)
	for _, f := range got {
		s.Equal("class:Barbarian", f.Source)
	}
	s.Len(got, 8)
}

func (s *ResolverTestSuite) TestUsesFloorOfOne() {
	got := features.Resolve(s.table, "Wizard", "", 1, dnd5e.AbilityScores{dnd5e.AbilityIntelligence: 6})

	s.Require().Len(got, 4)
	for _, f := range got {
		s.Require().NotNil(f.Uses, f.Name)
		s.GreaterOrEqual(f.Uses.Max, 1, f.Name)
		s.Equal(f.Uses.Max, f.Uses.Current, f.Name)
	}
	s.Equal(1, got[0].Uses.Max, "negative int modifier floors to 1")
	s.Equal(2, got[1].Uses.Max, "prof at level 1")
	s.Equal(1, got[2].Uses.Max, "level")
	s.Equal(1, got[3].Uses.Max, "literal zero floors to 1")
}

func (s *ResolverTestSuite) TestUsesFormulas() {
	scores := dnd5e.AbilityScores{dnd5e.AbilityIntelligence: 18}
	got := features.Resolve(s.table, "Wizard", "", 9, scores)

	s.Equal(4, got[0].Uses.Max)
	s.Equal(4, got[1].Uses.Max)
	s.Equal(9, got[2].Uses.Max)
}

func (s *ResolverTestSuite) TestMonotonicInLevel() {
	for _, class := range []string{"Barbarian", "Wizard"} {
		for l1 := 1; l1 <= 20; l1++ {
			low := ids(features.Resolve(s.table, class, "Path of the Berserker", l1, nil))
			for l2 := l1; l2 <= 20; l2++ {
				high := ids(features.Resolve(s.table, class, "Path of the Berserker", l2, nil))
				for id := range low {
					s.True(high[id], "%s: %s at %d missing at %d", class, id, l1, l2)
				}
			}
		}
	}
}

func (s *ResolverTestSuite) TestDoesNotMutateTable() {
	before := len(s.table.Classes["Barbarian"].Features)
	got := features.Resolve(s.table, "Barbarian", "", 20, nil)
	got[0].Uses.Current = 0
	s.Equal(before, len(s.table.Classes["Barbarian"].Features))
	s.Equal(2, s.table.Classes["Barbarian"].Features[0].Uses.Value)
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "path-of-the-berserker", features.Slug("Path of the Berserker"))
	assert.Equal(t, "ki-empowered-strikes", features.Slug("Ki-Empowered  Strikes!"))
	assert.Equal(t, "rage", features.Slug("  Rage "))
}

func TestResolveUses(t *testing.T) {
	spec, err := dnd5e.ParseUsesSpec("wis")
	require.NoError(t, err)
	assert.Equal(t, 3, features.ResolveUses(spec, 1, dnd5e.AbilityScores{dnd5e.AbilityWisdom: 16}))
	assert.Equal(t, 1, features.ResolveUses(spec, 1, nil))
	assert.Equal(t, 6, features.ResolveUses(dnd5e.UsesSpec{Kind: dnd5e.UsesProf}, 17, nil))
}
