package rolls_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-companion/internal/clients/external"
	externalmock "github.com/KirkDiggler/rpg-companion/internal/clients/external/mock"
	rollexec "github.com/KirkDiggler/rpg-companion/internal/engine/rolls"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	rpgerrors "github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/orchestrators/rolls"
	clockmock "github.com/KirkDiggler/rpg-companion/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-companion/internal/repositories/actor"
	actormock "github.com/KirkDiggler/rpg-companion/internal/repositories/actor/mock"
	dmnotes "github.com/KirkDiggler/rpg-companion/internal/repositories/dm_notes"
	dmnotesmock "github.com/KirkDiggler/rpg-companion/internal/repositories/dm_notes/mock"
	rollhistory "github.com/KirkDiggler/rpg-companion/internal/repositories/roll_history"
	rollhistorymock "github.com/KirkDiggler/rpg-companion/internal/repositories/roll_history/mock"
	"github.com/KirkDiggler/rpg-companion/internal/services/share"
	sharemock "github.com/KirkDiggler/rpg-companion/internal/services/share/mock"
	"github.com/KirkDiggler/rpg-companion/internal/testutils"
	"github.com/KirkDiggler/rpg-companion/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockActorRepo   *actormock.MockRepository
	mockNotesRepo   *dmnotesmock.MockRepository
	mockHistoryRepo *rollhistorymock.MockRepository
	mockExtClient   *externalmock.MockClient
	mockPublisher   *sharemock.MockPublisher
	roller          *testutils.ScriptedRoller
	orchestrator    *rolls.Orchestrator
	ctx             context.Context
	now             time.Time
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockActorRepo = actormock.NewMockRepository(s.ctrl)
	s.mockNotesRepo = dmnotesmock.NewMockRepository(s.ctrl)
	s.mockHistoryRepo = rollhistorymock.NewMockRepository(s.ctrl)
	s.mockExtClient = externalmock.NewMockClient(s.ctrl)
	s.mockPublisher = sharemock.NewMockPublisher(s.ctrl)
	s.roller = testutils.NewScriptedRoller()
	s.ctx = context.Background()
	s.now = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	mockClock := clockmock.NewMockClock(s.ctrl)
	mockClock.EXPECT().Now().Return(s.now).AnyTimes()

	executor, err := rollexec.NewExecutor(&rollexec.Config{
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("roll"),
		Clock:       mockClock,
	})
	s.Require().NoError(err)

	s.orchestrator, err = rolls.New(&rolls.Config{
		ActorRepo:      s.mockActorRepo,
		NotesRepo:      s.mockNotesRepo,
		HistoryRepo:    s.mockHistoryRepo,
		Rules:          testutils.NewRuleTable(),
		Executor:       executor,
		IDGenerator:    idgen.NewSequential("actor"),
		ExternalClient: s.mockExtClient,
		Publisher:      s.mockPublisher,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectActor(a *dnd5e.Actor) {
	mocks.ExpectActorLookup(s.ctx, s.mockActorRepo, a)
}

func (s *OrchestratorTestSuite) expectNoNotes(id string) {
	mocks.ExpectDMNotes(s.ctx, s.mockNotesRepo, id, nil)
}

func (s *OrchestratorTestSuite) expectRecorded(ownerID, msgType, target string) *rollhistory.AppendInput {
	var recorded rollhistory.AppendInput
	mocks.ExpectHistoryAppend(s.ctx, s.mockHistoryRepo, &recorded)
	s.mockPublisher.EXPECT().
		Publish(s.ctx, msgType, gomock.Any(), target).
		Return(nil)
	s.T().Cleanup(func() {
		s.Equal(ownerID, recorded.OwnerID)
	})
	return &recorded
}

func (s *OrchestratorTestSuite) TestNew_RequiresDependencies() {
	_, err := rolls.New(&rolls.Config{})
	s.Require().Error(err)
	s.True(rpgerrors.IsInvalidArgument(err))
	s.Contains(err.Error(), "invalid config")

	_, err = rolls.New(nil)
	s.True(rpgerrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetFeatures_BarbarianLevelFive() {
	s.expectActor(testutils.NewBarbarian("char_1", 5))

	output, err := s.orchestrator.GetFeatures(s.ctx, &rolls.GetFeaturesInput{CharacterID: "char_1"})

	s.Require().NoError(err)
	s.Equal(5, output.Level)
	s.Require().Len(output.Features, 7)
	s.Equal("Rage", output.Features[0].Name)
	s.Equal(2, output.Features[0].Uses.Max)
	s.Equal("Fast Movement", output.Features[6].Name)
}

func (s *OrchestratorTestSuite) TestGetFeatures_LevelOverride() {
	s.expectActor(testutils.NewBarbarian("char_1", 5))

	output, err := s.orchestrator.GetFeatures(s.ctx, &rolls.GetFeaturesInput{CharacterID: "char_1", Level: 2})

	s.Require().NoError(err)
	s.Equal(2, output.Level)
	s.Len(output.Features, 4)
}

func (s *OrchestratorTestSuite) TestGetFeatures_NotACharacter() {
	s.expectActor(testutils.NewGoblin("goblin_1"))

	_, err := s.orchestrator.GetFeatures(s.ctx, &rolls.GetFeaturesInput{CharacterID: "goblin_1"})

	s.True(rpgerrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetFeatures_NotFound() {
	s.mockActorRepo.EXPECT().
		Get(s.ctx, actor.GetInput{ID: "missing"}).
		Return(nil, rpgerrors.NotFound("actor not found"))

	_, err := s.orchestrator.GetFeatures(s.ctx, &rolls.GetFeaturesInput{CharacterID: "missing"})

	s.True(rpgerrors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestGetFeatures_Validation() {
	_, err := s.orchestrator.GetFeatures(s.ctx, &rolls.GetFeaturesInput{})
	s.True(rpgerrors.IsInvalidArgument(err))

	_, err = s.orchestrator.GetFeatures(s.ctx, &rolls.GetFeaturesInput{CharacterID: "char_1", Level: 21})
	s.True(rpgerrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRollCheck_CharacterSkill() {
	s.expectActor(testutils.NewBarbarian("char_1", 5))
	s.expectNoNotes("char_1")
	recorded := s.expectRecorded("char_1", share.MessageRoll, "dm")
	s.roller.SetRolls(12)

	output, err := s.orchestrator.RollCheck(s.ctx, &rolls.RollCheckInput{
		ActorID:     "char_1",
		Category:    dnd5e.RollCategoryCheck,
		Skill:       "athletics",
		ShareTarget: "dm",
	})

	s.Require().NoError(err)
	s.Equal("Athletics Check", output.Roll.Title)
	s.Equal(3, output.Modifiers.AbilityMod)
	s.Equal(3, output.Modifiers.ProfBonus)
	s.Equal(18, output.Roll.Total)
	s.Equal("1d20+6", output.Roll.Formula)
	s.Equal(s.now, output.Roll.Timestamp)
	s.Same(output.Roll, recorded.Roll)
}

func (s *OrchestratorTestSuite) TestRollCheck_DMNotesAddProficiency() {
	barbarian := testutils.NewBarbarian("char_1", 5)
	s.expectActor(barbarian)
	mocks.ExpectDMNotes(s.ctx, s.mockNotesRepo, "char_1", &dnd5e.DMNotes{
		CharacterID:        "char_1",
		SkillProficiencies: []string{dnd5e.SkillStealth},
	})
	s.expectRecorded("char_1", share.MessageRoll, "")
	s.roller.SetRolls(10)

	output, err := s.orchestrator.RollCheck(s.ctx, &rolls.RollCheckInput{
		ActorID:  "char_1",
		Category: dnd5e.RollCategoryCheck,
		Skill:    "Stealth",
	})

	s.Require().NoError(err)
	s.Equal(15, output.Roll.Total)
	s.NotContains(barbarian.Character.SkillProficiencies, dnd5e.SkillStealth)
}

func (s *OrchestratorTestSuite) TestRollCheck_StatBlockWithAdvantage() {
	s.expectActor(testutils.NewGoblin("goblin_1"))
	s.expectRecorded("goblin_1", share.MessageRoll, "")
	s.roller.SetRolls(5, 15)

	output, err := s.orchestrator.RollCheck(s.ctx, &rolls.RollCheckInput{
		ActorID:   "goblin_1",
		Category:  dnd5e.RollCategoryCheck,
		Skill:     "stealth",
		Advantage: dnd5e.AdvantageAdvantage,
	})

	s.Require().NoError(err)
	s.Require().NotNil(output.Modifiers.SpecificBonus)
	s.Equal(6, *output.Modifiers.SpecificBonus)
	s.Equal([]int{5, 15}, output.Roll.Rolls)
	s.Equal(15, output.Roll.FinalRoll)
	s.Equal(21, output.Roll.Total)
	s.Equal("2d20kh1+6", output.Roll.Formula)
}

func (s *OrchestratorTestSuite) TestRollCheck_StatBlockAttack() {
	s.expectActor(testutils.NewGoblin("goblin_1"))
	s.expectRecorded("goblin_1", share.MessageRoll, "")
	s.roller.SetRolls(20)

	output, err := s.orchestrator.RollCheck(s.ctx, &rolls.RollCheckInput{
		ActorID:        "goblin_1",
		Category:       dnd5e.RollCategoryAttack,
		AttackName:     "Scimitar",
		CustomModifier: 1,
	})

	s.Require().NoError(err)
	s.Equal("Scimitar Attack", output.Roll.Title)
	s.Equal(25, output.Roll.Total)
	s.True(output.Roll.IsCrit)
}

func (s *OrchestratorTestSuite) TestRollCheck_Validation() {
	testCases := []struct {
		name  string
		input *rolls.RollCheckInput
	}{
		{name: "nil input", input: nil},
		{name: "missing actor", input: &rolls.RollCheckInput{Category: dnd5e.RollCategoryAttack}},
		{name: "unknown category", input: &rolls.RollCheckInput{ActorID: "a", Category: "initiative"}},
		{name: "save without ability", input: &rolls.RollCheckInput{ActorID: "a", Category: dnd5e.RollCategorySave}},
		{name: "check without skill or ability", input: &rolls.RollCheckInput{ActorID: "a", Category: dnd5e.RollCategoryCheck}},
		{name: "unknown skill", input: &rolls.RollCheckInput{ActorID: "a", Category: dnd5e.RollCategoryCheck, Skill: "Juggling"}},
		{name: "unknown ability", input: &rolls.RollCheckInput{ActorID: "a", Category: dnd5e.RollCategorySave, Ability: "luck"}},
		{name: "unknown advantage", input: &rolls.RollCheckInput{ActorID: "a", Category: dnd5e.RollCategoryAttack, Advantage: "double"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.RollCheck(s.ctx, tc.input)
			s.True(rpgerrors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestRollCheck_ListsAllowedValues() {
	_, err := s.orchestrator.RollCheck(s.ctx, &rolls.RollCheckInput{
		ActorID:   "a",
		Category:  "initiative",
		Advantage: "double",
	})

	s.Require().Error(err)
	s.Contains(err.Error(), "category: must be one of: check, save, attack")
	s.Contains(err.Error(), "advantage: must be one of: normal, advantage, disadvantage")
}

func (s *OrchestratorTestSuite) TestRollCheck_HistoryFailure() {
	s.expectActor(testutils.NewGoblin("goblin_1"))
	s.mockHistoryRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		Return(nil, errors.New("redis down"))
	s.roller.SetRolls(8)

	_, err := s.orchestrator.RollCheck(s.ctx, &rolls.RollCheckInput{
		ActorID:  "goblin_1",
		Category: dnd5e.RollCategorySave,
		Ability:  dnd5e.AbilityDexterity,
	})

	s.Require().Error(err)
	s.True(rpgerrors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestRollCheck_ShareFailureIsIgnored() {
	s.expectActor(testutils.NewGoblin("goblin_1"))
	s.mockHistoryRepo.EXPECT().
		Append(s.ctx, gomock.Any()).
		Return(&rollhistory.AppendOutput{Length: 1}, nil)
	s.mockPublisher.EXPECT().
		Publish(s.ctx, share.MessageRoll, gomock.Any(), "").
		Return(errors.New("no peers"))
	s.roller.SetRolls(8)

	output, err := s.orchestrator.RollCheck(s.ctx, &rolls.RollCheckInput{
		ActorID:  "goblin_1",
		Category: dnd5e.RollCategorySave,
		Ability:  dnd5e.AbilityDexterity,
	})

	s.Require().NoError(err)
	s.Equal("Dexterity Save", output.Roll.Title)
}

func (s *OrchestratorTestSuite) TestRollDamage() {
	s.expectRecorded("char_1", share.MessageDamage, "")
	s.roller.SetRolls(4, 5)

	output, err := s.orchestrator.RollDamage(s.ctx, &rolls.RollDamageInput{
		OwnerID:        "char_1",
		DiceCount:      2,
		DieType:        6,
		CustomModifier: 3,
	})

	s.Require().NoError(err)
	s.Equal("Damage", output.Roll.Title)
	s.Equal("2d6+3", output.Roll.Formula)
	s.Equal(12, output.Roll.Total)
	s.Equal(dnd5e.RollModeDamage, output.Roll.Meta.Mode)
}

func (s *OrchestratorTestSuite) TestRollDamage_Validation() {
	_, err := s.orchestrator.RollDamage(s.ctx, &rolls.RollDamageInput{DieType: 6})
	s.True(rpgerrors.IsInvalidArgument(err))

	_, err = s.orchestrator.RollDamage(s.ctx, &rolls.RollDamageInput{OwnerID: "char_1"})
	s.True(rpgerrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetHistory() {
	stored := []*dnd5e.RollResult{{ID: "roll_2"}, {ID: "roll_1"}}
	s.mockHistoryRepo.EXPECT().
		List(s.ctx, rollhistory.ListInput{OwnerID: "char_1", Limit: 10}).
		Return(&rollhistory.ListOutput{Rolls: stored}, nil)

	output, err := s.orchestrator.GetHistory(s.ctx, &rolls.GetHistoryInput{OwnerID: "char_1", Limit: 10})

	s.Require().NoError(err)
	s.Equal(stored, output.Rolls)

	_, err = s.orchestrator.GetHistory(s.ctx, &rolls.GetHistoryInput{})
	s.True(rpgerrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestClearHistory() {
	s.mockHistoryRepo.EXPECT().
		Clear(s.ctx, rollhistory.ClearInput{OwnerID: "char_1"}).
		Return(&rollhistory.ClearOutput{RollsDeleted: 7}, nil)

	output, err := s.orchestrator.ClearHistory(s.ctx, &rolls.ClearHistoryInput{OwnerID: "char_1"})

	s.Require().NoError(err)
	s.Equal(7, output.RollsDeleted)
}

func (s *OrchestratorTestSuite) TestImportMonster() {
	block := testutils.NewGoblin("monster_goblin").StatBlock
	mocks.ExpectMonsterFetch(s.ctx, s.mockExtClient, "goblin", block)
	mocks.ExpectActorPutEcho(s.ctx, s.mockActorRepo, nil)

	output, err := s.orchestrator.ImportMonster(s.ctx, &rolls.ImportMonsterInput{Key: "goblin", ID: "goblin_boss"})

	s.Require().NoError(err)
	s.Equal(dnd5e.ActorKindStatBlock, output.Actor.Kind)
	s.Equal("goblin_boss", output.Actor.GetID())
}

func (s *OrchestratorTestSuite) TestImportMonster_ClientError() {
	s.mockExtClient.EXPECT().
		GetMonsterStatBlock(s.ctx, "tarrasque").
		Return(nil, rpgerrors.Unavailable("api down"))

	_, err := s.orchestrator.ImportMonster(s.ctx, &rolls.ImportMonsterInput{Key: "tarrasque"})

	s.Equal(rpgerrors.CodeUnavailable, rpgerrors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestImportMonster_NotConfigured() {
	executor, err := rollexec.NewExecutor(&rollexec.Config{
		Roller:      s.roller,
		IDGenerator: idgen.NewSequential("roll"),
		Clock:       clockmock.NewMockClock(s.ctrl),
	})
	s.Require().NoError(err)

	orch, err := rolls.New(&rolls.Config{
		ActorRepo:   s.mockActorRepo,
		NotesRepo:   s.mockNotesRepo,
		HistoryRepo: s.mockHistoryRepo,
		Rules:       testutils.NewRuleTable(),
		Executor:    executor,
		IDGenerator: idgen.NewSequential("actor"),
	})
	s.Require().NoError(err)

	_, err = orch.ImportMonster(s.ctx, &rolls.ImportMonsterInput{Key: "goblin"})
	s.True(rpgerrors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestPutActor_AssignsID() {
	input := testutils.NewBarbarian("", 3)
	var stored *dnd5e.Actor
	mocks.ExpectActorPutEcho(s.ctx, s.mockActorRepo, &stored)

	output, err := s.orchestrator.PutActor(s.ctx, &rolls.PutActorInput{Actor: input})

	s.Require().NoError(err)
	s.Equal("actor_1", output.Actor.GetID())
	s.Same(stored, output.Actor)
	s.Empty(input.GetID())
}

func (s *OrchestratorTestSuite) TestPutActor_Validation() {
	testCases := []struct {
		name  string
		actor *dnd5e.Actor
	}{
		{name: "nil actor", actor: nil},
		{name: "unknown kind", actor: &dnd5e.Actor{Kind: "vehicle"}},
		{name: "missing character", actor: &dnd5e.Actor{Kind: dnd5e.ActorKindCharacter}},
		{name: "level out of range", actor: dnd5e.NewCharacterActor(&dnd5e.Character{ID: "c", Name: "Zed", Level: 0})},
		{name: "unnamed stat block", actor: dnd5e.NewStatBlockActor(&dnd5e.StatBlock{ID: "s", Kind: dnd5e.StatBlockKindNPC})},
		{name: "bad stat block kind", actor: dnd5e.NewStatBlockActor(&dnd5e.StatBlock{ID: "s", Name: "Bob", Kind: "dragon"})},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.orchestrator.PutActor(s.ctx, &rolls.PutActorInput{Actor: tc.actor})
			s.True(rpgerrors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *OrchestratorTestSuite) TestGetActor_IncludesNotes() {
	s.expectActor(testutils.NewBarbarian("char_1", 5))
	notes := &dnd5e.DMNotes{CharacterID: "char_1", Notes: "cursed sword"}
	mocks.ExpectDMNotes(s.ctx, s.mockNotesRepo, "char_1", notes)

	output, err := s.orchestrator.GetActor(s.ctx, &rolls.GetActorInput{ID: "char_1"})

	s.Require().NoError(err)
	s.Equal(notes, output.Notes)
}

func (s *OrchestratorTestSuite) TestGetActor_StatBlockSkipsNotes() {
	s.expectActor(testutils.NewGoblin("goblin_1"))

	output, err := s.orchestrator.GetActor(s.ctx, &rolls.GetActorInput{ID: "goblin_1"})

	s.Require().NoError(err)
	s.Nil(output.Notes)
}

func (s *OrchestratorTestSuite) TestListActors() {
	goblin := testutils.NewGoblin("goblin_1")
	s.mockActorRepo.EXPECT().
		List(s.ctx, actor.ListInput{Kind: dnd5e.ActorKindStatBlock}).
		Return(&actor.ListOutput{Actors: []*dnd5e.Actor{goblin}}, nil)

	output, err := s.orchestrator.ListActors(s.ctx, &rolls.ListActorsInput{Kind: dnd5e.ActorKindStatBlock})

	s.Require().NoError(err)
	s.Equal([]*dnd5e.Actor{goblin}, output.Actors)

	_, err = s.orchestrator.ListActors(s.ctx, &rolls.ListActorsInput{Kind: "vehicle"})
	s.True(rpgerrors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPutDMNotes() {
	notes := &dnd5e.DMNotes{
		CharacterID:        "char_1",
		SkillProficiencies: []string{dnd5e.SkillStealth},
		SaveProficiencies:  []dnd5e.Ability{dnd5e.AbilityDexterity},
	}
	s.expectActor(testutils.NewBarbarian("char_1", 5))
	s.mockNotesRepo.EXPECT().
		Put(s.ctx, dmnotes.PutInput{Notes: notes}).
		Return(&dmnotes.PutOutput{Notes: notes}, nil)

	output, err := s.orchestrator.PutDMNotes(s.ctx, &rolls.PutDMNotesInput{Notes: notes})

	s.Require().NoError(err)
	s.Equal(notes, output.Notes)
}

func (s *OrchestratorTestSuite) TestPutDMNotes_Validation() {
	_, err := s.orchestrator.PutDMNotes(s.ctx, &rolls.PutDMNotesInput{
		Notes: &dnd5e.DMNotes{CharacterID: "char_1", SkillProficiencies: []string{"Juggling"}},
	})
	s.True(rpgerrors.IsInvalidArgument(err))

	s.expectActor(testutils.NewGoblin("goblin_1"))
	_, err = s.orchestrator.PutDMNotes(s.ctx, &rolls.PutDMNotesInput{
		Notes: &dnd5e.DMNotes{CharacterID: "goblin_1"},
	})
	s.True(rpgerrors.IsInvalidArgument(err))
}

var _ external.Client = (*externalmock.MockClient)(nil)
