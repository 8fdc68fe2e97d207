package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	"github.com/KirkDiggler/rpg-companion/internal/engine/modifiers"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/handlers/rules/v1alpha1"
	"github.com/KirkDiggler/rpg-companion/internal/orchestrators/rolls"
	rollsmock "github.com/KirkDiggler/rpg-companion/internal/orchestrators/rolls/mock"

	rulesv1alpha1 "github.com/KirkDiggler/rpg-companion/gen/go/rules/v1alpha1"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *rollsmock.MockService
	handler     *v1alpha1.Handler
	ctx         context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = rollsmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: s.mockService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) assertCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok, "expected a grpc status error, got %v", err)
	s.Equal(code, st.Code())
}

func (s *HandlerTestSuite) sampleRoll() *dnd5e.RollResult {
	return &dnd5e.RollResult{
		ID:        "roll_1",
		Title:     "Athletics Check",
		Formula:   "1d20+6",
		Total:     18,
		Rolls:     []int{12},
		FinalRoll: 12,
		Breakdown: []dnd5e.BreakdownEntry{{Label: "d20", Value: 12}, {Label: "STR", Value: 3}, {Label: "Prof", Value: 3}},
		Timestamp: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Meta:      dnd5e.RollMeta{Mode: dnd5e.RollModeD20, Type: dnd5e.AdvantageNormal, DiceCount: 1},
	}
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))

	_, err = v1alpha1.NewHandler(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestGetFeatures() {
	features := []dnd5e.Feature{
		{ID: "barbarian_rage", Name: "Rage", Source: "Barbarian", Level: 1,
			Recharge: dnd5e.RechargeLongRest, Uses: &dnd5e.FeatureUses{Max: 3, Current: 3}},
		{ID: "barbarian_unarmored_defense", Name: "Unarmored Defense", Source: "Barbarian", Level: 1},
	}
	character := &dnd5e.Character{ID: "char_1", Name: "Grog", Level: 5, ClassName: "Barbarian"}
	s.mockService.EXPECT().
		GetFeatures(s.ctx, &rolls.GetFeaturesInput{CharacterID: "char_1", Level: 5}).
		Return(&rolls.GetFeaturesOutput{Character: character, Level: 5, Features: features}, nil)

	resp, err := s.handler.GetFeatures(s.ctx, &rulesv1alpha1.GetFeaturesRequest{CharacterId: "char_1", Level: 5})
	s.Require().NoError(err)
	s.Equal(int32(5), resp.Level)
	s.Equal("Barbarian", resp.Character.GetClassName())
	s.Require().Len(resp.Features, 2)

	rage := resp.Features[0]
	s.Equal("barbarian_rage", rage.Id)
	s.Equal(rulesv1alpha1.Recharge_RECHARGE_LONG_REST, rage.Recharge)
	s.Equal(int32(3), rage.GetUses().GetMax())
	s.Nil(resp.Features[1].Uses)
	s.Equal(rulesv1alpha1.Recharge_RECHARGE_UNSPECIFIED, resp.Features[1].Recharge)
}

func (s *HandlerTestSuite) TestGetFeatures_MissingCharacter() {
	_, err := s.handler.GetFeatures(s.ctx, &rulesv1alpha1.GetFeaturesRequest{})
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetFeatures_NotFound() {
	s.mockService.EXPECT().GetFeatures(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("character char_9 not found"))

	_, err := s.handler.GetFeatures(s.ctx, &rulesv1alpha1.GetFeaturesRequest{CharacterId: "char_9"})
	s.assertCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestRollCheck_ConvertsRequest() {
	roll := s.sampleRoll()
	mods := modifiers.Modifiers{AbilityMod: 3, ProfBonus: 3}
	s.mockService.EXPECT().
		RollCheck(s.ctx, &rolls.RollCheckInput{
			ActorID:        "char_1",
			Category:       dnd5e.RollCategoryCheck,
			Ability:        dnd5e.AbilityStrength,
			Skill:          "Athletics",
			CustomModifier: 1,
			Advantage:      dnd5e.AdvantageAdvantage,
			ShareTarget:    "table",
		}).
		Return(&rolls.RollCheckOutput{Roll: roll, Modifiers: mods}, nil)

	resp, err := s.handler.RollCheck(s.ctx, &rulesv1alpha1.RollCheckRequest{
		ActorId:        "char_1",
		Category:       rulesv1alpha1.RollCategory_ROLL_CATEGORY_CHECK,
		Ability:        "Strength",
		Skill:          "Athletics",
		CustomModifier: 1,
		Advantage:      rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_ADVANTAGE,
		ShareTarget:    "table",
	})
	s.Require().NoError(err)

	s.Equal("roll_1", resp.Roll.Id)
	s.Equal(int32(18), resp.Roll.Total)
	s.Equal([]int32{12}, resp.Roll.Rolls)
	s.Equal(roll.Timestamp.UnixMilli(), resp.Roll.Timestamp)
	s.Equal(rulesv1alpha1.RollMode_ROLL_MODE_D20, resp.Roll.Mode)
	s.Equal(rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_NORMAL, resp.Roll.Advantage)
	s.Require().Len(resp.Roll.Breakdown, 3)
	s.Equal("STR", resp.Roll.Breakdown[1].Label)

	s.Equal(int32(3), resp.Modifiers.AbilityMod)
	s.Equal(int32(3), resp.Modifiers.ProfBonus)
	s.Nil(resp.Modifiers.SpecificBonus)
	s.Equal(int32(6), resp.Modifiers.Total)
}

func (s *HandlerTestSuite) TestRollCheck_UnsetAdvantageIsNormal() {
	s.mockService.EXPECT().
		RollCheck(s.ctx, &rolls.RollCheckInput{
			ActorID:   "monster_goblin",
			Category:  dnd5e.RollCategorySave,
			Ability:   dnd5e.AbilityDexterity,
			Advantage: dnd5e.AdvantageNormal,
		}).
		Return(&rolls.RollCheckOutput{Roll: s.sampleRoll(), Modifiers: modifiers.Modifiers{SpecificBonus: intPtr(4)}}, nil)

	resp, err := s.handler.RollCheck(s.ctx, &rulesv1alpha1.RollCheckRequest{
		ActorId:  "monster_goblin",
		Category: rulesv1alpha1.RollCategory_ROLL_CATEGORY_SAVE,
		Ability:  "dex",
	})
	s.Require().NoError(err)
	s.Require().NotNil(resp.Modifiers.SpecificBonus)
	s.Equal(int32(4), resp.Modifiers.GetSpecificBonus())
	s.Equal(int32(4), resp.Modifiers.Total)
}

func (s *HandlerTestSuite) TestRollCheck_Validation() {
	testCases := []struct {
		name string
		req  *rulesv1alpha1.RollCheckRequest
	}{
		{
			name: "missing actor",
			req:  &rulesv1alpha1.RollCheckRequest{Category: rulesv1alpha1.RollCategory_ROLL_CATEGORY_CHECK},
		},
		{
			name: "missing category",
			req:  &rulesv1alpha1.RollCheckRequest{ActorId: "char_1"},
		},
		{
			name: "unknown category value",
			req:  &rulesv1alpha1.RollCheckRequest{ActorId: "char_1", Category: rulesv1alpha1.RollCategory(42)},
		},
		{
			name: "unknown advantage value",
			req: &rulesv1alpha1.RollCheckRequest{
				ActorId:   "char_1",
				Category:  rulesv1alpha1.RollCategory_ROLL_CATEGORY_CHECK,
				Advantage: rulesv1alpha1.AdvantageState(9),
			},
		},
		{
			name: "unknown ability",
			req: &rulesv1alpha1.RollCheckRequest{
				ActorId:  "char_1",
				Category: rulesv1alpha1.RollCategory_ROLL_CATEGORY_SAVE,
				Ability:  "luck",
			},
		},
		{
			name: "unknown attack ability",
			req: &rulesv1alpha1.RollCheckRequest{
				ActorId:       "char_1",
				Category:      rulesv1alpha1.RollCategory_ROLL_CATEGORY_ATTACK,
				AttackAbility: "xyz",
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.RollCheck(s.ctx, tc.req)
			s.assertCode(err, codes.InvalidArgument)
		})
	}
}

func (s *HandlerTestSuite) TestRollCheck_ServiceErrorIsConverted() {
	s.mockService.EXPECT().RollCheck(s.ctx, gomock.Any()).
		Return(nil, errors.InvalidArgument("skill is required for checks"))

	_, err := s.handler.RollCheck(s.ctx, &rulesv1alpha1.RollCheckRequest{
		ActorId:  "char_1",
		Category: rulesv1alpha1.RollCategory_ROLL_CATEGORY_CHECK,
	})
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestRollDamage() {
	roll := &dnd5e.RollResult{
		ID: "roll_2", Title: "Damage", Formula: "2d6+3", Total: 10, Rolls: []int{3, 4},
		Meta: dnd5e.RollMeta{Mode: dnd5e.RollModeDamage, DiceCount: 2},
	}
	s.mockService.EXPECT().
		RollDamage(s.ctx, &rolls.RollDamageInput{OwnerID: "char_1", DiceCount: 2, DieType: 6, CustomModifier: 3}).
		Return(&rolls.RollDamageOutput{Roll: roll}, nil)

	resp, err := s.handler.RollDamage(s.ctx, &rulesv1alpha1.RollDamageRequest{
		OwnerId: "char_1", DiceCount: 2, DieType: 6, CustomModifier: 3,
	})
	s.Require().NoError(err)
	s.Equal("2d6+3", resp.Roll.Formula)
	s.Equal([]int32{3, 4}, resp.Roll.Rolls)
	s.Equal(rulesv1alpha1.RollMode_ROLL_MODE_DAMAGE, resp.Roll.Mode)
	s.Equal(int32(2), resp.Roll.DiceCount)

	_, err = s.handler.RollDamage(s.ctx, &rulesv1alpha1.RollDamageRequest{DiceCount: 1, DieType: 6})
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestHistory() {
	rollsOut := []*dnd5e.RollResult{s.sampleRoll()}
	s.mockService.EXPECT().
		GetHistory(s.ctx, &rolls.GetHistoryInput{OwnerID: "char_1", Limit: 10}).
		Return(&rolls.GetHistoryOutput{Rolls: rollsOut}, nil)
	s.mockService.EXPECT().
		ClearHistory(s.ctx, &rolls.ClearHistoryInput{OwnerID: "char_1"}).
		Return(&rolls.ClearHistoryOutput{RollsDeleted: 1}, nil)

	got, err := s.handler.GetHistory(s.ctx, &rulesv1alpha1.GetHistoryRequest{OwnerId: "char_1", Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(got.Rolls, 1)
	s.Equal("Athletics Check", got.Rolls[0].Title)

	cleared, err := s.handler.ClearHistory(s.ctx, &rulesv1alpha1.ClearHistoryRequest{OwnerId: "char_1"})
	s.Require().NoError(err)
	s.Equal(int32(1), cleared.RollsDeleted)

	_, err = s.handler.GetHistory(s.ctx, &rulesv1alpha1.GetHistoryRequest{OwnerId: "char_1", Limit: -1})
	s.assertCode(err, codes.InvalidArgument)
	_, err = s.handler.ClearHistory(s.ctx, &rulesv1alpha1.ClearHistoryRequest{})
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestImportMonster() {
	actor := dnd5e.NewStatBlockActor(&dnd5e.StatBlock{
		ID:              "monster_goblin",
		Name:            "Goblin",
		Kind:            dnd5e.StatBlockKindMonster,
		ChallengeRating: "1/4",
		AbilityScores:   dnd5e.AbilityScores{dnd5e.AbilityDexterity: 14, dnd5e.AbilityStrength: 8},
		Skills:          []dnd5e.Trait{{Name: "Stealth +6"}},
	})
	s.mockService.EXPECT().
		ImportMonster(s.ctx, &rolls.ImportMonsterInput{Key: "goblin"}).
		Return(&rolls.ImportMonsterOutput{Actor: actor}, nil)

	resp, err := s.handler.ImportMonster(s.ctx, &rulesv1alpha1.ImportMonsterRequest{Key: "goblin"})
	s.Require().NoError(err)
	sb := resp.Actor.GetStatBlock()
	s.Require().NotNil(sb)
	s.Equal("monster_goblin", sb.Id)
	s.Equal(rulesv1alpha1.StatBlockKind_STAT_BLOCK_KIND_MONSTER, sb.Kind)
	s.Equal([]*rulesv1alpha1.AbilityScore{{Ability: "str", Score: 8}, {Ability: "dex", Score: 14}}, sb.AbilityScores)
	s.Equal("Stealth +6", sb.Skills[0].Name)

	s.mockService.EXPECT().ImportMonster(s.ctx, gomock.Any()).
		Return(nil, errors.FailedPrecondition("monster import is not configured"))
	_, err = s.handler.ImportMonster(s.ctx, &rulesv1alpha1.ImportMonsterRequest{Key: "orc"})
	s.assertCode(err, codes.FailedPrecondition)

	_, err = s.handler.ImportMonster(s.ctx, &rulesv1alpha1.ImportMonsterRequest{})
	s.assertCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestActors() {
	character := dnd5e.NewCharacterActor(&dnd5e.Character{
		ID:                 "char_1",
		Name:               "Grog",
		Level:              5,
		AbilityScores:      dnd5e.AbilityScores{dnd5e.AbilityStrength: 18},
		SkillProficiencies: []string{dnd5e.SkillAthletics},
		SaveProficiencies:  []dnd5e.Ability{dnd5e.AbilityStrength, dnd5e.AbilityConstitution},
	})
	notes := &dnd5e.DMNotes{
		CharacterID:        "char_1",
		SkillProficiencies: []string{dnd5e.SkillStealth},
		SaveProficiencies:  []dnd5e.Ability{dnd5e.AbilityDexterity},
	}

	s.mockService.EXPECT().
		PutActor(s.ctx, &rolls.PutActorInput{Actor: character}).
		Return(&rolls.PutActorOutput{Actor: character}, nil)
	s.mockService.EXPECT().
		GetActor(s.ctx, &rolls.GetActorInput{ID: "char_1"}).
		Return(&rolls.GetActorOutput{Actor: character, Notes: notes}, nil)
	s.mockService.EXPECT().
		ListActors(s.ctx, &rolls.ListActorsInput{Kind: dnd5e.ActorKindCharacter}).
		Return(&rolls.ListActorsOutput{Actors: []*dnd5e.Actor{character}}, nil)
	s.mockService.EXPECT().
		ListActors(s.ctx, &rolls.ListActorsInput{}).
		Return(&rolls.ListActorsOutput{Actors: []*dnd5e.Actor{character}}, nil)
	s.mockService.EXPECT().
		PutDMNotes(s.ctx, &rolls.PutDMNotesInput{Notes: notes}).
		Return(&rolls.PutDMNotesOutput{Notes: notes}, nil)

	put, err := s.handler.PutActor(s.ctx, &rulesv1alpha1.PutActorRequest{
		Actor: &rulesv1alpha1.Actor{Variant: &rulesv1alpha1.Actor_Character{Character: &rulesv1alpha1.Character{
			Id:                 "char_1",
			Name:               "Grog",
			Level:              5,
			AbilityScores:      []*rulesv1alpha1.AbilityScore{{Ability: "Strength", Score: 18}},
			SkillProficiencies: []string{dnd5e.SkillAthletics},
			SaveProficiencies:  []string{"str", "CON"},
		}}},
	})
	s.Require().NoError(err)
	s.Equal("Grog", put.Actor.GetCharacter().GetName())
	s.Equal([]string{"str", "con"}, put.Actor.GetCharacter().GetSaveProficiencies())

	got, err := s.handler.GetActor(s.ctx, &rulesv1alpha1.GetActorRequest{Id: "char_1"})
	s.Require().NoError(err)
	s.Equal("char_1", got.Notes.CharacterId)
	s.Equal([]string{"dex"}, got.Notes.SaveProficiencies)

	list, err := s.handler.ListActors(s.ctx, &rulesv1alpha1.ListActorsRequest{Kind: rulesv1alpha1.ActorKind_ACTOR_KIND_CHARACTER})
	s.Require().NoError(err)
	s.Len(list.Actors, 1)

	all, err := s.handler.ListActors(s.ctx, &rulesv1alpha1.ListActorsRequest{})
	s.Require().NoError(err)
	s.Len(all.Actors, 1)

	saved, err := s.handler.PutDMNotes(s.ctx, &rulesv1alpha1.PutDMNotesRequest{Notes: &rulesv1alpha1.DMNotes{
		CharacterId:        "char_1",
		SkillProficiencies: []string{dnd5e.SkillStealth},
		SaveProficiencies:  []string{"Dexterity"},
	}})
	s.Require().NoError(err)
	s.Equal([]string{dnd5e.SkillStealth}, saved.Notes.SkillProficiencies)
}

func (s *HandlerTestSuite) TestActors_Validation() {
	testCases := []struct {
		name string
		call func() error
	}{
		{name: "put without actor", call: func() error {
			_, err := s.handler.PutActor(s.ctx, &rulesv1alpha1.PutActorRequest{})
			return err
		}},
		{name: "put actor without variant", call: func() error {
			_, err := s.handler.PutActor(s.ctx, &rulesv1alpha1.PutActorRequest{Actor: &rulesv1alpha1.Actor{}})
			return err
		}},
		{name: "put actor with unknown ability", call: func() error {
			_, err := s.handler.PutActor(s.ctx, &rulesv1alpha1.PutActorRequest{
				Actor: &rulesv1alpha1.Actor{Variant: &rulesv1alpha1.Actor_StatBlock{StatBlock: &rulesv1alpha1.StatBlock{
					Id:            "npc_1",
					AbilityScores: []*rulesv1alpha1.AbilityScore{{Ability: "luck", Score: 10}},
				}}},
			})
			return err
		}},
		{name: "get without id", call: func() error {
			_, err := s.handler.GetActor(s.ctx, &rulesv1alpha1.GetActorRequest{})
			return err
		}},
		{name: "list with unknown kind", call: func() error {
			_, err := s.handler.ListActors(s.ctx, &rulesv1alpha1.ListActorsRequest{Kind: rulesv1alpha1.ActorKind(7)})
			return err
		}},
		{name: "notes missing", call: func() error {
			_, err := s.handler.PutDMNotes(s.ctx, &rulesv1alpha1.PutDMNotesRequest{})
			return err
		}},
		{name: "notes without character", call: func() error {
			_, err := s.handler.PutDMNotes(s.ctx, &rulesv1alpha1.PutDMNotesRequest{Notes: &rulesv1alpha1.DMNotes{}})
			return err
		}},
		{name: "notes with unknown save", call: func() error {
			_, err := s.handler.PutDMNotes(s.ctx, &rulesv1alpha1.PutDMNotesRequest{Notes: &rulesv1alpha1.DMNotes{
				CharacterId:       "char_1",
				SaveProficiencies: []string{"luck"},
			}})
			return err
		}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.assertCode(tc.call(), codes.InvalidArgument)
		})
	}
}

// TestOverTheWire drives the handler through a real grpc server with protobuf encoding
func (s *HandlerTestSuite) TestOverTheWire() {
	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	rulesv1alpha1.RegisterRulesServiceServer(srv, s.handler)
	go func() {
		_ = srv.Serve(lis) // nolint:errcheck // returns when the test stops the server
	}()
	defer srv.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()
	client := rulesv1alpha1.NewRulesServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	roll := s.sampleRoll()
	mods := modifiers.Modifiers{AbilityMod: 3, ProfBonus: 3}
	s.mockService.EXPECT().RollCheck(gomock.Any(), gomock.Any()).
		Return(&rolls.RollCheckOutput{Roll: roll, Modifiers: mods}, nil)

	resp, err := client.RollCheck(ctx, &rulesv1alpha1.RollCheckRequest{
		ActorId:  "char_1",
		Category: rulesv1alpha1.RollCategory_ROLL_CATEGORY_CHECK,
		Skill:    "Athletics",
	})
	s.Require().NoError(err)
	s.True(proto.Equal(&rulesv1alpha1.RollResult{
		Id:        "roll_1",
		Title:     "Athletics Check",
		Formula:   "1d20+6",
		Total:     18,
		Rolls:     []int32{12},
		FinalRoll: 12,
		Breakdown: []*rulesv1alpha1.BreakdownEntry{
			{Label: "d20", Value: 12}, {Label: "STR", Value: 3}, {Label: "Prof", Value: 3},
		},
		Timestamp: roll.Timestamp.UnixMilli(),
		Mode:      rulesv1alpha1.RollMode_ROLL_MODE_D20,
		Advantage: rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_NORMAL,
		DiceCount: 1,
	}, resp.Roll), "got %v", resp.Roll)
	s.Equal(int32(6), resp.Modifiers.GetTotal())
	s.Nil(resp.Modifiers.SpecificBonus)

	s.mockService.EXPECT().GetActor(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("actor missing not found"))

	_, err = client.GetActor(ctx, &rulesv1alpha1.GetActorRequest{Id: "missing"})
	s.assertCode(err, codes.NotFound)
	s.True(errors.IsNotFound(errors.FromGRPCError(err)))

	// Handler validation runs before the service is reached
	_, err = client.RollDamage(ctx, &rulesv1alpha1.RollDamageRequest{})
	s.assertCode(err, codes.InvalidArgument)
}

func intPtr(v int) *int {
	return &v
}
