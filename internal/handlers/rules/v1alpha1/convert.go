package v1alpha1

import (
	"github.com/KirkDiggler/rpg-companion/internal/engine/modifiers"
	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-companion/internal/errors"

	rulesv1alpha1 "github.com/KirkDiggler/rpg-companion/gen/go/rules/v1alpha1"
)

func convertActorToProto(a *dnd5e.Actor) *rulesv1alpha1.Actor {
	if a == nil {
		return nil
	}
	switch a.Kind {
	case dnd5e.ActorKindCharacter:
		return &rulesv1alpha1.Actor{
			Variant: &rulesv1alpha1.Actor_Character{Character: convertCharacterToProto(a.Character)},
		}
	case dnd5e.ActorKindStatBlock:
		return &rulesv1alpha1.Actor{
			Variant: &rulesv1alpha1.Actor_StatBlock{StatBlock: convertStatBlockToProto(a.StatBlock)},
		}
	}
	return &rulesv1alpha1.Actor{}
}

func convertActorsToProto(actors []*dnd5e.Actor) []*rulesv1alpha1.Actor {
	out := make([]*rulesv1alpha1.Actor, 0, len(actors))
	for _, a := range actors {
		out = append(out, convertActorToProto(a))
	}
	return out
}

func convertCharacterToProto(c *dnd5e.Character) *rulesv1alpha1.Character {
	if c == nil {
		return nil
	}
	return &rulesv1alpha1.Character{
		Id:                  c.ID,
		Name:                c.Name,
		Level:               int32(c.Level),
		ClassName:           c.ClassName,
		SubclassName:        c.SubclassName,
		AbilityScores:       convertAbilityScoresToProto(c.AbilityScores),
		SkillProficiencies:  c.SkillProficiencies,
		SaveProficiencies:   abilityCodes(c.SaveProficiencies),
		AttackProficiencies: abilityCodes(c.AttackProficiencies),
	}
}

func convertStatBlockToProto(sb *dnd5e.StatBlock) *rulesv1alpha1.StatBlock {
	if sb == nil {
		return nil
	}
	return &rulesv1alpha1.StatBlock{
		Id:              sb.ID,
		Name:            sb.Name,
		Kind:            convertStatBlockKindToProto(sb.Kind),
		ChallengeRating: sb.ChallengeRating,
		AbilityScores:   convertAbilityScoresToProto(sb.AbilityScores),
		Skills:          convertTraitsToProto(sb.Skills),
		SavingThrows:    convertTraitsToProto(sb.SavingThrows),
		Attacks:         convertTraitsToProto(sb.Attacks),
	}
}

// convertAbilityScoresToProto emits scores in sheet order so responses are stable
func convertAbilityScoresToProto(scores dnd5e.AbilityScores) []*rulesv1alpha1.AbilityScore {
	out := make([]*rulesv1alpha1.AbilityScore, 0, len(scores))
	for _, a := range dnd5e.Abilities {
		score, ok := scores[a]
		if !ok {
			continue
		}
		out = append(out, &rulesv1alpha1.AbilityScore{Ability: string(a), Score: int32(score)})
	}
	return out
}

func convertTraitsToProto(traits []dnd5e.Trait) []*rulesv1alpha1.Trait {
	if len(traits) == 0 {
		return nil
	}
	out := make([]*rulesv1alpha1.Trait, 0, len(traits))
	for _, t := range traits {
		out = append(out, &rulesv1alpha1.Trait{Name: t.Name, Description: t.Description})
	}
	return out
}

func convertStatBlockKindToProto(kind dnd5e.StatBlockKind) rulesv1alpha1.StatBlockKind {
	switch kind {
	case dnd5e.StatBlockKindNPC:
		return rulesv1alpha1.StatBlockKind_STAT_BLOCK_KIND_NPC
	case dnd5e.StatBlockKindMonster:
		return rulesv1alpha1.StatBlockKind_STAT_BLOCK_KIND_MONSTER
	default:
		return rulesv1alpha1.StatBlockKind_STAT_BLOCK_KIND_UNSPECIFIED
	}
}

func convertDMNotesToProto(n *dnd5e.DMNotes) *rulesv1alpha1.DMNotes {
	if n == nil {
		return nil
	}
	return &rulesv1alpha1.DMNotes{
		CharacterId:        n.CharacterID,
		SkillProficiencies: n.SkillProficiencies,
		SaveProficiencies:  abilityCodes(n.SaveProficiencies),
		Notes:              n.Notes,
	}
}

func convertFeaturesToProto(features []dnd5e.Feature) []*rulesv1alpha1.Feature {
	out := make([]*rulesv1alpha1.Feature, 0, len(features))
	for _, f := range features {
		pf := &rulesv1alpha1.Feature{
			Id:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			Source:      f.Source,
			Level:       int32(f.Level),
			Recharge:    convertRechargeToProto(f.Recharge),
		}
		if f.Uses != nil {
			pf.Uses = &rulesv1alpha1.FeatureUses{Max: int32(f.Uses.Max), Current: int32(f.Uses.Current)}
		}
		out = append(out, pf)
	}
	return out
}

func convertRechargeToProto(r dnd5e.Recharge) rulesv1alpha1.Recharge {
	switch r {
	case dnd5e.RechargeShortRest:
		return rulesv1alpha1.Recharge_RECHARGE_SHORT_REST
	case dnd5e.RechargeLongRest:
		return rulesv1alpha1.Recharge_RECHARGE_LONG_REST
	case dnd5e.RechargeDawn:
		return rulesv1alpha1.Recharge_RECHARGE_DAWN
	default:
		return rulesv1alpha1.Recharge_RECHARGE_UNSPECIFIED
	}
}

func convertRollResultToProto(r *dnd5e.RollResult) *rulesv1alpha1.RollResult {
	if r == nil {
		return nil
	}
	out := &rulesv1alpha1.RollResult{
		Id:        r.ID,
		Title:     r.Title,
		Formula:   r.Formula,
		Total:     int32(r.Total),
		Rolls:     make([]int32, 0, len(r.Rolls)),
		FinalRoll: int32(r.FinalRoll),
		IsCrit:    r.IsCrit,
		IsFumble:  r.IsFumble,
		Timestamp: r.Timestamp.UnixMilli(),
		Mode:      convertRollModeToProto(r.Meta.Mode),
		Advantage: convertAdvantageToProto(r.Meta.Type),
		DiceCount: int32(r.Meta.DiceCount),
	}
	for _, v := range r.Rolls {
		out.Rolls = append(out.Rolls, int32(v))
	}
	for _, b := range r.Breakdown {
		out.Breakdown = append(out.Breakdown, &rulesv1alpha1.BreakdownEntry{Label: b.Label, Value: int32(b.Value)})
	}
	return out
}

func convertRollResultsToProto(rolls []*dnd5e.RollResult) []*rulesv1alpha1.RollResult {
	out := make([]*rulesv1alpha1.RollResult, 0, len(rolls))
	for _, r := range rolls {
		out = append(out, convertRollResultToProto(r))
	}
	return out
}

func convertRollModeToProto(mode dnd5e.RollMode) rulesv1alpha1.RollMode {
	switch mode {
	case dnd5e.RollModeD20:
		return rulesv1alpha1.RollMode_ROLL_MODE_D20
	case dnd5e.RollModeDamage:
		return rulesv1alpha1.RollMode_ROLL_MODE_DAMAGE
	default:
		return rulesv1alpha1.RollMode_ROLL_MODE_UNSPECIFIED
	}
}

func convertAdvantageToProto(s dnd5e.AdvantageState) rulesv1alpha1.AdvantageState {
	switch s {
	case dnd5e.AdvantageNormal:
		return rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_NORMAL
	case dnd5e.AdvantageAdvantage:
		return rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_ADVANTAGE
	case dnd5e.AdvantageDisadvantage:
		return rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_DISADVANTAGE
	default:
		return rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_UNSPECIFIED
	}
}

func convertModifiersToProto(m modifiers.Modifiers) *rulesv1alpha1.Modifiers {
	out := &rulesv1alpha1.Modifiers{
		AbilityMod: int32(m.AbilityMod),
		ProfBonus:  int32(m.ProfBonus),
		Total:      int32(m.Total()),
	}
	if m.SpecificBonus != nil {
		bonus := int32(*m.SpecificBonus)
		out.SpecificBonus = &bonus
	}
	return out
}

func abilityCodes(abilities []dnd5e.Ability) []string {
	if len(abilities) == 0 {
		return nil
	}
	out := make([]string, 0, len(abilities))
	for _, a := range abilities {
		out = append(out, string(a))
	}
	return out
}

// convertProtoActor requires exactly one variant to be set
func convertProtoActor(a *rulesv1alpha1.Actor) (*dnd5e.Actor, error) {
	switch v := a.GetVariant().(type) {
	case *rulesv1alpha1.Actor_Character:
		c, err := convertProtoCharacter(v.Character)
		if err != nil {
			return nil, err
		}
		return dnd5e.NewCharacterActor(c), nil
	case *rulesv1alpha1.Actor_StatBlock:
		sb, err := convertProtoStatBlock(v.StatBlock)
		if err != nil {
			return nil, err
		}
		return dnd5e.NewStatBlockActor(sb), nil
	default:
		return nil, errors.InvalidArgument("actor must be a character or a stat_block")
	}
}

func convertProtoCharacter(c *rulesv1alpha1.Character) (*dnd5e.Character, error) {
	if c == nil {
		return nil, errors.InvalidArgument("actor.character is required")
	}
	scores, err := convertProtoAbilityScores("actor.character.ability_scores", c.AbilityScores)
	if err != nil {
		return nil, err
	}
	saves, err := parseAbilities("actor.character.save_proficiencies", c.SaveProficiencies)
	if err != nil {
		return nil, err
	}
	attacks, err := parseAbilities("actor.character.attack_proficiencies", c.AttackProficiencies)
	if err != nil {
		return nil, err
	}
	return &dnd5e.Character{
		ID:                  c.Id,
		Name:                c.Name,
		Level:               int(c.Level),
		ClassName:           c.ClassName,
		SubclassName:        c.SubclassName,
		AbilityScores:       scores,
		SkillProficiencies:  c.SkillProficiencies,
		SaveProficiencies:   saves,
		AttackProficiencies: attacks,
	}, nil
}

func convertProtoStatBlock(sb *rulesv1alpha1.StatBlock) (*dnd5e.StatBlock, error) {
	if sb == nil {
		return nil, errors.InvalidArgument("actor.stat_block is required")
	}
	scores, err := convertProtoAbilityScores("actor.stat_block.ability_scores", sb.AbilityScores)
	if err != nil {
		return nil, err
	}
	var kind dnd5e.StatBlockKind
	switch sb.Kind {
	case rulesv1alpha1.StatBlockKind_STAT_BLOCK_KIND_UNSPECIFIED:
	case rulesv1alpha1.StatBlockKind_STAT_BLOCK_KIND_NPC:
		kind = dnd5e.StatBlockKindNPC
	case rulesv1alpha1.StatBlockKind_STAT_BLOCK_KIND_MONSTER:
		kind = dnd5e.StatBlockKindMonster
	default:
		return nil, errors.InvalidArgumentf("actor.stat_block.kind: unknown value %d", sb.Kind)
	}
	return &dnd5e.StatBlock{
		ID:              sb.Id,
		Name:            sb.Name,
		Kind:            kind,
		ChallengeRating: sb.ChallengeRating,
		AbilityScores:   scores,
		Skills:          convertProtoTraits(sb.Skills),
		SavingThrows:    convertProtoTraits(sb.SavingThrows),
		Attacks:         convertProtoTraits(sb.Attacks),
	}, nil
}

func convertProtoAbilityScores(field string, scores []*rulesv1alpha1.AbilityScore) (dnd5e.AbilityScores, error) {
	if len(scores) == 0 {
		return nil, nil
	}
	out := make(dnd5e.AbilityScores, len(scores))
	for _, s := range scores {
		a, ok := dnd5e.ParseAbility(s.GetAbility())
		if !ok {
			return nil, errors.InvalidArgumentf("%s: unknown ability %q", field, s.GetAbility())
		}
		out[a] = int(s.GetScore())
	}
	return out, nil
}

func convertProtoTraits(traits []*rulesv1alpha1.Trait) []dnd5e.Trait {
	if len(traits) == 0 {
		return nil
	}
	out := make([]dnd5e.Trait, 0, len(traits))
	for _, t := range traits {
		out = append(out, dnd5e.Trait{Name: t.GetName(), Description: t.GetDescription()})
	}
	return out
}

func convertProtoDMNotes(n *rulesv1alpha1.DMNotes) (*dnd5e.DMNotes, error) {
	saves, err := parseAbilities("notes.save_proficiencies", n.SaveProficiencies)
	if err != nil {
		return nil, err
	}
	return &dnd5e.DMNotes{
		CharacterID:        n.CharacterId,
		SkillProficiencies: n.SkillProficiencies,
		SaveProficiencies:  saves,
		Notes:              n.Notes,
	}, nil
}

func parseAbilities(field string, values []string) ([]dnd5e.Ability, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]dnd5e.Ability, 0, len(values))
	for _, v := range values {
		a, ok := dnd5e.ParseAbility(v)
		if !ok {
			return nil, errors.InvalidArgumentf("%s: unknown ability %q", field, v)
		}
		out = append(out, a)
	}
	return out, nil
}

func convertProtoRollCategory(c rulesv1alpha1.RollCategory) (dnd5e.RollCategory, error) {
	switch c {
	case rulesv1alpha1.RollCategory_ROLL_CATEGORY_UNSPECIFIED:
		return "", errors.InvalidArgument("category is required")
	case rulesv1alpha1.RollCategory_ROLL_CATEGORY_CHECK:
		return dnd5e.RollCategoryCheck, nil
	case rulesv1alpha1.RollCategory_ROLL_CATEGORY_SAVE:
		return dnd5e.RollCategorySave, nil
	case rulesv1alpha1.RollCategory_ROLL_CATEGORY_ATTACK:
		return dnd5e.RollCategoryAttack, nil
	default:
		return "", errors.InvalidArgumentf("category: unknown value %d", c)
	}
}

// convertProtoAdvantage treats an unset state as a normal roll
func convertProtoAdvantage(s rulesv1alpha1.AdvantageState) (dnd5e.AdvantageState, error) {
	switch s {
	case rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_UNSPECIFIED,
		rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_NORMAL:
		return dnd5e.AdvantageNormal, nil
	case rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_ADVANTAGE:
		return dnd5e.AdvantageAdvantage, nil
	case rulesv1alpha1.AdvantageState_ADVANTAGE_STATE_DISADVANTAGE:
		return dnd5e.AdvantageDisadvantage, nil
	default:
		return "", errors.InvalidArgumentf("advantage: unknown value %d", s)
	}
}

// convertProtoActorKind maps an unset kind to "" which lists every actor
func convertProtoActorKind(k rulesv1alpha1.ActorKind) (dnd5e.ActorKind, error) {
	switch k {
	case rulesv1alpha1.ActorKind_ACTOR_KIND_UNSPECIFIED:
		return "", nil
	case rulesv1alpha1.ActorKind_ACTOR_KIND_CHARACTER:
		return dnd5e.ActorKindCharacter, nil
	case rulesv1alpha1.ActorKind_ACTOR_KIND_STAT_BLOCK:
		return dnd5e.ActorKindStatBlock, nil
	default:
		return "", errors.InvalidArgumentf("kind: unknown value %d", k)
	}
}
