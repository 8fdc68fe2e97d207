package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-companion/internal/entities/dnd5e"

	rulesv1alpha1 "github.com/KirkDiggler/rpg-companion/gen/go/rules/v1alpha1"
)

var (
	checkCategory      string
	checkAbility       string
	checkSkill         string
	checkAttack        string
	checkAttackAbility string
	checkAdvantage     string
	checkTitle         string
	checkModifier      int32
	checkShare         string

	damageTitle    string
	damageModifier int32
	damageShare    string

	historyLimit int32
)

var rollCheckCmd = &cobra.Command{
	Use:   "roll-check [actor-id]",
	Short: "Roll a d20 check, save or attack for an actor",
	Long: `Roll a d20 for a stored actor. Examples:

  roll-check char_1 --category check --skill athletics
  roll-check char_1 --category save --ability dex --advantage advantage
  roll-check monster_goblin --category attack --attack Scimitar`,
	Args: cobra.ExactArgs(1),
	RunE: rollCheck,
}

var rollDamageCmd = &cobra.Command{
	Use:   "roll-damage [owner-id] [count] [die]",
	Short: "Roll damage dice for an owner",
	Args:  cobra.ExactArgs(3),
	RunE:  rollDamage,
}

var historyCmd = &cobra.Command{
	Use:   "history [owner-id]",
	Short: "Show an owner's recent rolls, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  showHistory,
}

var clearHistoryCmd = &cobra.Command{
	Use:   "clear-history [owner-id]",
	Short: "Forget an owner's rolls",
	Args:  cobra.ExactArgs(1),
	RunE:  clearHistory,
}

func init() {
	rollCheckCmd.Flags().StringVar(&checkCategory, "category", string(dnd5e.RollCategoryCheck), "check, save or attack")
	rollCheckCmd.Flags().StringVar(&checkAbility, "ability", "", "Ability override, e.g. str or Dexterity")
	rollCheckCmd.Flags().StringVar(&checkSkill, "skill", "", "Skill for checks")
	rollCheckCmd.Flags().StringVar(&checkAttack, "attack", "", "Stat block attack name")
	rollCheckCmd.Flags().StringVar(&checkAttackAbility, "attack-ability", "", "Ability a character attacks with")
	rollCheckCmd.Flags().StringVar(&checkAdvantage, "advantage", string(dnd5e.AdvantageNormal), "normal, advantage or disadvantage")
	rollCheckCmd.Flags().StringVar(&checkTitle, "title", "", "Roll title")
	rollCheckCmd.Flags().Int32Var(&checkModifier, "mod", 0, "Custom modifier")
	rollCheckCmd.Flags().StringVar(&checkShare, "share", "", "Share target; empty broadcasts")

	rollDamageCmd.Flags().StringVar(&damageTitle, "title", "", "Roll title")
	rollDamageCmd.Flags().Int32Var(&damageModifier, "mod", 0, "Flat damage modifier")
	rollDamageCmd.Flags().StringVar(&damageShare, "share", "", "Share target; empty broadcasts")

	historyCmd.Flags().Int32Var(&historyLimit, "limit", 0, "Maximum rolls to show")
}

func rollCheck(cmd *cobra.Command, args []string) error {
	category, err := parseEnum("category", checkCategory, "ROLL_CATEGORY_", rulesv1alpha1.RollCategory_value)
	if err != nil {
		return err
	}
	advantage, err := parseEnum("advantage", checkAdvantage, "ADVANTAGE_STATE_", rulesv1alpha1.AdvantageState_value)
	if err != nil {
		return err
	}

	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollCheck(ctx, &rulesv1alpha1.RollCheckRequest{
		ActorId:        args[0],
		Title:          checkTitle,
		Category:       rulesv1alpha1.RollCategory(category),
		Ability:        checkAbility,
		Skill:          checkSkill,
		AttackName:     checkAttack,
		AttackAbility:  checkAttackAbility,
		CustomModifier: checkModifier,
		Advantage:      rulesv1alpha1.AdvantageState(advantage),
		ShareTarget:    checkShare,
	})
	if err != nil {
		return rpcError(err, "failed to roll")
	}

	printRoll(cmd, resp.Roll)
	fmt.Fprintf(cmd.OutOrStdout(), "  Modifier: %+d\n", resp.Modifiers.GetTotal())
	return nil
}

func rollDamage(cmd *cobra.Command, args []string) error {
	var count, die int32
	if _, err := fmt.Sscan(args[1], &count); err != nil {
		return fmt.Errorf("invalid dice count %q: %w", args[1], err)
	}
	if _, err := fmt.Sscan(strings.TrimPrefix(strings.ToLower(args[2]), "d"), &die); err != nil {
		return fmt.Errorf("invalid die %q: %w", args[2], err)
	}

	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.RollDamage(ctx, &rulesv1alpha1.RollDamageRequest{
		OwnerId:        args[0],
		Title:          damageTitle,
		DiceCount:      count,
		DieType:        die,
		CustomModifier: damageModifier,
		ShareTarget:    damageShare,
	})
	if err != nil {
		return rpcError(err, "failed to roll damage")
	}

	printRoll(cmd, resp.Roll)
	return nil
}

func showHistory(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetHistory(ctx, &rulesv1alpha1.GetHistoryRequest{OwnerId: args[0], Limit: historyLimit})
	if err != nil {
		return rpcError(err, "failed to get history")
	}

	if len(resp.Rolls) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No rolls for %s\n", args[0])
		return nil
	}
	for _, roll := range resp.Rolls {
		printRoll(cmd, roll)
	}
	return nil
}

func clearHistory(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ClearHistory(ctx, &rulesv1alpha1.ClearHistoryRequest{OwnerId: args[0]})
	if err != nil {
		return rpcError(err, "failed to clear history")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d rolls\n", resp.RollsDeleted)
	return nil
}

func printRoll(cmd *cobra.Command, roll *rulesv1alpha1.RollResult) {
	if roll == nil {
		return
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\n%s: %d\n", roll.Title, roll.Total)
	fmt.Fprintf(out, "  Formula: %s\n", roll.Formula)
	fmt.Fprintf(out, "  Dice: %v\n", roll.Rolls)
	for _, entry := range roll.Breakdown {
		fmt.Fprintf(out, "  %s: %+d\n", entry.Label, entry.Value)
	}
	switch {
	case roll.IsCrit:
		fmt.Fprintln(out, "  Critical!")
	case roll.IsFumble:
		fmt.Fprintln(out, "  Fumble")
	}
}
