package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	rulesv1alpha1 "github.com/KirkDiggler/rpg-companion/gen/go/rules/v1alpha1"
)

var (
	featuresLevel int32
	importID      string
	listKind      string
)

var getFeaturesCmd = &cobra.Command{
	Use:   "features [character-id]",
	Short: "List a character's class features",
	Args:  cobra.ExactArgs(1),
	RunE:  getFeatures,
}

var importMonsterCmd = &cobra.Command{
	Use:   "import-monster [key]",
	Short: "Import an SRD monster as a stored actor",
	Args:  cobra.ExactArgs(1),
	RunE:  importMonster,
}

var getActorCmd = &cobra.Command{
	Use:   "get-actor [id]",
	Short: "Show a stored actor",
	Args:  cobra.ExactArgs(1),
	RunE:  getActor,
}

var listActorsCmd = &cobra.Command{
	Use:   "list-actors",
	Short: "List stored actors",
	Args:  cobra.NoArgs,
	RunE:  listActors,
}

func init() {
	getFeaturesCmd.Flags().Int32Var(&featuresLevel, "level", 0, "Level override")
	importMonsterCmd.Flags().StringVar(&importID, "id", "", "Actor ID to store the monster under")
	listActorsCmd.Flags().StringVar(&listKind, "kind", "", "character or stat-block")
}

func getFeatures(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetFeatures(ctx, &rulesv1alpha1.GetFeaturesRequest{CharacterId: args[0], Level: featuresLevel})
	if err != nil {
		return rpcError(err, "failed to get features")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Features at level %d:\n", resp.Level)
	for _, f := range resp.Features {
		line := fmt.Sprintf("  [%d] %s (%s)", f.Level, f.Name, f.Source)
		if f.Uses != nil {
			line += fmt.Sprintf(" %d/%d", f.Uses.Current, f.Uses.Max)
		}
		if f.Recharge != rulesv1alpha1.Recharge_RECHARGE_UNSPECIFIED {
			line += " per " + strings.ToLower(strings.TrimPrefix(f.Recharge.String(), "RECHARGE_"))
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

func importMonster(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ImportMonster(ctx, &rulesv1alpha1.ImportMonsterRequest{Key: args[0], Id: importID})
	if err != nil {
		return rpcError(err, "failed to import monster")
	}

	return printJSON(cmd.OutOrStdout(), resp.Actor)
}

func getActor(cmd *cobra.Command, args []string) error {
	client, cleanup, err := createRulesClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetActor(ctx, &rulesv1alpha1.GetActorRequest{Id: args[0]})
	if err != nil {
		return rpcError(err, "failed to get actor")
	}

	return printJSON(cmd.OutOrStdout(), resp)
}

func listActors(cmd *cobra.Command, _ []string) error {
	kind, err := parseEnum("kind", listKind, "ACTOR_KIND_", rulesv1alpha1.ActorKind_value)
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

	resp, err := client.ListActors(ctx, &rulesv1alpha1.ListActorsRequest{Kind: rulesv1alpha1.ActorKind(kind)})
	if err != nil {
		return rpcError(err, "failed to list actors")
	}

	out := cmd.OutOrStdout()
	for _, a := range resp.Actors {
		switch v := a.GetVariant().(type) {
		case *rulesv1alpha1.Actor_Character:
			fmt.Fprintf(out, "%s\tcharacter\t%s\n", v.Character.GetId(), v.Character.GetName())
		case *rulesv1alpha1.Actor_StatBlock:
			kind := strings.ToLower(strings.TrimPrefix(v.StatBlock.GetKind().String(), "STAT_BLOCK_KIND_"))
			fmt.Fprintf(out, "%s\t%s\t%s\n", v.StatBlock.GetId(), kind, v.StatBlock.GetName())
		}
	}
	return nil
}
