// Package client provides commands that call a running rules service
package client

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/KirkDiggler/rpg-companion/internal/errors"

	rulesv1alpha1 "github.com/KirkDiggler/rpg-companion/gen/go/rules/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call a running rules service",
	Long:  `Client commands make real gRPC requests against a running rpg-companion server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(getFeaturesCmd)
	ClientCmd.AddCommand(rollCheckCmd)
	ClientCmd.AddCommand(rollDamageCmd)
	ClientCmd.AddCommand(historyCmd)
	ClientCmd.AddCommand(clearHistoryCmd)

	// Actor commands
	ClientCmd.AddCommand(importMonsterCmd)
	ClientCmd.AddCommand(getActorCmd)
	ClientCmd.AddCommand(listActorsCmd)
}

// createRulesClient dials the server and returns a rules client plus its cleanup
func createRulesClient() (rulesv1alpha1.RulesServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return rulesv1alpha1.NewRulesServiceClient(conn), cleanup, nil
}

// rpcError turns a status error back into a coded error so callers can
// branch on errors.IsNotFound and friends
func rpcError(err error, message string) error {
	return errors.Wrap(errors.FromGRPCError(err), message)
}

// parseEnum resolves a flag value such as "save" or "stat-block" against a
// generated enum value map. Empty means unset; the zero value is never accepted.
func parseEnum(flag, value, prefix string, values map[string]int32) (int32, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	key := prefix + strings.ToUpper(strings.ReplaceAll(value, "-", "_"))
	v, ok := values[key]
	if !ok || v == 0 {
		return 0, errors.InvalidArgumentf("--%s: unknown value %q", flag, value)
	}
	return v, nil
}

func printJSON(w io.Writer, m proto.Message) error {
	b, err := protojson.MarshalOptions{Multiline: true, Indent: "  ", UseProtoNames: true}.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
