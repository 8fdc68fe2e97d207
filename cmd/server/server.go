package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/KirkDiggler/rpg-companion/internal/clients/external"
	"github.com/KirkDiggler/rpg-companion/internal/config"
	rollexec "github.com/KirkDiggler/rpg-companion/internal/engine/rolls"
	"github.com/KirkDiggler/rpg-companion/internal/handlers/rules/v1alpha1"
	"github.com/KirkDiggler/rpg-companion/internal/orchestrators/rolls"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-companion/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-companion/internal/redis"
	"github.com/KirkDiggler/rpg-companion/internal/repositories/actor"
	dmnotes "github.com/KirkDiggler/rpg-companion/internal/repositories/dm_notes"
	rollhistory "github.com/KirkDiggler/rpg-companion/internal/repositories/roll_history"
	"github.com/KirkDiggler/rpg-companion/internal/services/share"

	rulesv1alpha1 "github.com/KirkDiggler/rpg-companion/gen/go/rules/v1alpha1"
)

var grpcPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the rpg-companion gRPC server backed by Redis.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides RPG_GRPC_PORT)")
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if grpcPort != 0 {
		cfg.GRPCPort = grpcPort
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	redisClient, err := redisclient.NewClient(cfg.RedisAddr, nil)
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore on shutdown
	}()

	publisher, err := share.NewBusPublisher(&share.Config{
		Bus:      events.NewBus(),
		SourceID: "rpg-companion",
	})
	if err != nil {
		return fmt.Errorf("failed to create share publisher: %w", err)
	}
	publisher.Subscribe(share.MessageRoll, logShared)
	publisher.Subscribe(share.MessageDamage, logShared)

	service, err := newRollsService(cfg, redisClient, publisher)
	if err != nil {
		return err
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{Service: service})
	if err != nil {
		return fmt.Errorf("failed to create rules handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	loggerFunc := interceptorLogger(logger)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(loggerFunc),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(loggerFunc),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	rulesv1alpha1.RegisterRulesServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(rulesv1alpha1.RulesService_ServiceDesc.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newRollsService wires repositories, the executor and the optional monster
// importer into the rolls orchestrator
func newRollsService(cfg *config.Config, client redisclient.Client, publisher share.Publisher) (rolls.Service, error) {
	rules, err := loadRules(cfg.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rules: %w", err)
	}

	actorRepo, err := actor.NewRedis(&actor.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create actor repository: %w", err)
	}
	notesRepo, err := dmnotes.NewRedisRepository(&dmnotes.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create dm notes repository: %w", err)
	}
	historyRepo, err := rollhistory.NewRedisRepository(&rollhistory.Config{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create roll history repository: %w", err)
	}

	executor, err := rollexec.NewExecutor(&rollexec.Config{
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewUUID("roll"),
		Clock:       clock.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create roll executor: %w", err)
	}

	var externalClient external.Client
	if cfg.MonsterImport {
		externalClient, err = external.New(&external.Config{
			BaseURL:     cfg.DnD5eAPIURL,
			HTTPTimeout: cfg.DnD5eTimeout,
			CacheTTL:    cfg.DnD5eCacheTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create dnd5e api client: %w", err)
		}
	}

	orchestrator, err := rolls.New(&rolls.Config{
		ActorRepo:      actorRepo,
		NotesRepo:      notesRepo,
		HistoryRepo:    historyRepo,
		Rules:          rules,
		Executor:       executor,
		IDGenerator:    idgen.NewUUID("actor"),
		ExternalClient: externalClient,
		Publisher:      publisher,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create rolls orchestrator: %w", err)
	}

	return orchestrator, nil
}

func logShared(ctx context.Context, msg share.Message) error {
	slog.InfoContext(ctx, "roll shared",
		"type", msg.Type,
		"source", msg.Source,
		"target", msg.Target,
	)
	return nil
}

// interceptorLogger adapts slog to the grpc logging middleware
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}
