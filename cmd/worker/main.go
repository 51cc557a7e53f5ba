package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/ai-company/internal/adapter"
	"github.com/feral-file/ai-company/internal/agents"
	"github.com/feral-file/ai-company/internal/config"
	"github.com/feral-file/ai-company/internal/llm"
	"github.com/feral-file/ai-company/internal/logger"
	"github.com/feral-file/ai-company/internal/messaging"
	"github.com/feral-file/ai-company/internal/providers/jetstream"
	temporal "github.com/feral-file/ai-company/internal/providers/temporal"
	"github.com/feral-file/ai-company/internal/ratelimit"
	"github.com/feral-file/ai-company/internal/store"
	"github.com/feral-file/ai-company/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "pipeline-worker",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Pipeline Worker")

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")
	dataStore := store.NewPGStore(db)

	// Initialize adapters
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()
	hasher := adapter.NewHasher(adapter.NewJCS())
	httpClient := adapter.NewHTTPClient(cfg.LLM.Timeout)

	// Initialize the LLM provider behind the rate limiter
	limiter, err := ratelimit.New(ctx, cfg.RateLimit, clockAdapter, llm.ProviderASIOne, llm.ProviderAnthropic)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		_ = limiter.Close()
	}()

	provider, err := llm.New(cfg.LLM, httpClient, limiter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create LLM provider", zap.Error(err))
	}
	team := agents.NewTeam(provider, dataStore, cfg.Pipeline.StrategyConcurrency)
	defer team.Close()

	// Connect to NATS JetStream when configured
	var publisher messaging.Publisher = messaging.NewNoopPublisher()
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx, jetstream.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			SubjectPrefix:  cfg.NATS.SubjectPrefix,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: "ai-company-worker",
		}, adapter.NewNatsJetStream(), jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))
	}
	defer publisher.Close()

	// Initialize executor for activities
	executor := workflows.NewExecutor(dataStore, team, publisher, hasher, jsonAdapter, clockAdapter)

	// Connect to Temporal
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.PipelineTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			Interceptors:                       []interceptor.WorkerInterceptor{temporal.NewSentryActivityInterceptor()},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("taskQueue", cfg.Temporal.PipelineTaskQueue))

	workerCore := workflows.NewWorkerCore(executor, workflows.WorkerCoreConfig{
		StageTimeout:      cfg.Pipeline.StageTimeout,
		StageMaxAttempts:  cfg.Pipeline.StageMaxAttempts,
		CompletionDelay:   cfg.Pipeline.CompletionDelay,
		CompletionRevenue: cfg.Pipeline.CompletionRevenue,
		VoteTimeout:       cfg.Pipeline.VoteTimeout,
	})

	// Register workflows
	temporalWorker.RegisterWorkflow(workerCore.CompanyPipeline)
	temporalWorker.RegisterWorkflow(workerCore.LaunchListing)

	// Register activities
	temporalWorker.RegisterActivity(executor.GenerateIdeas)
	temporalWorker.RegisterActivity(executor.ResearchIdea)
	temporalWorker.RegisterActivity(executor.DevelopProduct)
	temporalWorker.RegisterActivity(executor.DevelopMarketingStrategy)
	temporalWorker.RegisterActivity(executor.DevelopTechnicalStrategy)
	temporalWorker.RegisterActivity(executor.CreateBoltPrompt)
	temporalWorker.RegisterActivity(executor.LoadPipelineRun)
	temporalWorker.RegisterActivity(executor.ApplyTransition)
	temporalWorker.RegisterActivity(executor.DistributeRunRevenue)
	temporalWorker.RegisterActivity(executor.LaunchListing)
	logger.InfoCtx(ctx, "Registered workflows and activities")

	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Shutting down worker...")
	temporalWorker.Stop()
	logger.Info("Worker stopped")
}
