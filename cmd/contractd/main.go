package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	contractspb "github.com/joseph-ayodele/contract-intel/gen/proto/contracts/v1"
	"github.com/joseph-ayodele/contract-intel/internal/async"
	"github.com/joseph-ayodele/contract-intel/internal/common"
	"github.com/joseph-ayodele/contract-intel/internal/export"
	"github.com/joseph-ayodele/contract-intel/internal/extract"
	"github.com/joseph-ayodele/contract-intel/internal/ingest"
	"github.com/joseph-ayodele/contract-intel/internal/parser"
	"github.com/joseph-ayodele/contract-intel/internal/pdftext"
	"github.com/joseph-ayodele/contract-intel/internal/pipeline"
	"github.com/joseph-ayodele/contract-intel/internal/pipeline/parsecontract"
	"github.com/joseph-ayodele/contract-intel/internal/pipeline/textextract"
	"github.com/joseph-ayodele/contract-intel/internal/repository"
	"github.com/joseph-ayodele/contract-intel/internal/server"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joseph-ayodele/contract-intel/gen/ent"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	appLog := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// DB
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if cfg.Database.DSN != "" {
		entc, pool, err = repository.Open(ctx, repository.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, appLog)
		if err != nil {
			log.Fatalf("opening DB: %v", err)
		}
		if err := repository.HealthCheck(ctx, pool, 3*time.Second, appLog); err != nil {
			log.Fatalf("DB health failed: %v", err)
		}
		log.Infow("DB health OK")
	} else {
		entc, err = repository.OpenSQLite(ctx, cfg.Database.SQLitePath, appLog)
		if err != nil {
			log.Fatalf("opening SQLite: %v", err)
		}
		log.Infow("SQLite ready", "path", cfg.Database.SQLitePath)
	}
	defer repository.Close(entc, pool, appLog)

	// Repositories
	filesRepo := repository.NewContractFileRepository(entc, appLog)
	jobsRepo := repository.NewExtractJobRepository(entc, appLog)
	contractsRepo := repository.NewContractRepository(entc, appLog)

	// Pipeline
	textExtractor := pdftext.NewExtractor(pdftext.Config{
		Pdftotext: cfg.Extract.Pdftotext,
		MaxPages:  cfg.Extract.MaxPages,
	}, appLog)
	textStage := textextract.NewPipeline(filesRepo, jobsRepo, extract.NewPDFTextAdapter(textExtractor, appLog), appLog)
	parseStage := parsecontract.NewPipeline(appLog, jobsRepo, contractsRepo, parser.New(appLog))
	proc := pipeline.NewProcessor(appLog, textStage, parseStage)

	queue := async.NewProcessorQueue(proc, appLog,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)

	ingestor := ingest.NewFSIngestor(filesRepo, cfg.Upload.Dir)
	ingestor.MaxFileSize = cfg.Upload.MaxFileSize

	exportSvc := export.NewService(contractsRepo, filesRepo, appLog)

	// gRPC server
	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business services
	contractspb.RegisterIngestionServiceServer(grpcServer, server.NewIngestionService(ingestor, queue, appLog))
	contractspb.RegisterContractsServiceServer(grpcServer, server.NewContractsService(jobsRepo, filesRepo, exportSvc, appLog))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	fmt.Println("stopped.")
}
