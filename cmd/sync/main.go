package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/destination/csvfile"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/destination/sheets"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/integrator/meta"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/monitoring"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/repository"
	"github.com/vfg2006/meta-ads-sheets/internal/api"
	"github.com/vfg2006/meta-ads-sheets/internal/config"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"github.com/vfg2006/meta-ads-sheets/internal/scheduler"
	"github.com/vfg2006/meta-ads-sheets/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-sheets/internal/usecases/syncing"
)

func main() {
	issueToken := flag.String("issue-token", "", "emite um token de acesso para o subject informado e encerra")
	tokenRole := flag.Int("role", 3, "role do token emitido (1=admin, 2=operador, 3=leitura)")
	tokenTTL := flag.Duration("ttl", 24*time.Hour, "validade do token emitido")
	flag.Parse()

	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	if *issueToken != "" {
		printToken(cfg, *issueToken, *tokenRole, *tokenTTL)
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reporter, err := monitoring.InitSentry(monitoring.SentryConfig{
		DSN:         cfg.Sentry.DSN,
		Environment: cfg.App.RunMode,
	})
	if err != nil {
		logrus.WithError(err).Warn("Erro ao inicializar o Sentry, seguindo sem reporte de falhas")
	}
	defer reporter.Flush(2 * time.Second)

	metaClient := metaclient.NewClient(cfg)
	if err := metaClient.CheckTokenValidity(ctx); err != nil {
		logrus.WithError(err).Warn("Token da Meta não pôde ser validado, as contas podem falhar")
	}
	metaIntegrator := meta.New(cfg, metaClient)

	destination, err := newDestination(ctx, cfg.Destination)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o destino")
	}

	pipeline := syncing.NewAccountPipeline(metaIntegrator, destination, domain.DefaultSheetRouting(), cfg.Report.FiscalYear)
	orchestrator := syncing.NewOrchestrator(pipeline, cfg.Sync.MaxConcurrentJobs)
	syncService := syncing.NewService(orchestrator, cfg.Meta.AccountIDs)

	var runRepo repository.SyncRunRepository
	if cfg.Database.Enabled() {
		pgConn := pgconn(ctx, cfg.Database)
		defer pgConn.Close()
		runRepo = repository.NewSyncRunRepository(pgConn)
	}

	sheetsSyncService := scheduler.NewSheetsSyncService(syncService, runRepo, reporter, cfg)

	if cfg.App.RunMode == config.RunModeOnce {
		run := sheetsSyncService.RunNow(domain.SyncTriggerStartup)
		reporter.Flush(2 * time.Second)
		if run == nil {
			return
		}
		summary := run.Summary()
		if summary.Total > 0 && summary.Failed == summary.Total {
			logrus.WithField("run_id", run.ID).Error("Todas as contas falharam")
			os.Exit(1)
		}
		return
	}

	authenticator, err := authenticating.NewService(cfg.Auth)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := sheetsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização das planilhas")
	} else {
		logrus.Info("Agendador de sincronização das planilhas iniciado com sucesso")
	}

	server, err := api.New(cfg, sheetsSyncService, authenticator)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// newDestination escolhe o destino de escrita a partir de DESTINATION_DRIVER
func newDestination(ctx context.Context, cfg config.Destination) (syncing.DestinationSyncer, error) {
	switch cfg.Driver {
	case config.DestinationCSV:
		logrus.WithField("dir", cfg.CSVOutputDir).Info("Gravando insights em arquivos CSV")
		return csvfile.NewDestination(cfg.CSVOutputDir), nil
	default:
		service, err := sheets.NewGoogleService(ctx, cfg.GoogleCredentialsFile)
		if err != nil {
			return nil, err
		}
		return sheets.NewDestination(service, cfg), nil
	}
}

// pgconn cria a conexão com o banco de dados e aplica as migrações do histórico
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := postgres.Migrate(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações do PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}

func printToken(cfg *config.Config, subject string, role int, ttl time.Duration) {
	authenticator, err := authenticating.NewService(cfg.Auth)
	if err != nil {
		logrus.Fatal(err)
	}

	token, err := authenticator.GenerateToken(subject, role, ttl)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar token")
	}

	fmt.Println(token)
}
