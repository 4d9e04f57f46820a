package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/repository"
	"github.com/vfg2006/meta-ads-sheets/internal/config"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

const maxRecentRuns = 20

//go:generate mockgen -source=sheets_sync.go -destination=mocks/mock_sheets_sync.go -package=mocks

// SyncRunner executa uma rodada completa de sincronização
type SyncRunner interface {
	RunSync(ctx context.Context, trigger string) *domain.SyncRun
}

// RunReporter recebe cada execução concluída (ex.: Sentry)
type RunReporter interface {
	ReportRun(run *domain.SyncRun)
}

// SheetsSyncConfig representa a configuração do agendador de sincronização das planilhas
type SheetsSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// SheetsSyncService gerencia o agendamento e execução da sincronização Meta -> planilhas
type SheetsSyncService struct {
	scheduler           *gocron.Scheduler
	config              SheetsSyncConfig
	runner              SyncRunner
	runRepo             repository.SyncRunRepository
	reporter            RunReporter
	baseCtx             context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	recentRuns          []*domain.SyncRun
}

// NewSheetsSyncService cria o serviço; runRepo e reporter são opcionais
func NewSheetsSyncService(
	runner SyncRunner,
	runRepo repository.SyncRunRepository,
	reporter RunReporter,
	appConfig *config.Config,
) *SheetsSyncService {
	syncConfig := SheetsSyncConfig{
		CronSchedule:      appConfig.Sync.CronSchedule,
		MaxConcurrentJobs: appConfig.Sync.MaxConcurrentJobs,
		SyncEnabled:       appConfig.Sync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"sync_cron":           syncConfig.CronSchedule,
		"sync_max_concurrent": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização das planilhas carregada")

	return &SheetsSyncService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    syncConfig,
		runner:    runner,
		runRepo:   runRepo,
		reporter:  reporter,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador
func (s *SheetsSyncService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada das planilhas desabilitada por configuração")
		return nil
	}

	logrus.WithField("sync_cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização das planilhas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(domain.SyncTriggerScheduled)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização das planilhas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização das planilhas")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAll executa uma rodada; retorna nil quando outra já está em andamento
func (s *SheetsSyncService) syncAll(trigger string) *domain.SyncRun {
	if !s.acquire() {
		logrus.WithField("sync_trigger", trigger).Info("Sincronização das planilhas já em andamento, ignorando")
		return nil
	}
	defer s.release()

	return s.execute(trigger)
}

func (s *SheetsSyncService) acquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *SheetsSyncService) release() {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.syncRunning = false
	s.lastSyncCompletedAt = time.Now()
}

func (s *SheetsSyncService) execute(trigger string) *domain.SyncRun {
	run := s.runner.RunSync(s.baseCtx, trigger)

	s.syncMutex.Lock()
	s.recentRuns = append([]*domain.SyncRun{run}, s.recentRuns...)
	if len(s.recentRuns) > maxRecentRuns {
		s.recentRuns = s.recentRuns[:maxRecentRuns]
	}
	s.syncMutex.Unlock()

	if s.runRepo != nil {
		if err := s.runRepo.Save(s.baseCtx, run); err != nil {
			logrus.WithFields(logrus.Fields{
				"run_id": run.ID,
				"error":  err.Error(),
			}).Error("Erro ao salvar histórico da sincronização")
		}
	}

	if s.reporter != nil {
		s.reporter.ReportRun(run)
	}

	return run
}

// RunNow executa uma rodada de forma síncrona (usado no modo once e na inicialização)
func (s *SheetsSyncService) RunNow(trigger string) *domain.SyncRun {
	return s.syncAll(trigger)
}

// TriggerManualSync inicia manualmente uma sincronização; retorna false se já houver uma em andamento
func (s *SheetsSyncService) TriggerManualSync() bool {
	if !s.acquire() {
		logrus.Info("Sincronização das planilhas já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando sincronização manual das planilhas")
	go func() {
		defer s.release()
		s.execute(domain.SyncTriggerManual)
	}()

	return true
}

// IsRunning indica se há uma sincronização em andamento
func (s *SheetsSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// GetStatus retorna o status atual do agendador
func (s *SheetsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}

	if len(s.recentRuns) > 0 {
		last := s.recentRuns[0]
		status["last_run_id"] = last.ID
		status["last_run_summary"] = last.Summary()
	}

	return status
}

// ListRuns retorna as execuções mais recentes, do banco quando configurado
func (s *SheetsSyncService) ListRuns(ctx context.Context, limit int) ([]*domain.SyncRun, error) {
	if limit <= 0 || limit > maxRecentRuns {
		limit = maxRecentRuns
	}

	if s.runRepo != nil {
		return s.runRepo.ListRecent(ctx, uint64(limit))
	}

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	runs := make([]*domain.SyncRun, 0, limit)
	for i := 0; i < len(s.recentRuns) && i < limit; i++ {
		runs = append(runs, s.recentRuns[i])
	}
	return runs, nil
}
