package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/meta-ads-sheets/infrastructure/repository/mocks"
	"github.com/vfg2006/meta-ads-sheets/internal/config"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"github.com/vfg2006/meta-ads-sheets/internal/scheduler/mocks"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		Sync: config.Sync{
			CronSchedule:      "0 6 * * *",
			MaxConcurrentJobs: 2,
			Enabled:           true,
		},
	}
}

func newRun(id string, results ...domain.AccountResult) *domain.SyncRun {
	return &domain.SyncRun{ID: id, Trigger: domain.SyncTriggerManual, Results: results}
}

func TestSheetsSyncService_RunNow(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(runner *mocks.MockSyncRunner, repo *repomocks.MockSyncRunRepository, reporter *mocks.MockRunReporter)
		validate func(t *testing.T, service *SheetsSyncService, run *domain.SyncRun)
	}{
		{
			name: "execução é salva e reportada",
			setup: func(runner *mocks.MockSyncRunner, repo *repomocks.MockSyncRunRepository, reporter *mocks.MockRunReporter) {
				run := newRun("r1", domain.AccountResult{AccountID: "1", Status: domain.SyncStatusFailed})
				runner.EXPECT().RunSync(gomock.Any(), domain.SyncTriggerStartup).Return(run)
				repo.EXPECT().Save(gomock.Any(), run).Return(nil)
				reporter.EXPECT().ReportRun(run)
			},
			validate: func(t *testing.T, service *SheetsSyncService, run *domain.SyncRun) {
				require.NotNil(t, run)
				assert.Equal(t, "r1", run.ID)
				assert.False(t, service.IsRunning())

				status := service.GetStatus()
				assert.Equal(t, "r1", status["last_run_id"])
				assert.Equal(t, domain.SyncSummary{Total: 1, Failed: 1}, status["last_run_summary"])
			},
		},
		{
			name: "erro ao salvar histórico não interrompe a execução",
			setup: func(runner *mocks.MockSyncRunner, repo *repomocks.MockSyncRunRepository, reporter *mocks.MockRunReporter) {
				run := newRun("r2")
				runner.EXPECT().RunSync(gomock.Any(), domain.SyncTriggerStartup).Return(run)
				repo.EXPECT().Save(gomock.Any(), run).Return(errors.New("connection refused"))
				reporter.EXPECT().ReportRun(run)
			},
			validate: func(t *testing.T, service *SheetsSyncService, run *domain.SyncRun) {
				require.NotNil(t, run)
				assert.Equal(t, "r2", run.ID)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			runner := mocks.NewMockSyncRunner(ctrl)
			repo := repomocks.NewMockSyncRunRepository(ctrl)
			reporter := mocks.NewMockRunReporter(ctrl)
			tt.setup(runner, repo, reporter)

			service := NewSheetsSyncService(runner, repo, reporter, testConfig())
			tt.validate(t, service, service.RunNow(domain.SyncTriggerStartup))
		})
	}
}

func TestSheetsSyncService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockSyncRunner(ctrl)

	release := make(chan struct{})
	done := make(chan struct{})
	runner.EXPECT().
		RunSync(gomock.Any(), domain.SyncTriggerManual).
		DoAndReturn(func(context.Context, string) *domain.SyncRun {
			<-release
			return newRun("manual")
		}).
		Times(1)

	service := NewSheetsSyncService(runner, nil, nil, testConfig())

	require.True(t, service.TriggerManualSync())
	assert.True(t, service.IsRunning())

	// uma segunda solicitação durante a execução é ignorada
	assert.False(t, service.TriggerManualSync())
	assert.Nil(t, service.RunNow(domain.SyncTriggerScheduled))

	go func() {
		close(release)
		for service.IsRunning() {
			time.Sleep(5 * time.Millisecond)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sincronização manual não terminou")
	}

	runs, err := service.ListRuns(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "manual", runs[0].ID)
}

func TestSheetsSyncService_ListRuns(t *testing.T) {
	t.Run("usa o repositório quando configurado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := repomocks.NewMockSyncRunRepository(ctrl)
		repo.EXPECT().ListRecent(gomock.Any(), uint64(maxRecentRuns)).Return([]*domain.SyncRun{newRun("db")}, nil)

		service := NewSheetsSyncService(mocks.NewMockSyncRunner(ctrl), repo, nil, testConfig())

		runs, err := service.ListRuns(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "db", runs[0].ID)
	})

	t.Run("mantém apenas as execuções mais recentes em memória", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		runner := mocks.NewMockSyncRunner(ctrl)

		for i := 0; i < maxRecentRuns+5; i++ {
			runner.EXPECT().RunSync(gomock.Any(), domain.SyncTriggerScheduled).Return(newRun(string(rune('a' + i))))
		}

		service := NewSheetsSyncService(runner, nil, nil, testConfig())
		for i := 0; i < maxRecentRuns+5; i++ {
			service.RunNow(domain.SyncTriggerScheduled)
		}

		runs, err := service.ListRuns(context.Background(), 3)
		require.NoError(t, err)
		require.Len(t, runs, 3)
		assert.Equal(t, string(rune('a'+maxRecentRuns+4)), runs[0].ID)
	})
}

func TestSheetsSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	cfg.Sync.Enabled = false

	service := NewSheetsSyncService(mocks.NewMockSyncRunner(ctrl), nil, nil, cfg)

	assert.NoError(t, service.Start(context.Background()))
}

func TestSheetsSyncService_StartInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := testConfig()
	cfg.Sync.CronSchedule = "not a cron"

	service := NewSheetsSyncService(mocks.NewMockSyncRunner(ctrl), nil, nil, cfg)

	assert.Error(t, service.Start(context.Background()))
}
