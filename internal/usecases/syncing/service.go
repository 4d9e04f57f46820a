package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"github.com/vfg2006/meta-ads-sheets/pkg/log"
	"github.com/vfg2006/meta-ads-sheets/pkg/utils"
)

// Service executa uma rodada completa sobre as contas configuradas
type Service struct {
	orchestrator *Orchestrator
	accountIDs   []string
}

func NewService(orchestrator *Orchestrator, accountIDs []string) *Service {
	ids := make([]string, len(accountIDs))
	copy(ids, accountIDs)

	return &Service{
		orchestrator: orchestrator,
		accountIDs:   ids,
	}
}

// RunSync sincroniza todas as contas e devolve o resumo da execução
func (s *Service) RunSync(ctx context.Context, trigger string) *domain.SyncRun {
	ctx, correlationID := log.WithCorrelationID(ctx)

	runID, err := utils.GenerateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("sync: falha ao gerar id da execução, usando correlation id")
		runID = correlationID
	}

	run := &domain.SyncRun{
		ID:        runID,
		Trigger:   trigger,
		StartedAt: time.Now(),
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id":         run.ID,
		"sync_trigger":   trigger,
		"sync_accounts":  len(s.accountIDs),
		"correlation_id": correlationID,
	})
	logger.Info("sync: iniciando sincronização das contas")

	run.Results = s.orchestrator.RunAll(ctx, s.accountIDs)
	run.FinishedAt = time.Now()

	summary := run.Summary()
	logger.WithFields(log.Fields{
		"sync_ok":      summary.OK,
		"sync_empty":   summary.Empty,
		"sync_failed":  summary.Failed,
		"sync_partial": summary.Partial,
		"duration_ms":  run.FinishedAt.Sub(run.StartedAt).Milliseconds(),
	}).Infof("sync: sincronização concluída em %s", run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond))

	for _, result := range run.Results {
		if result.Failed() {
			logger.WithFields(log.Fields{
				"account_id": result.AccountID,
				"error":      result.Reason,
			}).Warn("sync: conta com falha")
		}
	}

	return run
}
