package syncing

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/pool"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"github.com/vfg2006/meta-ads-sheets/pkg/log"
)

// Orchestrator executa um pipeline por conta em paralelo. A falha de uma conta
// nunca cancela as demais.
type Orchestrator struct {
	runner        AccountRunner
	maxConcurrent int
}

// NewOrchestrator cria o orquestrador; maxConcurrent <= 0 usa uma goroutine por conta
func NewOrchestrator(runner AccountRunner, maxConcurrent int) *Orchestrator {
	return &Orchestrator{
		runner:        runner,
		maxConcurrent: maxConcurrent,
	}
}

// RunAll devolve exatamente um resultado por conta, na ordem de accountIDs
func (o *Orchestrator) RunAll(ctx context.Context, accountIDs []string) []domain.AccountResult {
	results := make([]domain.AccountResult, len(accountIDs))
	if len(accountIDs) == 0 {
		return results
	}

	workers := o.maxConcurrent
	if workers <= 0 || workers > len(accountIDs) {
		workers = len(accountIDs)
	}

	p := pool.New().WithMaxGoroutines(workers)
	for i, accountID := range accountIDs {
		p.Go(func() {
			results[i] = o.runSafely(ctx, accountID)
		})
	}
	p.Wait()

	return results
}

func (o *Orchestrator) runSafely(ctx context.Context, accountID string) (result domain.AccountResult) {
	startedAt := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.ForContext(ctx).WithFields(log.Fields{
				"account_id": accountID,
				"error":      fmt.Sprint(r),
			}).Error("sync: pânico ao sincronizar conta")

			result = domain.AccountResult{
				AccountID:  accountID,
				Status:     domain.SyncStatusFailed,
				Reason:     fmt.Sprintf("panic: %v", r),
				StartedAt:  startedAt,
				FinishedAt: time.Now(),
			}
		}
	}()

	return o.runner.Run(ctx, accountID)
}
