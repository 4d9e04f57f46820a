package syncing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"github.com/vfg2006/meta-ads-sheets/pkg/log"
)

// AccountPipeline busca, normaliza, roteia e grava os insights de uma única conta
type AccountPipeline struct {
	fetcher     InsightsFetcher
	destination DestinationSyncer
	routing     domain.SheetRouting
	fiscalYear  int
	now         func() time.Time
}

func NewAccountPipeline(
	fetcher InsightsFetcher,
	destination DestinationSyncer,
	routing domain.SheetRouting,
	fiscalYear int,
) *AccountPipeline {
	return &AccountPipeline{
		fetcher:     fetcher,
		destination: destination,
		routing:     routing,
		fiscalYear:  fiscalYear,
		now:         time.Now,
	}
}

// WithClock substitui o relógio usado para resolver a janela do relatório
func (p *AccountPipeline) WithClock(now func() time.Time) *AccountPipeline {
	p.now = now
	return p
}

func (p *AccountPipeline) Run(ctx context.Context, accountID string) domain.AccountResult {
	result := domain.AccountResult{
		AccountID: accountID,
		StartedAt: p.now(),
	}
	logger := log.ForContext(ctx).WithField("account_id", accountID)

	finish := func(status domain.SyncStatus, reason string) domain.AccountResult {
		result.Status = status
		result.Reason = reason
		result.FinishedAt = p.now()
		return result
	}

	window := domain.ResolveReportingWindow(result.StartedAt, p.fiscalYear)

	table, err := p.fetcher.FetchAdInsights(ctx, accountID, window)
	if err != nil {
		logger.WithError(err).Error("sync: falha ao buscar insights da conta")
		return finish(domain.SyncStatusFailed, err.Error())
	}

	result.Rows = table.Len()
	result.Partial = table.Partial

	if table.Partial && table.IsEmpty() {
		reason := "busca interrompida sem linhas"
		if table.PartialErr != nil {
			reason = table.PartialErr.Error()
		}
		logger.WithField("error", reason).Error("sync: nenhuma linha obtida antes do erro na Graph API")
		return finish(domain.SyncStatusFailed, reason)
	}

	accountName, ok := table.AccountName()
	if table.IsEmpty() || !ok {
		logger.Info("sync: conta sem dados no período")
		return finish(domain.SyncStatusEmpty, "sem dados no período")
	}

	result.AccountName = accountName
	result.Target = p.routing.Resolve(accountName)

	logger = logger.WithFields(log.Fields{
		"account_name": accountName,
		"target":       result.Target,
	})
	logger.Infof("sync: sincronizando %s (%d linhas)", accountName, table.Len())

	if table.Partial {
		logger.WithField("error", table.PartialErr).Warn("sync: gravando resultado parcial")
	}

	payload := table.DropColumn(domain.ColumnAccountName)
	if err := p.destination.Sync(ctx, payload, result.Target); err != nil {
		syncErr := &DestinationSyncError{
			Target: result.Target,
			Err:    errors.WithMessage(err, accountName),
		}
		logger.WithError(syncErr).Error("sync: falha ao gravar no destino")
		return finish(domain.SyncStatusFailed, syncErr.Error())
	}

	return finish(domain.SyncStatusOK, "")
}
