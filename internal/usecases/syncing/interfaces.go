package syncing

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ErrDestinationSync identifica falhas de escrita no destino
var ErrDestinationSync = errors.New("syncing: falha ao sincronizar destino")

// InsightsFetcher busca a tabela normalizada de insights de uma conta
type InsightsFetcher interface {
	FetchAdInsights(ctx context.Context, accountID string, window domain.ReportingWindow) (*domain.InsightTable, error)
}

// DestinationSyncer substitui todo o conteúdo do destino identificado por target
type DestinationSyncer interface {
	Sync(ctx context.Context, table *domain.InsightTable, target string) error
}

// AccountRunner executa a sincronização completa de uma conta e nunca retorna erro;
// falhas são reportadas no AccountResult
type AccountRunner interface {
	Run(ctx context.Context, accountID string) domain.AccountResult
}

type DestinationSyncError struct {
	Target string
	Err    error
}

func (e *DestinationSyncError) Error() string {
	return fmt.Sprintf("%s %q: %v", ErrDestinationSync.Error(), e.Target, e.Err)
}

func (e *DestinationSyncError) Unwrap() error {
	return e.Err
}

func (e *DestinationSyncError) Is(target error) bool {
	return target == ErrDestinationSync
}
