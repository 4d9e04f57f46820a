package syncing

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"github.com/vfg2006/meta-ads-sheets/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func TestOrchestrator_RunAll(t *testing.T) {
	t.Run("uma conta com falha não afeta as demais", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRunner := mocks.NewMockAccountRunner(ctrl)

		accountIDs := []string{"1", "2", "3", "4", "5"}
		for _, id := range accountIDs {
			status := domain.SyncStatusOK
			if id == "3" {
				status = domain.SyncStatusFailed
			}
			mockRunner.EXPECT().
				Run(gomock.Any(), id).
				Return(domain.AccountResult{AccountID: id, Status: status})
		}

		results := NewOrchestrator(mockRunner, 0).RunAll(context.Background(), accountIDs)

		require.Len(t, results, len(accountIDs))
		failed := 0
		for i, result := range results {
			assert.Equal(t, accountIDs[i], result.AccountID)
			if result.Failed() {
				failed++
			}
		}
		assert.Equal(t, 1, failed)
	})

	t.Run("pânico em um pipeline vira falha da conta", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRunner := mocks.NewMockAccountRunner(ctrl)

		mockRunner.EXPECT().
			Run(gomock.Any(), "ok").
			Return(domain.AccountResult{AccountID: "ok", Status: domain.SyncStatusOK})
		mockRunner.EXPECT().
			Run(gomock.Any(), "boom").
			DoAndReturn(func(context.Context, string) domain.AccountResult {
				panic("nil map")
			})

		results := NewOrchestrator(mockRunner, 1).RunAll(context.Background(), []string{"boom", "ok"})

		require.Len(t, results, 2)
		assert.True(t, results[0].Failed())
		assert.Contains(t, results[0].Reason, "nil map")
		assert.Equal(t, domain.SyncStatusOK, results[1].Status)
	})

	t.Run("sem contas devolve lista vazia", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRunner := mocks.NewMockAccountRunner(ctrl)

		results := NewOrchestrator(mockRunner, 0).RunAll(context.Background(), nil)

		assert.Empty(t, results)
	})

	t.Run("respeita o limite de concorrência", func(t *testing.T) {
		var running, peak int32
		runner := runnerFunc(func(_ context.Context, accountID string) domain.AccountResult {
			current := atomic.AddInt32(&running, 1)
			for {
				observed := atomic.LoadInt32(&peak)
				if current <= observed || atomic.CompareAndSwapInt32(&peak, observed, current) {
					break
				}
			}
			time.Sleep(20 * time.Millisecond)
			atomic.AddInt32(&running, -1)
			return domain.AccountResult{AccountID: accountID, Status: domain.SyncStatusOK}
		})

		results := NewOrchestrator(runner, 2).RunAll(context.Background(), []string{"a", "b", "c", "d", "e"})

		assert.Len(t, results, 5)
		assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(2))
	})
}

type runnerFunc func(ctx context.Context, accountID string) domain.AccountResult

func (f runnerFunc) Run(ctx context.Context, accountID string) domain.AccountResult {
	return f(ctx, accountID)
}
