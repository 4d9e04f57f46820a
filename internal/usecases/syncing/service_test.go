package syncing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"github.com/vfg2006/meta-ads-sheets/internal/usecases/syncing/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_RunSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRunner := mocks.NewMockAccountRunner(ctrl)

	mockRunner.EXPECT().
		Run(gomock.Any(), "1").
		Return(domain.AccountResult{AccountID: "1", Status: domain.SyncStatusOK, Rows: 3})
	mockRunner.EXPECT().
		Run(gomock.Any(), "2").
		Return(domain.AccountResult{AccountID: "2", Status: domain.SyncStatusEmpty})
	mockRunner.EXPECT().
		Run(gomock.Any(), "3").
		Return(domain.AccountResult{AccountID: "3", Status: domain.SyncStatusFailed, Partial: true})

	service := NewService(NewOrchestrator(mockRunner, 0), []string{"1", "2", "3"})

	run := service.RunSync(context.Background(), domain.SyncTriggerManual)

	assert.NotEmpty(t, run.ID)
	assert.Equal(t, domain.SyncTriggerManual, run.Trigger)
	assert.False(t, run.FinishedAt.Before(run.StartedAt))
	assert.Equal(t, domain.SyncSummary{Total: 3, OK: 1, Empty: 1, Failed: 1, Partial: 1}, run.Summary())
}
