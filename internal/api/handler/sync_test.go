package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-sheets/internal/api/handler/mocks"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestRunSync(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(service *mocks.MockSyncController)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "sincronização iniciada",
			setup: func(service *mocks.MockSyncController) {
				service.EXPECT().TriggerManualSync().Return(true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
				assert.Contains(t, rec.Body.String(), "Sincronização iniciada")
			},
		},
		{
			name: "sincronização já em andamento",
			setup: func(service *mocks.MockSyncController) {
				service.EXPECT().TriggerManualSync().Return(false)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
				assert.Contains(t, rec.Body.String(), "SYNC_001")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSyncController(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			RunSync(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/sync/run", nil))

			tt.validate(t, rec)
		})
	}
}

func TestGetSyncStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockSyncController(ctrl)
	service.EXPECT().GetStatus().Return(map[string]any{"sync_running": true, "sync_cron": "0 6 * * *"})

	rec := httptest.NewRecorder()
	GetSyncStatus(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sync/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["sync_running"])
	assert.Equal(t, "0 6 * * *", body["sync_cron"])
}

func TestListSyncRuns(t *testing.T) {
	started := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		query    string
		setup    func(service *mocks.MockSyncController)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:  "lista execuções com resumo",
			query: "?limit=5",
			setup: func(service *mocks.MockSyncController) {
				service.EXPECT().ListRuns(gomock.Any(), 5).Return([]*domain.SyncRun{
					{
						ID:        "r1",
						Trigger:   domain.SyncTriggerScheduled,
						StartedAt: started,
						Results: []domain.AccountResult{
							{AccountID: "1", Status: domain.SyncStatusOK},
							{AccountID: "2", Status: domain.SyncStatusFailed},
						},
					},
				}, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, rec.Code)

				var body []map[string]any
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				require.Len(t, body, 1)
				assert.Equal(t, "r1", body[0]["id"])

				summary, ok := body[0]["summary"].(map[string]any)
				require.True(t, ok)
				assert.EqualValues(t, 2, summary["total"])
				assert.EqualValues(t, 1, summary["failed"])
			},
		},
		{
			name:  "sem limite usa o padrão do serviço",
			query: "",
			setup: func(service *mocks.MockSyncController) {
				service.EXPECT().ListRuns(gomock.Any(), 0).Return(nil, nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.JSONEq(t, "[]", rec.Body.String())
			},
		},
		{
			name:  "limite inválido",
			query: "?limit=abc",
			setup: func(service *mocks.MockSyncController) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Contains(t, rec.Body.String(), "VAL_003")
			},
		},
		{
			name:  "erro do repositório",
			query: "?limit=2",
			setup: func(service *mocks.MockSyncController) {
				service.EXPECT().ListRuns(gomock.Any(), 2).Return(nil, errors.New("connection refused"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, rec.Body.String(), "SRV_002")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSyncController(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			ListSyncRuns(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sync/runs"+tt.query, nil))

			tt.validate(t, rec)
		})
	}
}
