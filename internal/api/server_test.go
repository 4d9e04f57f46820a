package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-sheets/internal/api/handler/mocks"
	"github.com/vfg2006/meta-ads-sheets/internal/config"
	"github.com/vfg2006/meta-ads-sheets/internal/usecases/authenticating"
	"github.com/vfg2006/meta-ads-sheets/pkg/middleware"
	"go.uber.org/mock/gomock"
)

func TestServer_Routes(t *testing.T) {
	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "8000", AllowedOrigins: []string{"http://localhost:3000"}},
		Auth:   config.Auth{Secret: "segredo"},
	}

	authenticator, err := authenticating.NewService(cfg.Auth)
	require.NoError(t, err)

	token := func(role int) string {
		signed, err := authenticator.GenerateToken("ops", role, time.Hour)
		require.NoError(t, err)
		return "Bearer " + signed
	}

	tests := []struct {
		name     string
		method   string
		path     string
		auth     string
		setup    func(service *mocks.MockSyncController)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "healthcheck é público",
			method: http.MethodGet,
			path:   "/healthcheck",
			setup:  func(service *mocks.MockSyncController) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
			},
		},
		{
			name:   "sem token",
			method: http.MethodGet,
			path:   "/v1/sync/status",
			setup:  func(service *mocks.MockSyncController) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusUnauthorized, rec.Code)
			},
		},
		{
			name:   "leitura pode consultar status",
			method: http.MethodGet,
			path:   "/v1/sync/status",
			auth:   token(middleware.RoleViewer),
			setup: func(service *mocks.MockSyncController) {
				service.EXPECT().GetStatus().Return(map[string]any{"sync_running": false})
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
			},
		},
		{
			name:   "leitura não pode disparar sincronização",
			method: http.MethodPost,
			path:   "/v1/sync/run",
			auth:   token(middleware.RoleViewer),
			setup:  func(service *mocks.MockSyncController) {},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusForbidden, rec.Code)
			},
		},
		{
			name:   "operador dispara sincronização",
			method: http.MethodPost,
			path:   "/v1/sync/run",
			auth:   token(middleware.RoleOperator),
			setup: func(service *mocks.MockSyncController) {
				service.EXPECT().TriggerManualSync().Return(true)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusAccepted, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockSyncController(ctrl)
			tt.setup(service)

			server, err := New(cfg, service, authenticator)
			require.NoError(t, err)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			server.Handler().ServeHTTP(rec, req)

			tt.validate(t, rec)
		})
	}
}
