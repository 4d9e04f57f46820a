package handler

import (
	"context"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
	"github.com/vfg2006/meta-ads-sheets/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

//go:generate mockgen -source=sync.go -destination=mocks/mock_sync.go -package=mocks

// SyncController expõe o agendador de sincronização para a API
type SyncController interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
	ListRuns(ctx context.Context, limit int) ([]*domain.SyncRun, error)
}

type runResponse struct {
	*domain.SyncRun
	Summary domain.SyncSummary `json:"summary"`
}

// RunSync dispara uma sincronização manual em segundo plano
func RunSync(service SyncController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunSync")

		if !service.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Sincronização iniciada com sucesso",
		})
	}
}

// GetSyncStatus retorna o status do agendador e o resumo da última execução
func GetSyncStatus(service SyncController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	}
}

// ListSyncRuns retorna as execuções mais recentes; aceita ?limit=N
func ListSyncRuns(service SyncController) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve ser um inteiro positivo", nil)
				return
			}
			limit = parsed
		}

		runs, err := service.ListRuns(r.Context(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar execuções de sincronização")
			apiErr := apiErrors.FromError(err, apiErrors.ErrDatabaseOperation)
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
			return
		}

		response := make([]runResponse, 0, len(runs))
		for _, run := range runs {
			response = append(response, runResponse{SyncRun: run, Summary: run.Summary()})
		}

		writeJSON(w, http.StatusOK, response)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Warn("error encoding response")
	}
}
