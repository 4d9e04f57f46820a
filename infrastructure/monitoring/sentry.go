package monitoring

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

type SentryConfig struct {
	DSN         string
	Environment string
	Release     string
}

// InitSentry inicializa o Sentry; sem DSN o reporte fica desabilitado e nil é retornado
func InitSentry(cfg SentryConfig) (*SentryReporter, error) {
	if cfg.DSN == "" {
		logrus.Debug("Sentry DSN não configurado, reporte de falhas desabilitado")
		return nil, nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		BeforeSend: func(event *sentry.Event, hint *sentry.EventHint) *sentry.Event {
			if event.Request != nil && event.Request.Headers != nil {
				delete(event.Request.Headers, "Authorization")
				delete(event.Request.Headers, "Cookie")
			}
			return event
		},
	})
	if err != nil {
		return nil, fmt.Errorf("sentry init: %w", err)
	}

	logrus.WithField("environment", cfg.Environment).Info("Sentry inicializado")

	return &SentryReporter{hub: sentry.CurrentHub()}, nil
}

// SentryReporter envia ao Sentry as contas que falharam ou terminaram parciais
type SentryReporter struct {
	hub *sentry.Hub
}

func NewSentryReporter(hub *sentry.Hub) *SentryReporter {
	return &SentryReporter{hub: hub}
}

func (r *SentryReporter) ReportRun(run *domain.SyncRun) {
	if r == nil || r.hub == nil || run == nil {
		return
	}

	for _, result := range run.Results {
		if !result.Failed() && !result.Partial {
			continue
		}

		level := sentry.LevelWarning
		message := fmt.Sprintf("sync parcial da conta %s", result.AccountID)
		if result.Failed() {
			level = sentry.LevelError
			message = fmt.Sprintf("falha no sync da conta %s: %s", result.AccountID, result.Reason)
		}

		r.hub.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(level)
			scope.SetTag("run_id", run.ID)
			scope.SetTag("sync_trigger", run.Trigger)
			scope.SetTag("account_id", result.AccountID)
			if result.Target != "" {
				scope.SetTag("target", result.Target)
			}
			scope.SetContext("account_result", sentry.Context{
				"account_name": result.AccountName,
				"rows":         result.Rows,
				"status":       string(result.Status),
				"reason":       result.Reason,
				"partial":      result.Partial,
			})
			r.hub.CaptureMessage(message)
		})
	}
}

// Flush aguarda o envio dos eventos pendentes
func (r *SentryReporter) Flush(timeout time.Duration) bool {
	if r == nil || r.hub == nil {
		return true
	}
	return r.hub.Flush(timeout)
}
