package domain

import "time"

const (
	SyncTriggerScheduled = "scheduled"
	SyncTriggerManual    = "manual"
	SyncTriggerStartup   = "startup"
)

// SyncRun agrupa os resultados de uma execução completa sobre todas as contas
type SyncRun struct {
	ID         string          `json:"id"`
	Trigger    string          `json:"trigger"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt time.Time       `json:"finished_at"`
	Results    []AccountResult `json:"results"`
}

type SyncSummary struct {
	Total   int `json:"total"`
	OK      int `json:"ok"`
	Empty   int `json:"empty"`
	Failed  int `json:"failed"`
	Partial int `json:"partial"`
}

func (r SyncRun) Summary() SyncSummary {
	summary := SyncSummary{Total: len(r.Results)}
	for _, result := range r.Results {
		switch result.Status {
		case SyncStatusOK:
			summary.OK++
		case SyncStatusEmpty:
			summary.Empty++
		case SyncStatusFailed:
			summary.Failed++
		}
		if result.Partial {
			summary.Partial++
		}
	}
	return summary
}
