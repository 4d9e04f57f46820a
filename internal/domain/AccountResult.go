package domain

import "time"

type SyncStatus string

const (
	SyncStatusOK     SyncStatus = "ok"
	SyncStatusEmpty  SyncStatus = "empty"
	SyncStatusFailed SyncStatus = "failed"
)

// AccountResult representa o resultado da sincronização de uma conta
type AccountResult struct {
	AccountID   string     `json:"account_id"`
	AccountName string     `json:"account_name,omitempty"`
	Target      string     `json:"target,omitempty"`
	Rows        int        `json:"rows"`
	Status      SyncStatus `json:"status"`
	Reason      string     `json:"reason,omitempty"`
	Partial     bool       `json:"partial"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  time.Time  `json:"finished_at"`
}

func (r AccountResult) Failed() bool {
	return r.Status == SyncStatusFailed
}

func (r AccountResult) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
