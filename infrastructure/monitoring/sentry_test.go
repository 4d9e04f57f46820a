package monitoring

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

type captureTransport struct {
	mu     sync.Mutex
	events []*sentry.Event
}

func (t *captureTransport) Configure(sentry.ClientOptions) {}

func (t *captureTransport) SendEvent(event *sentry.Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

func (t *captureTransport) Flush(_ time.Duration) bool {
	return true
}

func (t *captureTransport) FlushWithContext(_ context.Context) bool {
	return true
}

func (t *captureTransport) Close() {}

func TestSentryReporter_ReportRun(t *testing.T) {
	transport := &captureTransport{}
	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:       "https://public@sentry.example.com/1",
		Transport: transport,
	})
	require.NoError(t, err)

	reporter := NewSentryReporter(sentry.NewHub(client, sentry.NewScope()))

	reporter.ReportRun(&domain.SyncRun{
		ID:      "run1",
		Trigger: domain.SyncTriggerScheduled,
		Results: []domain.AccountResult{
			{AccountID: "1", Status: domain.SyncStatusOK},
			{AccountID: "2", Status: domain.SyncStatusFailed, Reason: "quota exceeded"},
			{AccountID: "3", Status: domain.SyncStatusOK, Partial: true, Target: "PA"},
		},
	})

	require.Len(t, transport.events, 2)
	assert.Equal(t, sentry.LevelError, transport.events[0].Level)
	assert.Contains(t, transport.events[0].Message, "quota exceeded")
	assert.Equal(t, "2", transport.events[0].Tags["account_id"])
	assert.Equal(t, sentry.LevelWarning, transport.events[1].Level)
	assert.Equal(t, "PA", transport.events[1].Tags["target"])
}

func TestSentryReporter_NilIsNoop(t *testing.T) {
	var reporter *SentryReporter

	assert.NotPanics(t, func() {
		reporter.ReportRun(&domain.SyncRun{Results: []domain.AccountResult{{Status: domain.SyncStatusFailed}}})
	})
	assert.True(t, reporter.Flush(0))
}

func TestInitSentry_WithoutDSN(t *testing.T) {
	reporter, err := InitSentry(SentryConfig{})

	assert.NoError(t, err)
	assert.Nil(t, reporter)
}
