package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/meta-ads-sheets/infrastructure/database/postgres"
	"github.com/vfg2006/meta-ads-sheets/internal/domain"
)

const (
	syncRunsTable        = "sync_runs"
	syncRunAccountsTable = "sync_run_accounts"
)

//go:generate mockgen -source=sync_run.go -destination=mocks/mock_sync_run.go -package=mocks

type SyncRunRepository interface {
	Save(ctx context.Context, run *domain.SyncRun) error
	ListRecent(ctx context.Context, limit uint64) ([]*domain.SyncRun, error)
}

type syncRunRepository struct {
	conn postgres.Conn
}

func NewSyncRunRepository(conn postgres.Conn) SyncRunRepository {
	return &syncRunRepository{
		conn: conn,
	}
}

func (r *syncRunRepository) Save(ctx context.Context, run *domain.SyncRun) error {
	runSQL, runArgs, err := buildInsertRunQuery(run)
	if err != nil {
		return err
	}

	accountsSQL, accountsArgs, err := buildInsertAccountsQuery(run)
	if err != nil {
		return err
	}

	err = r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, runSQL, runArgs...); err != nil {
			return fmt.Errorf("erro ao inserir execução: %w", err)
		}

		if accountsSQL == "" {
			return nil
		}

		if _, err := tx.ExecContext(ctx, accountsSQL, accountsArgs...); err != nil {
			return fmt.Errorf("erro ao inserir resultados das contas: %w", err)
		}

		return nil
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"run_id": run.ID,
			"error":  err.Error(),
		}).Error("repository: falha ao salvar execução")
		return err
	}

	return nil
}

func (r *syncRunRepository) ListRecent(ctx context.Context, limit uint64) ([]*domain.SyncRun, error) {
	runsSQL, runsArgs, err := buildListRunsQuery(limit)
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.QueryContext(ctx, runsSQL, runsArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]*domain.SyncRun, 0)
	byID := make(map[string]*domain.SyncRun)
	for rows.Next() {
		run := &domain.SyncRun{Results: []domain.AccountResult{}}
		if err := rows.Scan(&run.ID, &run.Trigger, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, err
		}
		runs = append(runs, run)
		byID[run.ID] = run
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(runs) == 0 {
		return runs, nil
	}

	ids := make([]string, 0, len(runs))
	for _, run := range runs {
		ids = append(ids, run.ID)
	}

	accountsSQL, accountsArgs, err := buildListAccountsQuery(ids)
	if err != nil {
		return nil, err
	}

	accountRows, err := r.conn.QueryContext(ctx, accountsSQL, accountsArgs...)
	if err != nil {
		return nil, err
	}
	defer accountRows.Close()

	for accountRows.Next() {
		var runID string
		var accountName, target, reason sql.NullString
		var status string
		result := domain.AccountResult{}

		if err := accountRows.Scan(
			&runID,
			&result.AccountID,
			&accountName,
			&target,
			&result.Rows,
			&status,
			&reason,
			&result.Partial,
			&result.StartedAt,
			&result.FinishedAt,
		); err != nil {
			return nil, err
		}

		result.AccountName = accountName.String
		result.Target = target.String
		result.Reason = reason.String
		result.Status = domain.SyncStatus(status)

		if run, ok := byID[runID]; ok {
			run.Results = append(run.Results, result)
		}
	}

	return runs, accountRows.Err()
}

func buildInsertRunQuery(run *domain.SyncRun) (string, []interface{}, error) {
	summary := run.Summary()

	return squirrel.
		Insert(syncRunsTable).
		Columns("id", "trigger_type", "started_at", "finished_at", "total", "ok", "empty", "failed", "partial").
		Values(run.ID, run.Trigger, run.StartedAt, run.FinishedAt, summary.Total, summary.OK, summary.Empty, summary.Failed, summary.Partial).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// buildInsertAccountsQuery retorna SQL vazio quando a execução não tem contas
func buildInsertAccountsQuery(run *domain.SyncRun) (string, []interface{}, error) {
	if len(run.Results) == 0 {
		return "", nil, nil
	}

	query := squirrel.
		Insert(syncRunAccountsTable).
		Columns("run_id", "position", "account_id", "account_name", "target", "row_count", "status", "reason", "partial", "started_at", "finished_at").
		PlaceholderFormat(squirrel.Dollar)

	for i, result := range run.Results {
		query = query.Values(
			run.ID,
			i,
			result.AccountID,
			nullString(result.AccountName),
			nullString(result.Target),
			result.Rows,
			string(result.Status),
			nullString(result.Reason),
			result.Partial,
			result.StartedAt,
			result.FinishedAt,
		)
	}

	return query.ToSql()
}

func buildListRunsQuery(limit uint64) (string, []interface{}, error) {
	return squirrel.
		Select("id, trigger_type, started_at, finished_at").
		From(syncRunsTable).
		OrderBy("started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListAccountsQuery(runIDs []string) (string, []interface{}, error) {
	return squirrel.
		Select("run_id, account_id, account_name, target, row_count, status, reason, partial, started_at, finished_at").
		From(syncRunAccountsTable).
		Where("run_id = ANY(?)", pq.Array(runIDs)).
		OrderBy("run_id", "position").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
