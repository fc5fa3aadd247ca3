package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
)

// SyncRunRepository persists the per-run ledger the orchestrator walks
// through its state machine. Status transitions are validated in the
// service; the repository only stores them.
type SyncRunRepository interface {
	Create(ctx context.Context, run models.SyncRun) (err error)
	UpdateStatus(ctx context.Context, id string, status models.SyncRunStatus) (err error)
	Finish(ctx context.Context, run models.SyncRun) (err error)
	GetOneByID(ctx context.Context, id string) (result models.SyncRun, err error)
	GetList(ctx context.Context, kind models.SyncRunKind, limit int) (result []models.SyncRun, err error)
}

type syncRunRepository sqlRepo

var _ SyncRunRepository = (*syncRunRepository)(nil)

func (sr *syncRunRepository) Create(ctx context.Context, run models.SyncRun) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, querySyncRunCreate,
		run.ID, run.Kind, run.ProviderID, run.Status, run.StartedAt)
	return
}

func (sr *syncRunRepository) UpdateStatus(ctx context.Context, id string, status models.SyncRunStatus) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, querySyncRunUpdateStatus, status, id)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrNoRowsAffected
		return
	}

	return
}

func (sr *syncRunRepository) Finish(ctx context.Context, run models.SyncRun) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxWrite(ctx)

	res, err := db.ExecContext(ctx, querySyncRunFinish,
		run.Status, run.RecordsUpserted, run.RecordsSkipped, run.Error, run.FinishedAt, run.ID)
	if err != nil {
		return
	}

	affectedRows, err := res.RowsAffected()
	if err != nil {
		return
	}

	if affectedRows == 0 {
		err = common.ErrNoRowsAffected
		return
	}

	return
}

func scanSyncRun(row interface{ Scan(...interface{}) error }, run *models.SyncRun) error {
	var errMsg sql.NullString
	var finishedAt sql.NullTime

	err := row.Scan(
		&run.ID,
		&run.Kind,
		&run.ProviderID,
		&run.Status,
		&run.RecordsUpserted,
		&run.RecordsSkipped,
		&errMsg,
		&run.StartedAt,
		&finishedAt,
	)
	if err != nil {
		return err
	}

	run.Error = errMsg.String
	run.FinishedAt = finishedAt.Time
	return nil
}

func (sr *syncRunRepository) GetOneByID(ctx context.Context, id string) (result models.SyncRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxRead(ctx)

	err = scanSyncRun(db.QueryRowContext(ctx, querySyncRunGetOneByID, id), &result)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}

func (sr *syncRunRepository) GetList(ctx context.Context, kind models.SyncRunKind, limit int) (result []models.SyncRun, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := sr.r.extractTxRead(ctx)

	if limit <= 0 {
		limit = 50
	}

	rows, err := db.QueryContext(ctx, querySyncRunGetList, kind, limit)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var run models.SyncRun
		if err = scanSyncRun(rows, &run); err != nil {
			return
		}
		result = append(result, run)
	}

	err = rows.Err()
	return
}
