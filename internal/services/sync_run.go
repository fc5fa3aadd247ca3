package services

import (
	"context"
	"time"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/repositories"

	"github.com/google/uuid"
)

// newSyncRun opens a ledger row in pending; callers walk it through the
// state machine with advanceRun and close it with finishRun.
func newSyncRun(ctx context.Context, repo repositories.SyncRunRepository, kind models.SyncRunKind, providerID int) (models.SyncRun, error) {
	run := models.SyncRun{
		ID:         uuid.NewString(),
		Kind:       kind,
		ProviderID: providerID,
		Status:     models.SyncRunPending,
		StartedAt:  time.Now().UTC(),
	}
	return run, repo.Create(ctx, run)
}

func advanceRun(ctx context.Context, repo repositories.SyncRunRepository, run *models.SyncRun, next models.SyncRunStatus) error {
	if !run.Status.CanTransition(next) {
		return common.ErrInvalidSyncState
	}
	if err := repo.UpdateStatus(ctx, run.ID, next); err != nil {
		return err
	}
	run.Status = next
	return nil
}

func finishRun(ctx context.Context, repo repositories.SyncRunRepository, run *models.SyncRun, status models.SyncRunStatus, runErr error) error {
	run.Status = status
	run.FinishedAt = time.Now().UTC()
	if runErr != nil {
		run.Error = runErr.Error()
	}
	return repo.Finish(ctx, *run)
}
