package models

import "time"

// SyncRunStatus is the per-run state machine:
// pending -> fetching -> transforming -> upserting -> done, with failed
// reachable from fetching or upserting. Failed is terminal for the run and
// does not block the next scheduled run.
type SyncRunStatus string

const (
	SyncRunPending      SyncRunStatus = "pending"
	SyncRunFetching     SyncRunStatus = "fetching"
	SyncRunTransforming SyncRunStatus = "transforming"
	SyncRunUpserting    SyncRunStatus = "upserting"
	SyncRunDone         SyncRunStatus = "done"
	SyncRunFailed       SyncRunStatus = "failed"
)

// CanTransition reports whether the run may move from its current status
// to next.
func (s SyncRunStatus) CanTransition(next SyncRunStatus) bool {
	switch s {
	case SyncRunPending:
		return next == SyncRunFetching
	case SyncRunFetching:
		return next == SyncRunTransforming || next == SyncRunFailed
	case SyncRunTransforming:
		return next == SyncRunUpserting
	case SyncRunUpserting:
		return next == SyncRunDone || next == SyncRunFailed
	default:
		return false
	}
}

type SyncRunKind string

const (
	SyncRunInstitutions SyncRunKind = "institutions"
	SyncRunAccounts     SyncRunKind = "accounts"
	SyncRunRates        SyncRunKind = "rates"
)

type SyncRun struct {
	ID         string        `json:"id"`
	Kind       SyncRunKind   `json:"kind"`
	ProviderID int           `json:"providerId"`
	Status     SyncRunStatus `json:"status"`
	// RecordsUpserted and RecordsSkipped are counts only; skipped records
	// are individual mapping failures that did not fail the batch.
	RecordsUpserted int       `json:"recordsUpserted"`
	RecordsSkipped  int       `json:"recordsSkipped"`
	Error           string    `json:"error,omitempty"`
	StartedAt       time.Time `json:"startedAt"`
	FinishedAt      time.Time `json:"finishedAt"`
}

type GetSyncRunsRequest struct {
	Kind  string `query:"kind" json:"kind" validate:"omitempty,oneof=institutions accounts rates"`
	Limit int    `query:"limit" json:"limit" validate:"omitempty,min=1,max=200"`
}

// SyncReport aggregates one orchestrator invocation across providers.
type SyncReport struct {
	Runs []SyncRun `json:"runs"`
}

// Failed lists the provider runs that ended in failure.
func (r SyncReport) Failed() []SyncRun {
	var failed []SyncRun
	for _, run := range r.Runs {
		if run.Status == SyncRunFailed {
			failed = append(failed, run)
		}
	}
	return failed
}
