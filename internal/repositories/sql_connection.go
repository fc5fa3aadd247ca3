package repositories

import (
	"context"
	"database/sql"
	"errors"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
)

type ConnectionRepository interface {
	CreateProviderConnection(ctx context.Context, in models.CreateProviderConnection) (id int, err error)
	GetProviderConnection(ctx context.Context, userID string, providerID int) (result models.ProviderConnection, err error)
	GetProviderConnectionByID(ctx context.Context, id int) (result models.ProviderConnection, err error)
	GetConnectionsByUser(ctx context.Context, userID string) (result []models.ConnectionDetail, err error)
	DeleteProviderConnection(ctx context.Context, id int) (err error)

	// UpsertInstitutionConnection replays a provider-side connection; the
	// conflict key is (providerConnectionId, externalId).
	UpsertInstitutionConnection(ctx context.Context, in models.CreateInstitutionConnection) (id int, err error)
	GetInstitutionConnections(ctx context.Context, providerConnectionID int) (result []models.InstitutionConnection, err error)
	DeleteInstitutionConnections(ctx context.Context, providerConnectionID int) (err error)

	// GetSyncTargets flattens every institution connection under a provider
	// into the identities its adapter needs for an account fetch.
	GetSyncTargets(ctx context.Context, providerID int) (result []models.SyncTarget, err error)
	// GetSyncTargetsByConnection scopes the same view to one provider
	// connection, for on-demand refreshes.
	GetSyncTargetsByConnection(ctx context.Context, providerConnectionID int) (result []models.SyncTarget, err error)
}

type connectionRepository sqlRepo

var _ ConnectionRepository = (*connectionRepository)(nil)

func (cr *connectionRepository) CreateProviderConnection(ctx context.Context, in models.CreateProviderConnection) (id int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(in)
	if err != nil {
		return
	}

	err = db.QueryRowContext(ctx, queryProviderConnectionCreate, args...).Scan(&id)
	return
}

func (cr *connectionRepository) GetProviderConnection(ctx context.Context, userID string, providerID int) (result models.ProviderConnection, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryProviderConnectionGetOne, userID, providerID).Scan(
		&result.ID,
		&result.UserID,
		&result.ProviderID,
		&result.ProviderUserID,
		&result.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}

func (cr *connectionRepository) GetProviderConnectionByID(ctx context.Context, id int) (result models.ProviderConnection, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryProviderConnectionGetOneByID, id).Scan(
		&result.ID,
		&result.UserID,
		&result.ProviderID,
		&result.ProviderUserID,
		&result.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}

func (cr *connectionRepository) GetConnectionsByUser(ctx context.Context, userID string) (result []models.ConnectionDetail, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryProviderConnectionGetByUser, userID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var detail models.ConnectionDetail
		err = rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.ProviderID,
			&detail.ProviderUserID,
			&detail.CreatedAt,
			&detail.ProviderName,
		)
		if err != nil {
			return
		}
		result = append(result, detail)
	}

	err = rows.Err()
	return
}

func (cr *connectionRepository) DeleteProviderConnection(ctx context.Context, id int) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryProviderConnectionDelete, id)
	return
}

func (cr *connectionRepository) UpsertInstitutionConnection(ctx context.Context, in models.CreateInstitutionConnection) (id int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(in)
	if err != nil {
		return
	}

	err = db.QueryRowContext(ctx, queryInstitutionConnectionUpsert, args...).Scan(&id)
	return
}

func (cr *connectionRepository) GetInstitutionConnections(ctx context.Context, providerConnectionID int) (result []models.InstitutionConnection, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, queryInstitutionConnectionGetByProviderConnection, providerConnectionID)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var conn models.InstitutionConnection
		err = rows.Scan(
			&conn.ID,
			&conn.ProviderConnectionID,
			&conn.InstitutionID,
			&conn.ExternalID,
			&conn.CreatedAt,
			&conn.UpdatedAt,
		)
		if err != nil {
			return
		}
		result = append(result, conn)
	}

	err = rows.Err()
	return
}

func (cr *connectionRepository) DeleteInstitutionConnections(ctx context.Context, providerConnectionID int) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := cr.r.extractTxWrite(ctx)

	_, err = db.ExecContext(ctx, queryInstitutionConnectionDeleteByProviderConnection, providerConnectionID)
	return
}

func (cr *connectionRepository) GetSyncTargets(ctx context.Context, providerID int) (result []models.SyncTarget, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = cr.scanSyncTargets(ctx, querySyncTargetsByProvider, providerID)
	return
}

func (cr *connectionRepository) GetSyncTargetsByConnection(ctx context.Context, providerConnectionID int) (result []models.SyncTarget, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = cr.scanSyncTargets(ctx, querySyncTargetsByConnection, providerConnectionID)
	return
}

func (cr *connectionRepository) scanSyncTargets(ctx context.Context, query string, arg int) (result []models.SyncTarget, err error) {
	db := cr.r.extractTxRead(ctx)

	rows, err := db.QueryContext(ctx, query, arg)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var target models.SyncTarget
		err = rows.Scan(
			&target.InstitutionConnectionID,
			&target.InstitutionID,
			&target.ExternalID,
			&target.ProviderUserID,
			&target.UserID,
		)
		if err != nil {
			return
		}
		result = append(result, target)
	}

	err = rows.Err()
	return
}
