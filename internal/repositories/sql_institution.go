package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-fp-aggregation/internal/common"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"
	"bitbucket.org/Amartha/go-fp-aggregation/internal/monitoring"
)

type InstitutionRepository interface {
	// Upsert replays the provider catalog; the conflict key is
	// (providerId, providerInstitutionId) so re-syncs update in place.
	Upsert(ctx context.Context, in models.InstitutionUpsert) (err error)
	GetList(ctx context.Context, opts models.InstitutionFilterOptions) (result []models.Institution, err error)
	CountAll(ctx context.Context, opts models.InstitutionFilterOptions) (total int, err error)
	GetOneByID(ctx context.Context, id int) (result models.Institution, err error)
}

type institutionRepository sqlRepo

var _ InstitutionRepository = (*institutionRepository)(nil)

func (ir *institutionRepository) Upsert(ctx context.Context, in models.InstitutionUpsert) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxWrite(ctx)

	args, err := common.GetFieldValues(in)
	if err != nil {
		return
	}

	res, err := db.ExecContext(ctx, queryInstitutionUpsert, args...)
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

func (ir *institutionRepository) GetList(ctx context.Context, opts models.InstitutionFilterOptions) (result []models.Institution, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxRead(ctx)

	query, args, err := buildListInstitutionQuery(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return
	}

	defer rows.Close()
	for rows.Next() {
		var institution models.Institution
		err = rows.Scan(
			&institution.ID,
			&institution.ProviderID,
			&institution.ProviderInstitutionID,
			&institution.Name,
			&institution.LogoURL,
			&institution.Country,
			&institution.Enabled,
			&institution.Demo,
			&institution.CreatedAt,
			&institution.UpdatedAt,
		)
		if err != nil {
			return
		}
		result = append(result, institution)
	}

	err = rows.Err()
	return
}

func (ir *institutionRepository) CountAll(ctx context.Context, opts models.InstitutionFilterOptions) (total int, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxRead(ctx)

	query, args, err := buildCountInstitutionQuery(opts)
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	err = db.QueryRowContext(ctx, query, args...).Scan(&total)
	return
}

func (ir *institutionRepository) GetOneByID(ctx context.Context, id int) (result models.Institution, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	db := ir.r.extractTxRead(ctx)

	err = db.QueryRowContext(ctx, queryInstitutionGetOneByID, id).Scan(
		&result.ID,
		&result.ProviderID,
		&result.ProviderInstitutionID,
		&result.Name,
		&result.LogoURL,
		&result.Country,
		&result.Enabled,
		&result.Demo,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		err = common.ErrDataNotFound
	}
	return
}
