package repositories

import (
	"bitbucket.org/Amartha/go-fp-aggregation/internal/models"

	sq "github.com/Masterminds/squirrel"
)

var (
	queryInstitutionUpsert = `
		INSERT INTO institution(
			"providerId", "providerInstitutionId", "name", "logoUrl", "country", "enabled", "demo", "createdAt", "updatedAt"
		)
		VALUES($1, $2, $3, $4, $5, $6, $7, now(), now())
		ON CONFLICT ("providerId", "providerInstitutionId") DO UPDATE SET
			"name" = EXCLUDED."name",
			"logoUrl" = EXCLUDED."logoUrl",
			"country" = EXCLUDED."country",
			"enabled" = EXCLUDED."enabled",
			"demo" = EXCLUDED."demo",
			"updatedAt" = now();
	`

	queryInstitutionGetOneByID = `
		SELECT "id", "providerId", "providerInstitutionId", "name", "logoUrl", "country", "enabled", "demo", "createdAt", "updatedAt"
		FROM institution
		WHERE "id" = $1;
	`
)

func institutionFilterConditions(builder sq.SelectBuilder, opts models.InstitutionFilterOptions) sq.SelectBuilder {
	if opts.ProviderID != 0 {
		builder = builder.Where(sq.Eq{`"providerId"`: opts.ProviderID})
	}
	if opts.Country != "" {
		builder = builder.Where(sq.Eq{`"country"`: opts.Country})
	}
	if opts.Enabled != nil {
		builder = builder.Where(sq.Eq{`"enabled"`: *opts.Enabled})
	}
	if opts.Search != "" {
		builder = builder.Where(sq.ILike{`"name"`: "%" + opts.Search + "%"})
	}
	return builder
}

func buildListInstitutionQuery(opts models.InstitutionFilterOptions) (string, []interface{}, error) {
	builder := sq.Select(
		`"id"`, `"providerId"`, `"providerInstitutionId"`, `"name"`, `"logoUrl"`,
		`"country"`, `"enabled"`, `"demo"`, `"createdAt"`, `"updatedAt"`,
	).From("institution").PlaceholderFormat(sq.Dollar)

	builder = institutionFilterConditions(builder, opts)
	builder = builder.OrderBy(`"name" ASC`)

	if opts.Limit > 0 {
		builder = builder.Limit(uint64(opts.Limit))
	}
	if opts.Offset > 0 {
		builder = builder.Offset(uint64(opts.Offset))
	}

	return builder.ToSql()
}

func buildCountInstitutionQuery(opts models.InstitutionFilterOptions) (string, []interface{}, error) {
	builder := sq.Select("COUNT(1)").From("institution").PlaceholderFormat(sq.Dollar)
	builder = institutionFilterConditions(builder, opts)
	return builder.ToSql()
}
