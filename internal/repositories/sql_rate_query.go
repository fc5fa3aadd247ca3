package repositories

var (
	queryCurrencySeed = `
		INSERT INTO currency("code", "createdAt")
		VALUES($1, now())
		ON CONFLICT ("code") DO NOTHING;
	`

	queryRateUpsert = `
		INSERT INTO rate("currencyCode", "rate", "date", "createdAt")
		VALUES($1, $2, $3, now())
		ON CONFLICT ("currencyCode", "date") DO UPDATE SET
			"rate" = EXCLUDED."rate";
	`

	queryRateGetLatest = `
		SELECT DISTINCT ON ("currencyCode")
			"id", "currencyCode", "rate", "date", "createdAt"
		FROM rate
		ORDER BY "currencyCode", "date" DESC;
	`

	queryRateGetLatestDate = `
		SELECT MAX("date") FROM rate;
	`
)
