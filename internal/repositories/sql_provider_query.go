package repositories

var (
	queryProviderSeed = `
		INSERT INTO provider("name", "createdAt")
		VALUES($1, now())
		ON CONFLICT ("name") DO NOTHING;
	`

	queryProviderGetAll = `
		SELECT "id", "name", "createdAt"
		FROM provider
		ORDER BY "id";
	`

	queryProviderGetOneByID = `
		SELECT "id", "name", "createdAt"
		FROM provider
		WHERE "id" = $1;
	`

	queryProviderGetOneByName = `
		SELECT "id", "name", "createdAt"
		FROM provider
		WHERE "name" = $1;
	`
)
