package repositories

var (
	queryProviderConnectionCreate = `
		INSERT INTO provider_connection("userId", "providerId", "providerUserId", "createdAt")
		VALUES($1, $2, $3, now())
		RETURNING "id";
	`

	queryProviderConnectionGetOne = `
		SELECT "id", "userId", "providerId", "providerUserId", "createdAt"
		FROM provider_connection
		WHERE "userId" = $1 AND "providerId" = $2;
	`

	queryProviderConnectionGetOneByID = `
		SELECT "id", "userId", "providerId", "providerUserId", "createdAt"
		FROM provider_connection
		WHERE "id" = $1;
	`

	queryProviderConnectionGetByUser = `
		SELECT pc."id", pc."userId", pc."providerId", pc."providerUserId", pc."createdAt", p."name"
		FROM provider_connection pc
		JOIN provider p ON p."id" = pc."providerId"
		WHERE pc."userId" = $1
		ORDER BY pc."id";
	`

	queryProviderConnectionDelete = `
		DELETE FROM provider_connection
		WHERE "id" = $1;
	`

	queryInstitutionConnectionUpsert = `
		INSERT INTO institution_connection("providerConnectionId", "institutionId", "externalId", "createdAt", "updatedAt")
		VALUES($1, $2, $3, now(), now())
		ON CONFLICT ("providerConnectionId", "externalId") DO UPDATE SET
			"institutionId" = EXCLUDED."institutionId",
			"updatedAt" = now()
		RETURNING "id";
	`

	queryInstitutionConnectionGetByProviderConnection = `
		SELECT "id", "providerConnectionId", "institutionId", "externalId", "createdAt", "updatedAt"
		FROM institution_connection
		WHERE "providerConnectionId" = $1
		ORDER BY "id";
	`

	queryInstitutionConnectionDeleteByProviderConnection = `
		DELETE FROM institution_connection
		WHERE "providerConnectionId" = $1;
	`

	querySyncTargetsByProvider = `
		SELECT ic."id", ic."institutionId", ic."externalId", pc."providerUserId", pc."userId"
		FROM institution_connection ic
		JOIN provider_connection pc ON pc."id" = ic."providerConnectionId"
		WHERE pc."providerId" = $1
		ORDER BY ic."id";
	`

	querySyncTargetsByConnection = `
		SELECT ic."id", ic."institutionId", ic."externalId", pc."providerUserId", pc."userId"
		FROM institution_connection ic
		JOIN provider_connection pc ON pc."id" = ic."providerConnectionId"
		WHERE pc."id" = $1
		ORDER BY ic."id";
	`
)
