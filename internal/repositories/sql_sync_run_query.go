package repositories

var (
	querySyncRunCreate = `
		INSERT INTO sync_run("id", "kind", "providerId", "status", "startedAt")
		VALUES($1, $2, $3, $4, $5);
	`

	querySyncRunUpdateStatus = `
		UPDATE sync_run
		SET "status" = $1
		WHERE "id" = $2;
	`

	querySyncRunFinish = `
		UPDATE sync_run
		SET "status" = $1,
			"recordsUpserted" = $2,
			"recordsSkipped" = $3,
			"error" = $4,
			"finishedAt" = $5
		WHERE "id" = $6;
	`

	querySyncRunGetOneByID = `
		SELECT "id", "kind", "providerId", "status", "recordsUpserted", "recordsSkipped", "error", "startedAt", "finishedAt"
		FROM sync_run
		WHERE "id" = $1;
	`

	querySyncRunGetList = `
		SELECT "id", "kind", "providerId", "status", "recordsUpserted", "recordsSkipped", "error", "startedAt", "finishedAt"
		FROM sync_run
		WHERE "kind" = $1
		ORDER BY "startedAt" DESC
		LIMIT $2;
	`
)
