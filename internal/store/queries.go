package store

// Settings queries
const (
	queryGetSettings = `
		SELECT log_folder, avatar
		FROM settings WHERE id = 1`

	queryUpsertSettings = `
		INSERT INTO settings (id, log_folder, avatar, updated_at)
		VALUES (1, ?, ?, now())
		ON CONFLICT (id) DO UPDATE SET
			log_folder = EXCLUDED.log_folder,
			avatar = EXCLUDED.avatar,
			updated_at = now()`
)

// Notes queries
const (
	notesTable = "notes"

	notesUpsertSuffix = `
		ON CONFLICT (avatar) DO UPDATE SET
			notes = EXCLUDED.notes,
			updated_at = now()`
)
