package db

import (
	"database/sql"
	"fmt"

	"karaku/backend/internal/logger"
)

// SchemaVersion is stored in PRAGMA user_version. Any other non-zero value
// on disk means the tables are dropped and recreated; there is no
// incremental migration path.
const SchemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS character_table (
  id INTEGER PRIMARY KEY NOT NULL,
  name TEXT NOT NULL,
  species TEXT NOT NULL,
  gender TEXT NOT NULL,
  origin TEXT NOT NULL,
  image TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS translations_table (
  id INTEGER PRIMARY KEY AUTOINCREMENT NOT NULL,
  textEnglish TEXT NOT NULL,
  textSpanish TEXT NOT NULL,
  language TEXT NOT NULL DEFAULT 'en',
  country TEXT NOT NULL DEFAULT 'MX',
  category TEXT NOT NULL DEFAULT 'Restaurants'
);
`

var tables = []string{"character_table", "translations_table"}

func Migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if version != 0 && version != SchemaVersion {
		logger.Warn("schema version mismatch, recreating tables", "module", "db", "action", "migrate", "resource", "schema", "result", "reset", "from", version, "to", SchemaVersion)
		for _, table := range tables {
			if _, err := tx.Exec(`DROP TABLE IF EXISTS ` + table); err != nil {
				return fmt.Errorf("drop %s: %w", table, err)
			}
		}
	}

	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, SchemaVersion)); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}

	return tx.Commit()
}
