package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"karaku/backend/internal/db"
	"karaku/backend/internal/model"

	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated database in a per-test temp dir.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func SeedCharacter(t *testing.T, conn *sql.DB, c model.Character) {
	t.Helper()
	_, err := conn.ExecContext(context.Background(),
		`INSERT INTO character_table (id, name, species, gender, origin, image) VALUES (?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Species, c.Gender, c.OriginName, c.ImageURL,
	)
	require.NoError(t, err)
}

// SeedTranslation inserts tr and returns its assigned id.
func SeedTranslation(t *testing.T, conn *sql.DB, tr model.Translation) int64 {
	t.Helper()
	if tr.Language == "" {
		tr.Language = model.DefaultLanguage
	}
	if tr.Country == "" {
		tr.Country = model.DefaultCountry
	}
	if tr.Category == "" {
		tr.Category = model.DefaultCategory
	}
	res, err := conn.ExecContext(context.Background(),
		`INSERT INTO translations_table (textEnglish, textSpanish, language, country, category) VALUES (?, ?, ?, ?, ?)`,
		tr.TextTranslated, tr.TextSource, tr.Language, tr.Country, tr.Category,
	)
	require.NoError(t, err)
	id, err := res.LastInsertId()
	require.NoError(t, err)
	return id
}
