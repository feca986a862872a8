package service

import (
	"path/filepath"
	"testing"

	"pos/internal/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated sqlite database per test and runs the real
// schema migration against it.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "pos.db")), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	return db
}
