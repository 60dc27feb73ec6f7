package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrateSQLite(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(db))

	// Migrations are idempotent.
	require.NoError(t, RunMigrations(db))

	for _, table := range []string{"users", "sessions", "categories", "incomes", "expenses", "goals", "contributions"} {
		var n int
		err := db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n)
		assert.NoError(t, err, table)
	}
}

func TestInitDBRequiresURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := InitDB()
	assert.Error(t, err)
}
