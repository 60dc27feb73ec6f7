package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"finbook/config"
	"finbook/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory sqlite database with the production schema.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := config.Open(":memory:")
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, config.RunMigrations(db), "failed to run migrations")

	t.Cleanup(func() { db.Close() })
	return db
}

func insertUser(t *testing.T, db *sql.DB, username string) string {
	t.Helper()

	id := uuid.New().String()
	now := time.Now().UTC()
	_, err := db.Exec(`
		INSERT INTO users (id, username, email, password_hash, totp_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, id, username, username+"@example.com", "x", false, now, now)
	require.NoError(t, err)
	return id
}

func insertCategory(t *testing.T, db *sql.DB, name string) string {
	t.Helper()

	category, err := NewCategoryService(db).Create(context.Background(), name)
	require.NoError(t, err)
	return category.ID
}

func insertTransaction(t *testing.T, db *sql.DB, kind models.TransactionKind, userID, categoryID, name string, amount float64, date time.Time) string {
	t.Helper()

	tx, err := NewTransactionService(db).Create(context.Background(), kind, userID, name, categoryID, amount, date)
	require.NoError(t, err)
	return tx.ID
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}
