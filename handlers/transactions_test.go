package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddIncome(t *testing.T) {
	router, _ := newTestServer(t)
	token := signup(t, router, "testuser")
	categoryID := createCategory(t, router, token, "Salary")

	w := doJSON(t, router, http.MethodPost, "/transactions/add-income", token, map[string]any{
		"name":     "Salary",
		"amount":   2000,
		"category": categoryID,
		"date":     "2024-11-19",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/transactions", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Salary")
}

func TestAddTransactionRejectsNonPositiveAmount(t *testing.T) {
	router, db := newTestServer(t)
	token := signup(t, router, "testuser")
	categoryID := createCategory(t, router, token, "Misc")

	for _, path := range []string{"/transactions/add-income", "/transactions/add-expense"} {
		w := doJSON(t, router, http.MethodPost, path, token, map[string]any{
			"name":     "Bad",
			"amount":   -5,
			"category": categoryID,
			"date":     "2024-11-19",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM incomes`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM expenses`).Scan(&n))
	assert.Zero(t, n)
}

func TestAddTransactionUnknownCategory(t *testing.T) {
	router, _ := newTestServer(t)
	token := signup(t, router, "testuser")

	w := doJSON(t, router, http.MethodPost, "/transactions/add-expense", token, map[string]any{
		"name":     "Lunch",
		"amount":   12,
		"category": "no-such-category",
		"date":     "2024-11-19",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditTransaction(t *testing.T) {
	router, _ := newTestServer(t)
	token := signup(t, router, "testuser")
	categoryID := createCategory(t, router, token, "Salary")

	w := doJSON(t, router, http.MethodPost, "/transactions/add-income", token, map[string]any{
		"name":     "Salary",
		"amount":   1000,
		"category": categoryID,
		"date":     "2024-11-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decode(t, w)["id"].(string)
	require.NotEmpty(t, id)

	w = doJSON(t, router, http.MethodPost, "/transactions/edit-income/"+id, token, map[string]any{
		"name":     "Updated Salary",
		"amount":   1200,
		"category": categoryID,
		"date":     "2024-11-15",
		"edit":     "edit",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodGet, "/transactions", token, nil)
	assert.Contains(t, w.Body.String(), "Updated Salary")
}

// The delete marker wins over edit and skips validation: a body with an
// invalid amount still deletes.
func TestDeleteMarkerTakesPriority(t *testing.T) {
	router, _ := newTestServer(t)
	token := signup(t, router, "testuser")
	categoryID := createCategory(t, router, token, "Transportation")

	w := doJSON(t, router, http.MethodPost, "/transactions/add-expense", token, map[string]any{
		"name":     "Taxi Ride",
		"amount":   30,
		"category": categoryID,
		"date":     "2024-11-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decode(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/transactions/edit-expense/"+id, token, map[string]any{
		"amount": -999,
		"edit":   "edit",
		"delete": "Delete",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Second delete: the record is gone, so NotFound, both times.
	w = doJSON(t, router, http.MethodPost, "/transactions/edit-expense/"+id, token, map[string]any{
		"delete": "Delete",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodPost, "/transactions/edit-expense/"+id, token, map[string]any{
		"delete": "Delete",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditForeignTransactionNotFound(t *testing.T) {
	router, _ := newTestServer(t)
	aliceToken := signup(t, router, "alice")
	bobToken := signup(t, router, "bob")
	categoryID := createCategory(t, router, aliceToken, "Food")

	w := doJSON(t, router, http.MethodPost, "/transactions/add-expense", aliceToken, map[string]any{
		"name":     "Lunch",
		"amount":   50,
		"category": categoryID,
		"date":     "2024-11-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decode(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPost, "/transactions/edit-expense/"+id, bobToken, map[string]any{
		"name":     "Hijack",
		"amount":   1,
		"category": categoryID,
		"date":     "2024-11-02",
		"edit":     "edit",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
