package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	router, _ := newTestServer(t)
	token := signup(t, router, "alice")

	w := doJSON(t, router, http.MethodGet, "/user/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotContains(t, w.Body.String(), "password_hash")
}

func TestChangePassword(t *testing.T) {
	router, _ := newTestServer(t)
	token := signup(t, router, "alice")

	w := doJSON(t, router, http.MethodPost, "/user/password", token, map[string]any{
		"current_password": "wrong",
		"new_password":     "NewPass123!",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/user/password", token, map[string]any{
		"current_password": "Test123!!",
		"new_password":     "NewPass123!",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/login", "", map[string]any{
		"username": "alice",
		"password": "NewPass123!",
	})
	assert.Equal(t, http.StatusOK, w.Code, "new password must work")

	w = doJSON(t, router, http.MethodPost, "/login", "", map[string]any{
		"username": "alice",
		"password": "Test123!!",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code, "old password must stop working")
}

func TestTOTPSetupAndLogin(t *testing.T) {
	router, _ := newTestServer(t)
	t.Setenv("DATA_ENCRYPTION_KEY", "0123456789abcdef0123456789abcdef")
	token := signup(t, router, "alice")

	w := doJSON(t, router, http.MethodPost, "/user/2fa/setup", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	secret, _ := decode(t, w)["secret"].(string)
	require.NotEmpty(t, secret)

	code, err := totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)

	w = doJSON(t, router, http.MethodPost, "/user/2fa/verify", token, map[string]any{"code": code})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Password alone is no longer enough.
	w = doJSON(t, router, http.MethodPost, "/login", "", map[string]any{
		"username": "alice",
		"password": "Test123!!",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "requires_2fa")

	code, err = totp.GenerateCode(secret, time.Now())
	require.NoError(t, err)
	w = doJSON(t, router, http.MethodPost, "/login", "", map[string]any{
		"username":  "alice",
		"password":  "Test123!!",
		"totp_code": code,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestDeleteAccount(t *testing.T) {
	router, db := newTestServer(t)
	token := signup(t, router, "alice")
	categoryID := createCategory(t, router, token, "Misc")

	w := doJSON(t, router, http.MethodPost, "/transactions/add-expense", token, map[string]any{
		"name":     "Lunch",
		"amount":   10,
		"category": categoryID,
		"date":     "2024-11-01",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/user/account", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&n))
	assert.Zero(t, n)
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM expenses`).Scan(&n))
	assert.Zero(t, n, "owned records are removed with the account")
}
