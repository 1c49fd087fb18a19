package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Crish19/airbnb-clone-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodPost, "/register",
		`{"name":"Alice","email":"alice@example.com","password":"secret123"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Registration successful")
	assert.NotContains(t, rec.Body.String(), "secret123")

	require.Len(t, app.users.users, 1)
	stored := app.users.users[0]
	assert.Equal(t, "Alice", stored.Name)
	assert.NotEqual(t, "secret123", stored.Password, "password must be stored hashed")
	assert.NoError(t, utils.CheckPassword(stored.Password, "secret123"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "Alice", "alice@example.com", "secret123")

	rec := app.do(jsonRequest(http.MethodPost, "/register",
		`{"name":"Imposter","email":"alice@example.com","password":"other456"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Email already exists")
	assert.Len(t, app.users.users, 1, "account count must be unchanged")
}

func TestRegisterMissingFields(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodPost, "/register", `{"email":"alice@example.com"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "is required")
	assert.Empty(t, app.users.users)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	user := app.seedUser(t, "Alice", "alice@example.com", "secret123")

	rec := app.do(jsonRequest(http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"secret123"}`))

	require.Equal(t, http.StatusOK, rec.Code)

	var token string
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "token" {
			token = cookie.Value
			assert.True(t, cookie.HttpOnly)
		}
	}
	require.NotEmpty(t, token, "login must set the session cookie")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, user.ID.Hex(), body["_id"])
	assert.Equal(t, "alice@example.com", body["email"])
	assert.NotContains(t, body, "password", "login response must not expose the hash")

	// The issued session recovers the same account via /profile.
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec = app.do(req)

	require.Equal(t, http.StatusOK, rec.Code)
	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, user.ID.Hex(), profile["_id"])
}

func TestLoginWrongPassword(t *testing.T) {
	app := newTestApp(t)
	app.seedUser(t, "Alice", "alice@example.com", "secret123")

	rec := app.do(jsonRequest(http.MethodPost, "/login",
		`{"email":"alice@example.com","password":"wrong"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "failed login must not issue a cookie")
}

func TestLoginUnknownEmail(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(jsonRequest(http.MethodPost, "/login",
		`{"email":"nobody@example.com","password":"secret123"}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestProfileWithoutCookie(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodGet, "/profile", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
}

func TestProfileTamperedCookie(t *testing.T) {
	app := newTestApp(t)
	user := app.seedUser(t, "Alice", "alice@example.com", "secret123")

	cookie := app.sessionCookie(t, user)
	cookie.Value += "tampered"

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.AddCookie(cookie)
	rec := app.do(req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(httptest.NewRequest(http.MethodPost, "/logout", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", strings.TrimSpace(rec.Body.String()))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge, "logout must instruct the client to discard the cookie")
}
