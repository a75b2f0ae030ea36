package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doLogin(t *testing.T, handler http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(rec, req)
	return rec
}

func TestLogin_Success(t *testing.T) {
	srv, st := newTestServer(t)
	user := seedUser(t, st, "a@x.com", "Alice", "p1")
	handler := srv.Handler()

	rec := doLogin(t, handler, `{"email":"a@x.com","password":"p1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp loginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "User login successfully", resp.Message)
	assert.Equal(t, user.ID, resp.User.ID)
	assert.Equal(t, "Alice", resp.User.Name)
	assert.Equal(t, "a@x.com", resp.User.Email)
	require.NotEmpty(t, resp.User.Token)

	// The issued token must verify and carry the user identifier.
	userID, err := parseToken(resp.User.Token, srv.signingKey)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestLogin_NeverReturnsPasswordHash(t *testing.T) {
	srv, st := newTestServer(t)
	seedUser(t, st, "a@x.com", "Alice", "p1")

	rec := doLogin(t, srv.Handler(), `{"email":"a@x.com","password":"p1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var raw map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&raw))
	userObj, ok := raw["user"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, userObj, "password")
	assert.NotContains(t, userObj, "password_hash")
}

func TestLogin_WrongPassword(t *testing.T) {
	srv, st := newTestServer(t)
	seedUser(t, st, "a@x.com", "Alice", "p1")

	rec := doLogin(t, srv.Handler(), `{"email":"a@x.com","password":"wrong"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestLogin_UnknownEmail(t *testing.T) {
	srv, st := newTestServer(t)
	seedUser(t, st, "a@x.com", "Alice", "p1")

	rec := doLogin(t, srv.Handler(), `{"email":"nobody@x.com","password":"p1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// Same response as a wrong password: callers cannot probe for accounts.
	assert.Contains(t, rec.Body.String(), "User not found")
}

func TestLogin_MissingFields(t *testing.T) {
	srv, _ := newTestServer(t)
	handler := srv.Handler()

	for _, body := range []string{
		`{}`,
		`{"email":"a@x.com"}`,
		`{"password":"p1"}`,
		`not json`,
	} {
		rec := doLogin(t, handler, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body=%s", body)
	}
}

func TestLogin_EmailCaseInsensitive(t *testing.T) {
	srv, st := newTestServer(t)
	seedUser(t, st, "a@x.com", "Alice", "p1")

	rec := doLogin(t, srv.Handler(), `{"email":"A@X.com","password":"p1"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}
