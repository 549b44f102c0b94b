package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars-api/confs"
	"starwars-api/db"
	"starwars-api/db/dbtest"
	"starwars-api/entities"
)

func newTestServer(t *testing.T) (*Server, db.Database) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database := dbtest.New(t)
	data, err := db.LoadSeed("")
	require.NoError(t, err)
	_, _, err = db.Seed(context.Background(), database, data)
	require.NoError(t, err)

	cfg := &confs.Config{
		Port:         "0",
		JWTSecret:    "test-secret",
		JWTTTL:       time.Hour,
		ServiceName:  "starwars-api-test",
		AllowOrigins: []string{"*"},
	}
	return NewServer(cfg, database), database
}

func do(t *testing.T, s *Server, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func registerAndLogin(t *testing.T, s *Server, username, password string) string {
	t.Helper()

	w := do(t, s, http.MethodPost, "/register", map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, s, http.MethodPost, "/login", map[string]string{"username": username, "password": password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token    string `json:"token"`
		Username string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, username, resp.Username)
	return resp.Token
}

type errorBody struct {
	Message    string `json:"message"`
	StatusCode int    `json:"status_code"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, w.Code, body.StatusCode)
	return body
}

func TestGetUserByID(t *testing.T) {
	s, _ := newTestServer(t)
	registerAndLogin(t, s, "a", "b")

	w := do(t, s, http.MethodGet, "/user/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var user entities.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, uint(1), user.ID)
	assert.Equal(t, "a", user.Username)
	assert.NotContains(t, w.Body.String(), "password")

	w = do(t, s, http.MethodGet, "/user/42", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found", decodeError(t, w).Message)

	w = do(t, s, http.MethodGet, "/user/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsers(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/users", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	registerAndLogin(t, s, "a", "b")
	registerAndLogin(t, s, "c", "d")

	w = do(t, s, http.MethodGet, "/users", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var users []entities.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &users))
	assert.Len(t, users, 2)
}

func TestRegisterThenLogin(t *testing.T) {
	s, _ := newTestServer(t)
	registerAndLogin(t, s, "a", "b")

	w := do(t, s, http.MethodPost, "/login", map[string]string{"username": "a", "password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid username or password", decodeError(t, w).Message)

	w = do(t, s, http.MethodPost, "/login", map[string]string{"username": "a"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, s, http.MethodPost, "/register", map[string]string{"username": "a", "password": "x"}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterThenLoginWithPaddedUsername(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/register", map[string]string{"username": " luke ", "password": "p"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"username":"luke"`)

	w = do(t, s, http.MethodPost, "/login", map[string]string{"username": " luke ", "password": "p"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"token"`)
}

func TestRegisterOverlongPassword(t *testing.T) {
	s, database := newTestServer(t)

	w := do(t, s, http.MethodPost, "/register", map[string]string{"username": "a", "password": strings.Repeat("p", 73)}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "password must be at most 72 bytes", decodeError(t, w).Message)

	var count int64
	require.NoError(t, database.GetDB().Model(&entities.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterMissingPasswordCreatesNoRow(t *testing.T) {
	s, database := newTestServer(t)

	w := do(t, s, http.MethodPost, "/register", map[string]string{"username": "a"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "username and password are required", decodeError(t, w).Message)

	var count int64
	require.NoError(t, database.GetDB().Model(&entities.User{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRegisterMalformedBody(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", decodeError(t, w).Message)
}

func TestFavoritePlanetRoundTrip(t *testing.T) {
	s, _ := newTestServer(t)
	token := registerAndLogin(t, s, "luke", "force")

	w := do(t, s, http.MethodGet, "/users/favorites", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodPost, "/favorite/planet/1", nil, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created entities.FavoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.Planet)
	assert.Equal(t, uint(1), created.Planet.ID)
	assert.Nil(t, created.Person)

	w = do(t, s, http.MethodPost, "/favorite/planet/1", nil, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, s, http.MethodGet, "/users/favorites", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var favorites []entities.FavoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &favorites))
	matching := 0
	for _, f := range favorites {
		if f.Planet != nil && f.Planet.ID == 1 {
			matching++
		}
	}
	assert.Equal(t, 1, matching)

	// the public per-user listing sees the same rows
	w = do(t, s, http.MethodGet, fmt.Sprintf("/users/%d/favorites", created.UserID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, mustJSON(t, favorites), w.Body.String())

	w = do(t, s, http.MethodDelete, "/favorite/planet/1", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, s, http.MethodDelete, "/favorite/planet/1", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Favorite not found", decodeError(t, w).Message)
}

func TestFavoritePersonRoundTrip(t *testing.T) {
	s, _ := newTestServer(t)
	token := registerAndLogin(t, s, "leia", "rebel")

	w := do(t, s, http.MethodPost, "/favorite/people/999", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Person not found", decodeError(t, w).Message)

	w = do(t, s, http.MethodPost, "/favorite/people/3", nil, token)
	require.Equal(t, http.StatusCreated, w.Code)
	var created entities.FavoriteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.Person)
	assert.Equal(t, "Han Solo", created.Person.Name)

	w = do(t, s, http.MethodDelete, "/favorite/people/3", nil, token)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(t, s, http.MethodDelete, "/favorite/people/3", nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoritesAreScopedToCaller(t *testing.T) {
	s, _ := newTestServer(t)
	luke := registerAndLogin(t, s, "luke", "force")
	han := registerAndLogin(t, s, "han", "falcon")

	w := do(t, s, http.MethodPost, "/favorite/planet/2", nil, luke)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, s, http.MethodGet, "/users/favorites", nil, han)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, s, http.MethodDelete, "/favorite/planet/2", nil, han)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFavoriteRoutesRequireToken(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodPost, "/favorite/planet/1", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Missing authorization header", decodeError(t, w).Message)

	w = do(t, s, http.MethodGet, "/users/favorites", nil, "garbage")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodDelete, "/favorite/people/1", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCatalogIsStable(t *testing.T) {
	s, _ := newTestServer(t)

	for _, path := range []string{"/planets", "/people"} {
		first := do(t, s, http.MethodGet, path, nil, "")
		second := do(t, s, http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, http.StatusOK, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
	}

	w := do(t, s, http.MethodGet, "/planets/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var planet entities.Planet
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &planet))
	assert.Equal(t, "Tatooine", planet.Name)
	assert.Equal(t, "arid", planet.Climate)

	w = do(t, s, http.MethodGet, "/planets/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Planet not found", decodeError(t, w).Message)

	w = do(t, s, http.MethodGet, "/people/1", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hair_color":"blond"`)

	w = do(t, s, http.MethodGet, "/people/999", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSitemapAndHealth(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `{"method":"POST","path":"/favorite/planet/:id"}`)
	assert.Contains(t, w.Body.String(), `{"method":"GET","path":"/users"}`)

	w = do(t, s, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"database":"connected"`)

	w = do(t, s, http.MethodGet, "/nowhere", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	s, _ := newTestServer(t)

	w := do(t, s, http.MethodGet, "/planets", nil, "")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/planets", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
