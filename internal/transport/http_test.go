package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasiliy-maslov/user-admin/internal/user"
	"github.com/vasiliy-maslov/user-admin/internal/web"
)

func TestNewAPIRouter(t *testing.T) {
	repo, err := user.NewMemoryRepository([]user.User{
		{ID: "1", Name: "Ana", Age: 30, Email: "ana@example.com", Password: "secret"},
	})
	require.NoError(t, err)
	router := NewAPIRouter(repo)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var users []user.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.Equal(t, "Ana", users[0].Name)
}

func TestNewUIRouter(t *testing.T) {
	views, err := web.NewViews()
	require.NoError(t, err)

	repo, err := user.NewMemoryRepository(nil)
	require.NoError(t, err)
	api := httptest.NewServer(NewAPIRouter(repo))
	defer api.Close()

	sessions := web.NewSessionStore(user.NewClient(api.URL, time.Second), time.Minute)
	router := NewUIRouter(web.NewHandler(sessions, views))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No users to show.")
	assert.Equal(t, 1, sessions.Len())
}
