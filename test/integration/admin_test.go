package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (app *TestApp) adminRequest(t *testing.T, method, path string, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, app.Server.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// TestAdminModerationFlow covers login, listing and the approve/ban toggle.
func TestAdminModerationFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	ids := app.seedScrans(t, 5)

	// Wrong password fails, right one succeeds.
	badLogin, _ := json.Marshal(map[string]string{"password": "nope"})
	resp, err := app.Client.Post(app.Server.URL+"/admin/login", "application/json", bytes.NewReader(badLogin))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	goodLogin, _ := json.Marshal(map[string]string{"password": testAdminPassword})
	resp, err = app.Client.Post(app.Server.URL+"/admin/login", "application/json", bytes.NewReader(goodLogin))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// Listing without a token is rejected.
	resp = app.adminRequest(t, http.MethodGet, "/admin/items", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Listing with the password as bearer token pages through the items.
	resp = app.adminRequest(t, http.MethodGet, "/admin/items?page=1&limit=3&sort=name&order=asc", testAdminPassword)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page struct {
		Items []struct {
			ID       int64  `json:"id"`
			Name     string `json:"name"`
			Approved bool   `json:"approved"`
		} `json:"items"`
		Total int `json:"total"`
		Page  int `json:"page"`
		Limit int `json:"limit"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	resp.Body.Close()
	assert.Equal(t, 5, page.Total)
	assert.Len(t, page.Items, 3)
	assert.Equal(t, "Scran 0", page.Items[0].Name)

	// Ban pulls an item out of rotation; approve restores it.
	target := ids[0]
	resp = app.adminRequest(t, http.MethodPost, fmt.Sprintf("/admin/items/%d/ban", target), testAdminPassword)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	var approved bool
	require.NoError(t, app.DB.QueryRow("SELECT approved FROM scrans WHERE id = $1", target).Scan(&approved))
	assert.False(t, approved)

	resp = app.adminRequest(t, http.MethodPost, fmt.Sprintf("/admin/items/%d/approve", target), testAdminPassword)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, app.DB.QueryRow("SELECT approved FROM scrans WHERE id = $1", target).Scan(&approved))
	assert.True(t, approved)

	// Moderating a missing item 404s.
	resp = app.adminRequest(t, http.MethodPost, "/admin/items/999999/approve", testAdminPassword)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
