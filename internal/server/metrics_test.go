package server

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsEndpoint(t *testing.T) {
	s, app, db := setupTestServer(t)
	seedTestTopics(t, db)
	_, token := createTestUser(t, s, db, "alice", "alice@example.com")

	// Tick the domain counters so their families show up in the scrape.
	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/posts/create", map[string]string{
		"title": "MERN question",
		"body":  "help",
	}, token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/users/login", map[string]string{
		"email":    "alice@example.com",
		"password": "Password123!",
	}, ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/metrics", nil, ""))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	body := string(raw)

	assert.True(t, strings.Contains(body, "# HELP"), "expected exposition format output")
	assert.Contains(t, body, "codeboard_posts_created_total")
	assert.Contains(t, body, `topic="MERN"`)
	assert.Contains(t, body, "codeboard_login_attempts_total")
	assert.Contains(t, body, `outcome="success"`)
}
