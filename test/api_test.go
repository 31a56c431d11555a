package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/nulzo/assist-router/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Live integration tests. They expect a running server and are skipped
// unless ASSIST_API_TEST=1 is set.
const (
	baseURL   = "http://localhost:8080/v1"
	healthURL = "http://localhost:8080/health"
)

func requireLiveServer(t *testing.T) {
	if os.Getenv("ASSIST_API_TEST") != "1" {
		t.Skip("set ASSIST_API_TEST=1 to run live API tests")
	}
}

func makeRequest(t *testing.T, method, url string, payload interface{}, target interface{}) int {
	var body io.Reader
	if payload != nil {
		jsonBytes, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(jsonBytes)
	}

	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if target != nil {
		err = json.NewDecoder(resp.Body).Decode(target)
		require.NoError(t, err, "Failed to decode response JSON")
	}

	return resp.StatusCode
}

func TestHealthCheck(t *testing.T) {
	requireLiveServer(t)

	resp, err := http.Get(healthURL)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestChatRoundTrip(t *testing.T) {
	requireLiveServer(t)

	var result api.ChatResult
	status := makeRequest(t, http.MethodPost, baseURL+"/chat", api.ChatRequest{Input: "/generate a hello world"}, &result)
	require.Equal(t, http.StatusOK, status)

	assert.NotEmpty(t, result.SessionID)
	assert.Equal(t, api.KindGenerate, result.Command.Kind)
	assert.Contains(t, result.Response.Content, "/generate a hello world")

	// transcripts are flushed in batches, so poll until they land
	assert.Eventually(t, func() bool {
		var history struct {
			Data []map[string]interface{} `json:"data"`
		}
		status := makeRequest(t, http.MethodGet, baseURL+"/history/"+result.SessionID, nil, &history)
		return status == http.StatusOK && len(history.Data) >= 2
	}, 10*time.Second, 500*time.Millisecond)
}

func TestListModelsLive(t *testing.T) {
	requireLiveServer(t)

	var list struct {
		Data []api.ModelConfig `json:"data"`
	}
	status := makeRequest(t, http.MethodGet, baseURL+"/models", nil, &list)
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, list.Data)
}
