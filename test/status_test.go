package test

import (
	"FileRelayAPI/internal/model"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceInfo(t *testing.T) {
	req, _ := http.NewRequest("GET", "/", nil)

	rr := executeRequest(req)

	if !assert.Equal(t, http.StatusOK, rr.Code) {
		printBody(t, rr)
	}

	var resp model.ServiceInfoResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "file-relay-api", resp.Service)
	assert.NotEmpty(t, resp.Version)
	assert.Equal(t, 10, resp.MaxFileSizeMB)
	assert.Len(t, resp.Endpoints, 5)
}

func TestHealth(t *testing.T) {
	req, _ := http.NewRequest("GET", "/health", nil)

	rr := executeRequest(req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp model.HealthResponse
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "file-relay-api", resp.Service)

	_, err := time.Parse(time.RFC3339, resp.Timestamp)
	assert.NoError(t, err)
}

func TestCORSPreflight(t *testing.T) {
	t.Run("Bare OPTIONS", func(t *testing.T) {
		req, _ := http.NewRequest("OPTIONS", "/upload", nil)

		rr := executeRequest(req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Methods"))
		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Headers"))
	})

	t.Run("Preflight With Origin", func(t *testing.T) {
		req, _ := http.NewRequest("OPTIONS", "/upload/url", nil)
		req.Header.Set("Origin", "https://example.com")
		req.Header.Set("Access-Control-Request-Method", "POST")

		rr := executeRequest(req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Empty(t, rr.Body.String())
		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Methods"))
		assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Headers"))
	})
}

func TestNotFound(t *testing.T) {
	req, _ := http.NewRequest("GET", "/nope", nil)

	rr := executeRequest(req)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	var resp struct {
		Error string `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Not found", resp.Error)
}

func TestMethodNotAllowed(t *testing.T) {
	req, _ := http.NewRequest("POST", "/health", nil)

	rr := executeRequest(req)
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
