package config

import (
	"net/http"
	"time"
)

// NewHTTPClient builds the outbound client used for source fetches and
// upstream relays. Uploads of files near the size ceiling can take a while,
// so the timeout is configurable.
func NewHTTPClient(cfg *AppConfig) *http.Client {
	return &http.Client{
		Timeout: time.Duration(cfg.HTTPClientTimeoutSeconds) * time.Second,
	}
}
