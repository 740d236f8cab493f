package adapter

import (
	"FileRelayAPI/internal/config"
	"FileRelayAPI/internal/constant"
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

type CatboxAdapter struct {
	catboxURL    string
	litterboxURL string
	userHash     string
	httpClient   *http.Client
}

func NewCatboxAdapter(cfg *config.AppConfig, httpClient *http.Client) *CatboxAdapter {
	return &CatboxAdapter{
		catboxURL:    cfg.CatboxAPIURL,
		litterboxURL: cfg.LitterboxAPIURL,
		userHash:     cfg.CatboxUserHash,
		httpClient:   httpClient,
	}
}

// Upload relays the file to the permanent upstream and returns the hosted URL.
func (a *CatboxAdapter) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	fields := map[string]string{
		"reqtype": constant.ReqTypeFileUpload,
	}
	if a.userHash != "" {
		fields["userhash"] = a.userHash
	}

	return a.relay(ctx, a.catboxURL, fields, filename, data)
}

// UploadTemp relays the file to the temporary upstream with the given
// retention window.
func (a *CatboxAdapter) UploadTemp(ctx context.Context, filename string, data []byte, expiration string) (string, error) {
	fields := map[string]string{
		"reqtype": constant.ReqTypeFileUpload,
		"time":    expiration,
	}

	return a.relay(ctx, a.litterboxURL, fields, filename, data)
}

// Fetch downloads the resource at rawURL into memory. A non-2xx response is
// an error carrying the upstream status.
func (a *CatboxAdapter) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("source responded with status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// Both upstreams speak the same protocol: a multipart POST with a request
// type marker, answered with the hosted URL as bare text. Anything that is
// not a 2xx with an https URL body counts as a failed relay.
func (a *CatboxAdapter) relay(ctx context.Context, endpoint string, fields map[string]string, filename string, data []byte) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return "", err
		}
	}

	part, err := writer.CreateFormFile(constant.FileFieldName, filename)
	if err != nil {
		return "", err
	}
	if _, err := part.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	result := strings.TrimSpace(string(respBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 || !strings.HasPrefix(result, "https://") {
		return "", fmt.Errorf("upload failed: upstream returned status %d: %s", resp.StatusCode, result)
	}

	return result, nil
}
