package model

type EndpointInfo struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

type ServiceInfoResponse struct {
	Service       string         `json:"service"`
	Version       string         `json:"version"`
	Description   string         `json:"description"`
	MaxFileSizeMB int            `json:"max_file_size_mb"`
	Endpoints     []EndpointInfo `json:"endpoints"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}
