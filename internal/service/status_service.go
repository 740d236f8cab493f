package service

import (
	"FileRelayAPI/internal/config"
	"FileRelayAPI/internal/constant"
	"FileRelayAPI/internal/model"
	"time"
)

type StatusService struct {
	cfg *config.AppConfig
}

func NewStatusService(cfg *config.AppConfig) *StatusService {
	return &StatusService{
		cfg: cfg,
	}
}

func (s *StatusService) ServiceInfo() *model.ServiceInfoResponse {
	return &model.ServiceInfoResponse{
		Service:       constant.ServiceName,
		Version:       constant.Version,
		Description:   "Stateless relay for direct and fetch-by-URL file uploads",
		MaxFileSizeMB: s.cfg.MaxUploadSizeMB,
		Endpoints: []model.EndpointInfo{
			{Method: "GET", Path: "/", Description: "Service description and limits"},
			{Method: "GET", Path: "/health", Description: "Health status"},
			{Method: "POST", Path: "/upload", Description: "Upload a file to permanent storage"},
			{Method: "POST", Path: "/upload/temp", Description: "Upload a file to temporary storage"},
			{Method: "POST", Path: "/upload/url", Description: "Fetch a remote URL and relay it"},
		},
	}
}

func (s *StatusService) Health() *model.HealthResponse {
	return &model.HealthResponse{
		Status:    "ok",
		Service:   constant.ServiceName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
