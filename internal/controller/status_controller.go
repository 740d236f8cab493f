package controller

import (
	"FileRelayAPI/internal/helper"
	"FileRelayAPI/internal/service"
	"net/http"
)

type StatusController struct {
	statusService *service.StatusService
}

func NewStatusController(statusService *service.StatusService) *StatusController {
	return &StatusController{
		statusService: statusService,
	}
}

// ServiceInfo godoc
// @Summary      Service Info
// @Description  Service description, version and static limits.
// @Tags         status
// @Produce      json
// @Success      200  {object}  model.ServiceInfoResponse
// @Router       / [get]
func (c *StatusController) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	helper.WriteSuccess(w, c.statusService.ServiceInfo())
}

// Health godoc
// @Summary      Health
// @Description  Liveness probe.
// @Tags         status
// @Produce      json
// @Success      200  {object}  model.HealthResponse
// @Router       /health [get]
func (c *StatusController) Health(w http.ResponseWriter, r *http.Request) {
	helper.WriteSuccess(w, c.statusService.Health())
}
