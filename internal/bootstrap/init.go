package bootstrap

import (
	"FileRelayAPI/internal/adapter"
	"FileRelayAPI/internal/config"
	"FileRelayAPI/internal/controller"
	"FileRelayAPI/internal/service"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

func Init(cfg *config.AppConfig, validator *validator.Validate, httpClient *http.Client, mux *chi.Mux) {
	catboxAdapter := adapter.NewCatboxAdapter(cfg, httpClient)

	uploadService := service.NewUploadService(cfg, validator, catboxAdapter)
	uploadController := controller.NewUploadController(uploadService)

	statusService := service.NewStatusService(cfg)
	statusController := controller.NewStatusController(statusService)

	route := NewRoute(cfg, mux, uploadController, statusController)
	route.Register()
}
