package bootstrap

import (
	"FileRelayAPI/internal/config"
	"FileRelayAPI/internal/controller"

	"github.com/go-chi/chi/v5"
)

type Route struct {
	cfg              *config.AppConfig
	chi              *chi.Mux
	uploadController *controller.UploadController
	statusController *controller.StatusController
}

func NewRoute(cfg *config.AppConfig, chi *chi.Mux, uploadController *controller.UploadController, statusController *controller.StatusController) *Route {
	return &Route{
		cfg:              cfg,
		chi:              chi,
		uploadController: uploadController,
		statusController: statusController,
	}
}

func (route *Route) Register() {
	route.chi.Get("/", route.statusController.ServiceInfo)
	route.chi.Get("/health", route.statusController.Health)

	route.chi.Post("/upload", route.uploadController.Upload)
	route.chi.Post("/upload/temp", route.uploadController.UploadTemp)
	route.chi.Post("/upload/url", route.uploadController.UploadFromURL)
}
