package project

import (
	"log/slog"

	"github.com/soapking/-bhoomitech-portal-service/internal/config"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for v1 project routes
type HandlerV1 struct {
	projectService port.ProjectService
	uploadCfg      config.FileUploadConfig
	logger         *slog.Logger
}

// NewProjectHandlerV1 creates HandlerV1
func NewProjectHandlerV1(service port.ProjectService, uploadCfg config.FileUploadConfig, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		projectService: service,
		uploadCfg:      uploadCfg,
		logger:         logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.SaveProjectV1)
	router.Get("/", h.ListProjectsV1)
	router.Get("/check-name", h.CheckNameV1)
	router.Get("/by-name/{projectName}", h.GetByNameV1)
	router.Post("/{projectID}/file", h.AttachFileV1)
	router.Post("/{projectID}/complete", h.CompleteProjectV1)

	return router
}
