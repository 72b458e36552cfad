package project

import (
	"log/slog"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"
)

type projectService struct {
	uow      port.UnitOfWork
	uploader port.FileUploader
	locks    *projectLocks
	logger   *slog.Logger
}

// NewProjectService creates a new project service
func NewProjectService(uow port.UnitOfWork, uploader port.FileUploader, logger *slog.Logger) port.ProjectService {
	return &projectService{
		uow:      uow,
		uploader: uploader,
		locks:    newProjectLocks(),
		logger:   logger,
	}
}
