package completion

import (
	"log/slog"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"
)

type completionService struct {
	projectService port.ProjectService
	logger         *slog.Logger
}

// NewCompletionService creates a handler for processing-pipeline completion events
func NewCompletionService(projectService port.ProjectService, logger *slog.Logger) port.MessageService {
	return &completionService{
		projectService: projectService,
		logger:         logger,
	}
}
