package cleanup

import (
	"log/slog"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"
)

type cleanupService struct {
	stagingDir string
	logger     *slog.Logger
}

// NewCleanupService creates a new cleanup service for the staging directory
func NewCleanupService(stagingDir string, logger *slog.Logger) port.CleanupService {
	return &cleanupService{
		stagingDir: stagingDir,
		logger:     logger,
	}
}
