package port

import (
	"context"
	"time"
)

// CleanupService is a service that handles cleanup of stale staged uploads
type CleanupService interface {
	SweepStagedFiles(ctx context.Context, olderThan time.Time) error
}
