package completion

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
)

// HandleMessage parses a completion event and applies the status transition
// to the referenced project. A project id that does not resolve is logged
// and acknowledged, not retried.
func (c *completionService) HandleMessage(ctx context.Context, data []byte) error {

	var event domain.CompletionEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("could not decode completion event: %w", err)
	}

	projectID, err := uuid.Parse(event.ProjectID)
	if err != nil {
		return fmt.Errorf("invalid project id in completion event: %w", err)
	}

	updated, err := c.projectService.CompleteProject(ctx, projectID, event.Outcome)
	if err != nil {
		return fmt.Errorf("could not complete project %s: %w", event.ProjectID, err)
	}

	if !updated {
		c.logger.Warn("completion event for unknown project", "project_id", event.ProjectID, "outcome", event.Outcome)
		return nil
	}

	c.logger.Info("completion event applied", "project_id", event.ProjectID, "outcome", event.Outcome)
	return nil
}
