package project

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"
)

// CompleteProject applies the processing outcome to a project's status.
// SUCCESS moves the project to SUBMITTED, ERROR to ERROR, any other outcome
// leaves the status untouched. The project is re-saved whenever it was
// found, even on an unrecognized outcome. Returns false when the id does
// not resolve.
func (s *projectService) CompleteProject(ctx context.Context, projectID uuid.UUID, outcome string) (bool, error) {

	if outcome == "" {
		return false, fmt.Errorf("%w: outcome is required", domain.ErrInvalidArgument)
	}

	proj, err := s.uow.ProjectRepo().FindByID(ctx, projectID)
	if errors.Is(err, domain.ErrProjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("could not resolve project: %w", err)
	}

	switch strings.ToUpper(outcome) {
	case "SUCCESS":
		proj.Status = domain.ProjectStatusSubmitted
	case "ERROR":
		proj.Status = domain.ProjectStatusError
	}

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		_, saveErr := uow.ProjectRepo().Save(ctx, proj)
		return saveErr
	})
	if txErr != nil {
		return false, fmt.Errorf("could not save project status: %w", txErr)
	}

	s.logger.Info("project completion applied", "project_id", projectID, "outcome", outcome, "status", proj.Status)

	return true, nil
}
