package project

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/converter"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"
)

// SaveOrUpdate persists the project inside one unit of work and returns the
// document view of the persisted state. A project without an id is treated
// as new and gets its identity assigned here. An update carries the stored
// status and creation time forward unless the caller sets a status itself.
func (s *projectService) SaveOrUpdate(ctx context.Context, project *domain.Project) (*domain.ProjectDocument, error) {

	if project == nil {
		return nil, fmt.Errorf("%w: project is required", domain.ErrInvalidArgument)
	}

	if project.ID == uuid.Nil {
		project.ID = uuid.New()
		initAsNew(project)
	} else {
		existing, findErr := s.uow.ProjectRepo().FindByID(ctx, project.ID)
		switch {
		case errors.Is(findErr, domain.ErrProjectNotFound):
			initAsNew(project)
		case findErr != nil:
			return nil, fmt.Errorf("could not resolve project: %w", findErr)
		default:
			project.CreatedAt = existing.CreatedAt
			if project.Status == "" {
				project.Status = existing.Status
			}
		}
	}

	var saved *domain.Project
	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		var saveErr error
		saved, saveErr = uow.ProjectRepo().Save(ctx, project)
		return saveErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("could not save project: %w", txErr)
	}

	s.logger.Info("project saved", "project_id", saved.ID, "project_name", saved.Name)

	return converter.ToDocument(saved, true), nil
}

func initAsNew(project *domain.Project) {
	project.CreatedAt = time.Now().UTC()
	if project.Status == "" {
		project.Status = domain.ProjectStatusCreated
	}
}
