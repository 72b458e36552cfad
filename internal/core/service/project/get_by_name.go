package project

import (
	"context"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
)

// GetByName returns the project with the given name, or
// domain.ErrProjectNotFound when no such project exists.
func (s *projectService) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	return s.uow.ProjectRepo().FindByName(ctx, name)
}
