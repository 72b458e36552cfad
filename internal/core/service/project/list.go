package project

import (
	"context"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
)

// List returns all projects ordered by creation time, newest first
func (s *projectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.uow.ProjectRepo().ListAll(ctx)
}

// ListByOwner returns the owner's projects ordered by creation time, newest first
func (s *projectService) ListByOwner(ctx context.Context, ownerRef string) ([]domain.Project, error) {
	return s.uow.ProjectRepo().ListByOwner(ctx, ownerRef)
}
