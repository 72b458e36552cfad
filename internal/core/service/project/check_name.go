package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
)

// CheckNameAvailability looks up an existing project by (name, owner) and
// reports whether the name is still free. Pure query, no side effects.
func (s *projectService) CheckNameAvailability(ctx context.Context, name, ownerRef string) (*domain.NameAvailability, error) {

	if name == "" || ownerRef == "" {
		return nil, fmt.Errorf("%w: project name and owner ref are required", domain.ErrInvalidArgument)
	}

	_, err := s.uow.ProjectRepo().FindByNameAndOwner(ctx, name, ownerRef)
	if errors.Is(err, domain.ErrProjectNotFound) {
		return domain.NameAvailable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not check project name: %w", err)
	}

	return domain.NameNotAvailable(), nil
}
