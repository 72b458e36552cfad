package project_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/adapters/repository"
	"github.com/soapking/-bhoomitech-portal-service/internal/adapters/storage"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectService_GetByName_Found(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newService(mockUow, storage.NewMockUploader())

	proj := &domain.Project{ID: uuid.New(), Name: "survey-galle"}
	mockUow.GetProjectRepoMock().On("FindByName", ctx, "survey-galle").Return(proj, nil)

	// Act
	found, err := service.GetByName(ctx, "survey-galle")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, proj, found)
}

func TestProjectService_GetByName_NotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	service := newService(mockUow, storage.NewMockUploader())

	mockUow.GetProjectRepoMock().
		On("FindByName", ctx, "missing").
		Return((*domain.Project)(nil), domain.ErrProjectNotFound)

	// Act
	found, err := service.GetByName(ctx, "missing")

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	assert.Nil(t, found)
}
