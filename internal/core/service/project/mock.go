package project

import (
	"context"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) CheckNameAvailability(ctx context.Context, name, ownerRef string) (*domain.NameAvailability, error) {
	args := m.Called(ctx, name, ownerRef)
	return args.Get(0).(*domain.NameAvailability), args.Error(1)
}

func (m *MockProjectService) SaveOrUpdate(ctx context.Context, project *domain.Project) (*domain.ProjectDocument, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(*domain.ProjectDocument), args.Error(1)
}

func (m *MockProjectService) AttachFile(ctx context.Context, dirHint string, projectID uuid.UUID, request domain.FileInfoRequest, fileType domain.FileType, files []domain.UploadFile) (*domain.AttachResult, error) {
	args := m.Called(ctx, dirHint, projectID, request, fileType, files)
	return args.Get(0).(*domain.AttachResult), args.Error(1)
}

func (m *MockProjectService) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) CompleteProject(ctx context.Context, projectID uuid.UUID, outcome string) (bool, error) {
	args := m.Called(ctx, projectID, outcome)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectService) ListByOwner(ctx context.Context, ownerRef string) ([]domain.Project, error) {
	args := m.Called(ctx, ownerRef)
	return args.Get(0).([]domain.Project), args.Error(1)
}
