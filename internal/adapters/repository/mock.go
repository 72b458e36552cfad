package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"
	"github.com/stretchr/testify/mock"
)

type MockProjectRepository struct {
	mock.Mock
}

func NewMockProjectRepository() *MockProjectRepository {
	return &MockProjectRepository{}
}

func (m *MockProjectRepository) Save(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	args := m.Called(ctx, project)
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByName(ctx context.Context, name string) (*domain.Project, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindByNameAndOwner(ctx context.Context, name, ownerRef string) (*domain.Project, error) {
	args := m.Called(ctx, name, ownerRef)
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListAll(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByOwner(ctx context.Context, ownerRef string) ([]domain.Project, error) {
	args := m.Called(ctx, ownerRef)
	return args.Get(0).([]domain.Project), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	projectRepo *MockProjectRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		projectRepo: &MockProjectRepository{},
	}
}

func (m *MockUnitOfWork) ProjectRepo() port.ProjectRepository {
	return m.projectRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetProjectRepoMock() *MockProjectRepository {
	return m.projectRepo
}
