package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
)

// ProjectRepository is an interface to define project repository interactions
type ProjectRepository interface {
	Save(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	FindByName(ctx context.Context, name string) (*domain.Project, error)
	FindByNameAndOwner(ctx context.Context, name, ownerRef string) (*domain.Project, error)
	ListAll(ctx context.Context) ([]domain.Project, error)
	ListByOwner(ctx context.Context, ownerRef string) ([]domain.Project, error)
}

// ProjectService is an interface to define the project service
type ProjectService interface {
	CheckNameAvailability(ctx context.Context, name, ownerRef string) (*domain.NameAvailability, error)
	SaveOrUpdate(ctx context.Context, project *domain.Project) (*domain.ProjectDocument, error)
	AttachFile(ctx context.Context, dirHint string, projectID uuid.UUID, request domain.FileInfoRequest, fileType domain.FileType, files []domain.UploadFile) (*domain.AttachResult, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	CompleteProject(ctx context.Context, projectID uuid.UUID, outcome string) (bool, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListByOwner(ctx context.Context, ownerRef string) ([]domain.Project, error)
}
