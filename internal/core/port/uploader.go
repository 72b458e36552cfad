package port

import (
	"context"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
)

// FileUploader is an interface to define file storage interactions.
// Upload is a blocking call against the storage backend; its failure is
// opaque to the core and propagates as a hard error.
type FileUploader interface {
	Upload(ctx context.Context, dirHint string, files []domain.UploadFile, projectName string, fileType domain.FileType) (*domain.UploadResult, error)
	DiscardStaged(fileName string) error
}
