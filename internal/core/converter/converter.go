package converter

import (
	"time"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
)

// ToDocument maps a persisted project to its wire representation. The fresh
// flag distinguishes a freshly persisted view from a listing entry.
func ToDocument(project *domain.Project, fresh bool) *domain.ProjectDocument {
	doc := &domain.ProjectDocument{
		ProjectID:       project.ID.String(),
		ProjectName:     project.Name,
		UserHref:        project.OwnerRef,
		Status:          string(project.Status),
		StartTimestamp:  project.StartTimestamp,
		EndTimestamp:    project.EndTimestamp,
		AgreementStatus: project.AgreementStatus,
		Price:           project.Price,
		FileInfos:       make([]domain.FileInfoDocument, 0, len(project.FileInfos)),
		CreatedAt:       project.CreatedAt,
		Fresh:           fresh,
	}
	for _, info := range project.FileInfos {
		doc.FileInfos = append(doc.FileInfos, ToFileInfoDocument(info))
	}
	return doc
}

// ToFileInfoDocument maps a file info to its wire representation
func ToFileInfoDocument(info domain.FileInfo) domain.FileInfoDocument {
	return domain.FileInfoDocument{
		FileInfoID:     info.ID.String(),
		BasePointID:    info.BasePointID,
		FileType:       string(info.FileType),
		StoredFileRefs: info.StoredFileRefs,
	}
}

// NewFileInfo composes a file info from an upload result and the caller's
// file info request, carrying the base point id and file type through
func NewFileInfo(result *domain.UploadResult, request domain.FileInfoRequest, fileType domain.FileType) domain.FileInfo {
	refs := make([]string, len(result.StoredFileRefs))
	copy(refs, result.StoredFileRefs)
	return domain.FileInfo{
		ID:             uuid.New(),
		BasePointID:    request.BasePointID,
		FileType:       fileType,
		StoredFileRefs: refs,
		CreatedAt:      time.Now().UTC(),
	}
}
