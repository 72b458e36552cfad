package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/converter"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/port"
)

// AttachFile runs the file attachment workflow: resolve the project, reject
// duplicate base point ids, upload the staged files, append the composed file
// info and save the aggregate in one unit of work, then discard the staged
// copies best effort. Lookup misses and duplicates are soft outcomes carried
// in the result, not errors.
func (s *projectService) AttachFile(ctx context.Context, dirHint string, projectID uuid.UUID, request domain.FileInfoRequest, fileType domain.FileType, files []domain.UploadFile) (*domain.AttachResult, error) {

	if request.BasePointID == "" {
		return nil, fmt.Errorf("%w: base point id is required", domain.ErrInvalidArgument)
	}

	unlock := s.locks.Lock(projectID)
	defer unlock()

	proj, err := s.uow.ProjectRepo().FindByID(ctx, projectID)
	if errors.Is(err, domain.ErrProjectNotFound) {
		return &domain.AttachResult{Status: domain.AttachProjectNotFound}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not resolve project: %w", err)
	}

	if proj.HasBasePoint(request.BasePointID) {
		return &domain.AttachResult{Status: domain.AttachDuplicateBasePoint}, nil
	}
	s.logger.Info("project is not having the same base point id", "project_id", projectID, "base_point_id", request.BasePointID)

	result, err := s.uploader.Upload(ctx, dirHint, files, proj.Name, fileType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrUploadFailed, err)
	}

	info := converter.NewFileInfo(result, request, fileType)
	info.ProjectID = proj.ID

	txErr := s.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		proj.FileInfos = append(proj.FileInfos, info)
		_, saveErr := uow.ProjectRepo().Save(ctx, proj)
		return saveErr
	})
	if errors.Is(txErr, domain.ErrDuplicateBasePoint) {
		// lost a race against a concurrent attach, the storage constraint wins
		return &domain.AttachResult{Status: domain.AttachDuplicateBasePoint}, nil
	}
	if txErr != nil {
		return nil, fmt.Errorf("could not save project file info: %w", txErr)
	}

	for _, fileName := range result.FileNames {
		if discardErr := s.uploader.DiscardStaged(fileName); discardErr != nil {
			s.logger.Error("an error occurred while deleting a staged file", "file", fileName, "error", discardErr)
			continue
		}
		s.logger.Info("deleted the staged file", "file", fileName)
	}

	return &domain.AttachResult{Status: domain.AttachCreated, FileInfo: &info}, nil
}
