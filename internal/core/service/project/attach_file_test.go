package project_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/soapking/-bhoomitech-portal-service/internal/adapters/repository"
	"github.com/soapking/-bhoomitech-portal-service/internal/adapters/storage"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var attachFiles = []domain.UploadFile{
	{Name: "bp1.obs", ContentType: "application/octet-stream", SizeBytes: 512, StagedPath: "tmp/staging/bp1.obs"},
	{Name: "bp1.nav", ContentType: "application/octet-stream", SizeBytes: 256, StagedPath: "tmp/staging/bp1.nav"},
}

func TestProjectService_AttachFile_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockUploader := storage.NewMockUploader()
	service := newService(mockUow, mockUploader)

	projectID := uuid.New()
	proj := &domain.Project{ID: projectID, Name: "survey-galle", Status: domain.ProjectStatusCreated}
	request := domain.FileInfoRequest{BasePointID: "bp1"}
	uploadResult := &domain.UploadResult{
		FileNames:      []string{"bp1.obs", "bp1.nav"},
		StoredFileRefs: []string{"survey-galle/rinex/bp1.obs", "survey-galle/rinex/bp1.nav"},
	}

	mockUow.GetProjectRepoMock().
		On("FindByID", ctx, projectID).
		Return(proj, nil)
	mockUploader.
		On("Upload", ctx, "day-1", attachFiles, "survey-galle", domain.FileTypeRinex).
		Return(uploadResult, nil)
	mockUow.GetProjectRepoMock().
		On("Save", ctx, proj).
		Return(proj, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUploader.On("DiscardStaged", "bp1.obs").Return(nil)
	mockUploader.On("DiscardStaged", "bp1.nav").Return(nil)

	// Act
	result, err := service.AttachFile(ctx, "day-1", projectID, request, domain.FileTypeRinex, attachFiles)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, domain.AttachCreated, result.Status)
	assert.Equal(t, "successfully created", result.Status.Message())
	require.NotNil(t, result.FileInfo)
	assert.Equal(t, "bp1", result.FileInfo.BasePointID)
	assert.Equal(t, domain.FileTypeRinex, result.FileInfo.FileType)
	assert.Equal(t, projectID, result.FileInfo.ProjectID)
	assert.Equal(t, uploadResult.StoredFileRefs, result.FileInfo.StoredFileRefs)
	require.Len(t, proj.FileInfos, 1)
	mockUow.AssertExpectations(t)
	mockUploader.AssertExpectations(t)
	mockUow.GetProjectRepoMock().AssertExpectations(t)
}

func TestProjectService_AttachFile_TwoDistinctBasePoints(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockUploader := storage.NewMockUploader()
	service := newService(mockUow, mockUploader)

	projectID := uuid.New()
	proj := &domain.Project{ID: projectID, Name: "survey-galle", Status: domain.ProjectStatusCreated}
	uploadResult := &domain.UploadResult{FileNames: []string{"f"}, StoredFileRefs: []string{"ref"}}

	mockUow.GetProjectRepoMock().On("FindByID", ctx, projectID).Return(proj, nil)
	mockUploader.On("Upload", ctx, "", mock.Anything, "survey-galle", domain.FileTypeObservation).Return(uploadResult, nil)
	mockUow.GetProjectRepoMock().On("Save", ctx, proj).Return(proj, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUploader.On("DiscardStaged", "f").Return(nil)

	// Act
	first, err1 := service.AttachFile(ctx, "", projectID, domain.FileInfoRequest{BasePointID: "bp1"}, domain.FileTypeObservation, attachFiles[:1])
	second, err2 := service.AttachFile(ctx, "", projectID, domain.FileInfoRequest{BasePointID: "bp2"}, domain.FileTypeObservation, attachFiles[:1])

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, domain.AttachCreated, first.Status)
	assert.Equal(t, domain.AttachCreated, second.Status)
	require.Len(t, proj.FileInfos, 2)
	assert.Equal(t, "bp1", proj.FileInfos[0].BasePointID)
	assert.Equal(t, "bp2", proj.FileInfos[1].BasePointID)
}

func TestProjectService_AttachFile_DuplicateBasePoint(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockUploader := storage.NewMockUploader()
	service := newService(mockUow, mockUploader)

	projectID := uuid.New()
	proj := &domain.Project{
		ID:     projectID,
		Name:   "survey-galle",
		Status: domain.ProjectStatusCreated,
		FileInfos: []domain.FileInfo{
			{ID: uuid.New(), ProjectID: projectID, BasePointID: "bp1", FileType: domain.FileTypeRinex},
		},
	}

	mockUow.GetProjectRepoMock().On("FindByID", ctx, projectID).Return(proj, nil)

	// Act
	result, err := service.AttachFile(ctx, "", projectID, domain.FileInfoRequest{BasePointID: "bp1"}, domain.FileTypeRinex, attachFiles)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.AttachDuplicateBasePoint, result.Status)
	assert.Equal(t, "cannot duplicate base point id in a single project", result.Status.Message())
	assert.Nil(t, result.FileInfo)
	require.Len(t, proj.FileInfos, 1)
	mockUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockUow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProjectService_AttachFile_ProjectNotFound(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockUploader := storage.NewMockUploader()
	service := newService(mockUow, mockUploader)

	projectID := uuid.New()
	mockUow.GetProjectRepoMock().
		On("FindByID", ctx, projectID).
		Return((*domain.Project)(nil), domain.ErrProjectNotFound)

	// Act
	result, err := service.AttachFile(ctx, "", projectID, domain.FileInfoRequest{BasePointID: "bp1"}, domain.FileTypeRinex, attachFiles)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.AttachProjectNotFound, result.Status)
	assert.Equal(t, "project not exists", result.Status.Message())
	mockUploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockUow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProjectService_AttachFile_UploadFails(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockUploader := storage.NewMockUploader()
	service := newService(mockUow, mockUploader)

	projectID := uuid.New()
	proj := &domain.Project{ID: projectID, Name: "survey-galle", Status: domain.ProjectStatusCreated}

	mockUow.GetProjectRepoMock().On("FindByID", ctx, projectID).Return(proj, nil)
	mockUploader.
		On("Upload", ctx, "", attachFiles, "survey-galle", domain.FileTypeRinex).
		Return((*domain.UploadResult)(nil), errors.New("bucket unreachable"))

	// Act
	result, err := service.AttachFile(ctx, "", projectID, domain.FileInfoRequest{BasePointID: "bp1"}, domain.FileTypeRinex, attachFiles)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	assert.Nil(t, result)
	assert.Empty(t, proj.FileInfos)
	mockUow.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProjectService_AttachFile_SaveFails(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockUploader := storage.NewMockUploader()
	service := newService(mockUow, mockUploader)

	projectID := uuid.New()
	proj := &domain.Project{ID: projectID, Name: "survey-galle", Status: domain.ProjectStatusCreated}
	uploadResult := &domain.UploadResult{FileNames: []string{"f"}, StoredFileRefs: []string{"ref"}}
	saveErr := errors.New("db error")

	mockUow.GetProjectRepoMock().On("FindByID", ctx, projectID).Return(proj, nil)
	mockUploader.On("Upload", ctx, "", attachFiles, "survey-galle", domain.FileTypeRinex).Return(uploadResult, nil)
	mockUow.GetProjectRepoMock().On("Save", ctx, proj).Return((*domain.Project)(nil), saveErr)
	mockUow.On("Execute", ctx, mock.Anything).Return(saveErr)

	// Act
	result, err := service.AttachFile(ctx, "", projectID, domain.FileInfoRequest{BasePointID: "bp1"}, domain.FileTypeRinex, attachFiles)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, result)
	mockUploader.AssertNotCalled(t, "DiscardStaged", mock.Anything)
}

func TestProjectService_AttachFile_StorageLevelDuplicate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockUploader := storage.NewMockUploader()
	service := newService(mockUow, mockUploader)

	projectID := uuid.New()
	proj := &domain.Project{ID: projectID, Name: "survey-galle", Status: domain.ProjectStatusCreated}
	uploadResult := &domain.UploadResult{FileNames: []string{"f"}, StoredFileRefs: []string{"ref"}}

	mockUow.GetProjectRepoMock().On("FindByID", ctx, projectID).Return(proj, nil)
	mockUploader.On("Upload", ctx, "", attachFiles, "survey-galle", domain.FileTypeRinex).Return(uploadResult, nil)
	mockUow.GetProjectRepoMock().On("Save", ctx, proj).Return((*domain.Project)(nil), domain.ErrDuplicateBasePoint)
	mockUow.On("Execute", ctx, mock.Anything).Return(domain.ErrDuplicateBasePoint)

	// Act
	result, err := service.AttachFile(ctx, "", projectID, domain.FileInfoRequest{BasePointID: "bp1"}, domain.FileTypeRinex, attachFiles)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.AttachDuplicateBasePoint, result.Status)
}

func TestProjectService_AttachFile_DiscardFailureDoesNotAbort(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockUploader := storage.NewMockUploader()
	service := newService(mockUow, mockUploader)

	projectID := uuid.New()
	proj := &domain.Project{ID: projectID, Name: "survey-galle", Status: domain.ProjectStatusCreated}
	uploadResult := &domain.UploadResult{
		FileNames:      []string{"bp1.obs", "bp1.nav"},
		StoredFileRefs: []string{"ref1", "ref2"},
	}

	mockUow.GetProjectRepoMock().On("FindByID", ctx, projectID).Return(proj, nil)
	mockUploader.On("Upload", ctx, "", attachFiles, "survey-galle", domain.FileTypeRinex).Return(uploadResult, nil)
	mockUow.GetProjectRepoMock().On("Save", ctx, proj).Return(proj, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	mockUploader.On("DiscardStaged", "bp1.obs").Return(errors.New("permission denied"))
	mockUploader.On("DiscardStaged", "bp1.nav").Return(nil)

	// Act
	result, err := service.AttachFile(ctx, "", projectID, domain.FileInfoRequest{BasePointID: "bp1"}, domain.FileTypeRinex, attachFiles)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, domain.AttachCreated, result.Status)
	mockUploader.AssertExpectations(t)
}

func TestProjectService_AttachFile_MissingBasePointID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	service := newService(repository.NewMockUnitOfWork(), storage.NewMockUploader())

	// Act
	result, err := service.AttachFile(ctx, "", uuid.New(), domain.FileInfoRequest{}, domain.FileTypeRinex, attachFiles)

	// Assert
	assert.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Nil(t, result)
}

func TestProjectService_AttachFile_ConcurrentSameBasePoint(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := repository.NewMockUnitOfWork()
	mockUploader := storage.NewMockUploader()
	service := newService(mockUow, mockUploader)

	projectID := uuid.New()
	proj := &domain.Project{ID: projectID, Name: "survey-galle", Status: domain.ProjectStatusCreated}
	uploadResult := &domain.UploadResult{FileNames: []string{"bp1.obs"}, StoredFileRefs: []string{"survey-galle/rinex/bp1.obs"}}

	mockUow.GetProjectRepoMock().On("FindByID", ctx, projectID).Return(proj, nil)
	mockUow.GetProjectRepoMock().On("Save", ctx, proj).Return(proj, nil)
	mockUow.On("Execute", ctx, mock.Anything).Return(nil)
	// a slow upload keeps the first attach inside the critical section while
	// the second one is already waiting on the same project id
	mockUploader.
		On("Upload", ctx, "", mock.Anything, "survey-galle", domain.FileTypeRinex).
		Run(func(args mock.Arguments) { time.Sleep(50 * time.Millisecond) }).
		Return(uploadResult, nil)
	mockUploader.On("DiscardStaged", "bp1.obs").Return(nil)

	request := domain.FileInfoRequest{BasePointID: "bp1"}

	// Act
	statuses := make(chan domain.AttachStatus, 2)
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := service.AttachFile(ctx, "", projectID, request, domain.FileTypeRinex, attachFiles[:1])
			assert.NoError(t, err)
			if result != nil {
				statuses <- result.Status
			}
		}()
	}
	wg.Wait()
	close(statuses)

	// Assert
	var created, duplicate int
	for status := range statuses {
		switch status {
		case domain.AttachCreated:
			created++
		case domain.AttachDuplicateBasePoint:
			duplicate++
		}
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, 1, duplicate)
	require.Len(t, proj.FileInfos, 1)
	mockUploader.AssertNumberOfCalls(t, "Upload", 1)
	mockUow.GetProjectRepoMock().AssertNumberOfCalls(t, "Save", 1)
}
