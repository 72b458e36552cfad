package storage

import (
	"context"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

type MockUploader struct {
	mock.Mock
}

func NewMockUploader() *MockUploader {
	return &MockUploader{}
}

func (m *MockUploader) Upload(ctx context.Context, dirHint string, files []domain.UploadFile, projectName string, fileType domain.FileType) (*domain.UploadResult, error) {
	args := m.Called(ctx, dirHint, files, projectName, fileType)
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}

func (m *MockUploader) DiscardStaged(fileName string) error {
	args := m.Called(fileName)
	return args.Error(0)
}
