package minio

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/soapking/-bhoomitech-portal-service/internal/config"
	"github.com/soapking/-bhoomitech-portal-service/internal/core/domain"
)

// Adapter is an uploader backed by a minio bucket. Files arrive staged on
// local disk and are streamed into the bucket under a key derived from the
// project name, the file type and the caller's directory hint.
type Adapter struct {
	client     *minio.Client
	config     config.MinioConfig
	stagingDir string
	logger     *slog.Logger
}

// NewAdapter returns Adapter
func NewAdapter(ctx context.Context, cfg config.MinioConfig, uploadCfg config.FileUploadConfig, logger *slog.Logger) (*Adapter, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check if bucket exists: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	if err := os.MkdirAll(uploadCfg.StagingDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging dir: %w", err)
	}

	return &Adapter{client: client, config: cfg, stagingDir: uploadCfg.StagingDir, logger: logger}, nil
}

// Upload streams each staged file into the bucket and reports the staged
// names and the object keys written
func (a *Adapter) Upload(ctx context.Context, dirHint string, files []domain.UploadFile, projectName string, fileType domain.FileType) (*domain.UploadResult, error) {

	result := &domain.UploadResult{
		FileNames:      make([]string, 0, len(files)),
		StoredFileRefs: make([]string, 0, len(files)),
	}

	for _, file := range files {
		stagedPath := file.StagedPath
		if stagedPath == "" {
			stagedPath = filepath.Join(a.stagingDir, filepath.Base(file.Name))
		}

		reader, err := os.Open(stagedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open staged file %s: %w", file.Name, err)
		}

		objectKey := path.Join(projectName, string(fileType), dirHint, filepath.Base(file.Name))
		_, err = a.client.PutObject(ctx, a.config.BucketName, objectKey, reader, file.SizeBytes, minio.PutObjectOptions{
			ContentType: file.ContentType,
		})
		reader.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", file.Name, err)
		}

		a.logger.Info("file uploaded", "object_key", objectKey, "size_bytes", file.SizeBytes)

		result.FileNames = append(result.FileNames, filepath.Base(file.Name))
		result.StoredFileRefs = append(result.StoredFileRefs, objectKey)
	}

	return result, nil
}

// DiscardStaged removes a staged copy from the staging directory
func (a *Adapter) DiscardStaged(fileName string) error {
	return os.Remove(filepath.Join(a.stagingDir, filepath.Base(fileName)))
}
