package cleanup_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/soapking/-bhoomitech-portal-service/internal/core/service/cleanup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupService_SweepStagedFiles(t *testing.T) {
	// Arrange
	ctx := context.Background()
	dir := t.TempDir()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := cleanup.NewCleanupService(dir, discardLogger)

	stale := filepath.Join(dir, "stale.obs")
	fresh := filepath.Join(dir, "fresh.obs")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o644))
	require.NoError(t, os.WriteFile(fresh, []byte("fresh"), 0o644))

	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(stale, old, old))

	// Act
	err := service.SweepStagedFiles(ctx, time.Now().Add(-time.Hour))

	// Assert
	require.NoError(t, err)
	_, statErr := os.Stat(stale)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(fresh)
	assert.NoError(t, statErr)
}

func TestCleanupService_SweepStagedFiles_MissingDir(t *testing.T) {
	// Arrange
	ctx := context.Background()
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := cleanup.NewCleanupService(filepath.Join(t.TempDir(), "nope"), discardLogger)

	// Act
	err := service.SweepStagedFiles(ctx, time.Now())

	// Assert
	assert.NoError(t, err)
}
