package cleanup

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// SweepStagedFiles removes staged uploads older than the cutoff. Files left
// behind by attachments that persisted but failed the best-effort discard,
// or by requests that never reached the uploader, accumulate here. Removal
// failures are logged per file and do not abort the sweep.
func (c *cleanupService) SweepStagedFiles(ctx context.Context, olderThan time.Time) error {

	entries, err := os.ReadDir(c.stagingDir)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not read staging dir: %w", err)
	}

	var swept int
	for _, entry := range entries {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() {
			continue
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			c.logger.Error("could not stat staged file", "file", entry.Name(), "error", infoErr)
			continue
		}
		if !info.ModTime().Before(olderThan) {
			continue
		}

		if removeErr := os.Remove(filepath.Join(c.stagingDir, entry.Name())); removeErr != nil {
			c.logger.Error("could not remove staged file", "file", entry.Name(), "error", removeErr)
			continue
		}
		swept++
	}

	c.logger.Info("staging sweep completed", "swept", swept)
	return nil
}
