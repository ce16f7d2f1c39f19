// Package outdir manages the directory a merge run writes into.
package outdir

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// ErrExists is returned by Prepare when the directory is already there and
// force was not requested.
var ErrExists = errors.New("output directory already exists")

// Prepare makes dir a fresh, empty directory. An existing dir is rejected
// with ErrExists unless force is set, in which case it is removed first.
func Prepare(dir string, force bool, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	_, err := os.Stat(dir)
	switch {
	case err == nil:
		if !force {
			return fmt.Errorf("%w: %q, remove it first or choose another one", ErrExists, dir)
		}
		if err := os.RemoveAll(dir); err != nil {
			logger.Error("Failed to remove output directory", zap.String("path", dir), zap.Error(err))
			return fmt.Errorf("failed to remove output directory: %w", err)
		}
		logger.Debug("Removed existing output directory", zap.String("path", dir))
	case !errors.Is(err, fs.ErrNotExist):
		logger.Error("Failed to stat output directory", zap.String("path", dir), zap.Error(err))
		return fmt.Errorf("failed to stat output directory: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("Failed to create directory", zap.String("path", dir), zap.Error(err))
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	logger.Debug("Ensured directory exists", zap.String("path", dir))
	return nil
}
