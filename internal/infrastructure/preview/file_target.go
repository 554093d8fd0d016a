// Package preview implements preview targets outside of a GUI toolkit.
package preview

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// FileTarget writes every applied stylesheet to a file that an external
// toolkit can load. The file is replaced atomically.
type FileTarget struct {
	path string
}

// NewFileTarget creates a target writing to path.
func NewFileTarget(path string) *FileTarget {
	return &FileTarget{path: path}
}

// Path returns the stylesheet path.
func (t *FileTarget) Path() string { return t.path }

// Apply implements port.PreviewTarget.
func (t *FileTarget) Apply(ctx context.Context, frame port.PreviewFrame) error {
	if t.path == "" {
		return fmt.Errorf("preview stylesheet path is empty")
	}

	dir := filepath.Dir(t.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create preview directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".preview-*.css")
	if err != nil {
		return fmt.Errorf("failed to create temp stylesheet: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(frame.CSS); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write stylesheet: %w", err)
	}
	if err := os.Rename(tmp.Name(), t.path); err != nil {
		return fmt.Errorf("failed to replace stylesheet: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", t.path).Int("bytes", len(frame.CSS)).Msg("preview stylesheet written")
	return nil
}

var _ port.PreviewTarget = (*FileTarget)(nil)
