package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	exportout "focusdeck/internal/modules/export/port/out"
)

type FileWriter struct{}

func NewFileWriter() exportout.Writer {
	return FileWriter{}
}

func (FileWriter) Write(_ context.Context, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}
