package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	exportout "umusanzu/internal/modules/export/port/out"
)

// FileDownloadSink writes export documents into a local directory.
type FileDownloadSink struct {
	dir string
}

func NewFileDownloadSink(dir string) exportout.DownloadSink {
	return &FileDownloadSink{dir: dir}
}

func (s *FileDownloadSink) Save(_ context.Context, filename, content string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(s.dir, filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}
