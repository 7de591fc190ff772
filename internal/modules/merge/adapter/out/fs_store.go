package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mergeout "umusanzu/internal/modules/merge/port/out"
)

// FSStore is the on-disk layout of a merge run: a submissions directory, a
// processed directory, and the master dataset file.
type FSStore struct {
	submissionsDir string
	processedDir   string
	masterPath     string
}

func NewFSStore(submissionsDir, processedDir, masterPath string) mergeout.SubmissionStore {
	return &FSStore{
		submissionsDir: submissionsDir,
		processedDir:   processedDir,
		masterPath:     masterPath,
	}
}

func (s *FSStore) ListSubmissions(context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.submissionsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read submissions dir: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	return names, nil
}

func (s *FSStore) ReadSubmission(_ context.Context, name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.submissionsDir, name))
	if err != nil {
		return "", fmt.Errorf("read submission file: %w", err)
	}
	return string(data), nil
}

func (s *FSStore) MarkProcessed(_ context.Context, name string) error {
	if err := os.MkdirAll(s.processedDir, 0o755); err != nil {
		return fmt.Errorf("create processed dir: %w", err)
	}
	from := filepath.Join(s.submissionsDir, name)
	to := filepath.Join(s.processedDir, name)
	if err := os.Rename(from, to); err != nil {
		return fmt.Errorf("move processed file: %w", err)
	}
	return nil
}

func (s *FSStore) ReadMaster(context.Context) (string, error) {
	data, err := os.ReadFile(s.masterPath)
	if err != nil {
		return "", fmt.Errorf("read master file: %w", err)
	}
	return string(data), nil
}

func (s *FSStore) WriteMaster(_ context.Context, content string) error {
	tmp := s.masterPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write master temp: %w", err)
	}
	if err := os.Rename(tmp, s.masterPath); err != nil {
		return fmt.Errorf("replace master: %w", err)
	}
	return nil
}
