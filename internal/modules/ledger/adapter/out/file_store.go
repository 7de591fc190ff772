package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	ledgerout "umusanzu/internal/modules/ledger/port/out"
)

// FileStore keeps each key in its own file under the ledger directory, the
// same way the browser original kept one localStorage entry per category.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) ledgerout.Store {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read ledger key %s: %w", key, err)
	}
	return string(raw), true, nil
}

func (s *FileStore) Set(_ context.Context, key, value string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}
	if err := os.WriteFile(s.path(key), []byte(value), 0o644); err != nil {
		return fmt.Errorf("write ledger key %s: %w", key, err)
	}
	return nil
}

func (s *FileStore) Remove(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("remove ledger key %s: %w", key, err)
	}
	return nil
}
