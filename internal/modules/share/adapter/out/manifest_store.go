package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"umusanzu/internal/modules/share/domain"
	shareout "umusanzu/internal/modules/share/port/out"
)

type FileManifestStore struct {
	path string
}

// NewFileManifestStore reads plugin manifests from the JSON file at path.
// Relative binary paths in the manifest are resolved against the file's
// directory.
func NewFileManifestStore(path string) shareout.ManifestStore {
	return &FileManifestStore{path: path}
}

func (s *FileManifestStore) Load(_ context.Context) ([]domain.Manifest, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []domain.Manifest{}, nil
		}
		return nil, fmt.Errorf("read share manifest store: %w", err)
	}
	var manifests []domain.Manifest
	decoder := json.NewDecoder(bytes.NewReader(b))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&manifests); err != nil {
		return nil, fmt.Errorf("decode share manifests: %w", err)
	}
	for i := range manifests {
		if manifests[i].Binary != "" && !filepath.IsAbs(manifests[i].Binary) {
			manifests[i].Binary = filepath.Clean(filepath.Join(filepath.Dir(s.path), manifests[i].Binary))
		}
	}
	return manifests, nil
}
