package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDatasetURL = "https://raw.githubusercontent.com/kirundi-dataset/corpus/main/metadata.csv"
	DefaultPromptsURL = "https://raw.githubusercontent.com/kirundi-dataset/corpus/main/french_prompts.txt"

	defaultBatchSize = 10
	defaultLocale    = "fr"
)

type Config struct {
	DataDir string `yaml:"-"`

	DatasetURL string `yaml:"dataset_url"`
	PromptsURL string `yaml:"prompts_url"`
	BatchSize  int    `yaml:"batch_size"`
	Locale     string `yaml:"locale"`

	ExportDir      string `yaml:"export_dir"`
	SubmissionsDir string `yaml:"submissions_dir"`
	ProcessedDir   string `yaml:"processed_dir"`
	MasterPath     string `yaml:"master_path"`

	LedgerBackend string `yaml:"ledger_backend"`
	RedisURL      string `yaml:"redis_url"`

	ArchivePath  string `yaml:"-"`
	LedgerPath   string `yaml:"-"`
	ManifestPath string `yaml:"-"`
}

// Load builds the configuration for a data directory, applying the config
// file at <dataDir>/config.yaml over the defaults. A missing file is not an
// error; a malformed one is.
func Load(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}

	cfg := Config{
		DataDir:       dataDir,
		DatasetURL:    DefaultDatasetURL,
		PromptsURL:    DefaultPromptsURL,
		BatchSize:     defaultBatchSize,
		Locale:        defaultLocale,
		LedgerBackend: "file",
	}

	path := filepath.Join(dataDir, "config.yaml")
	raw, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	if cfg.BatchSize <= 0 {
		return Config{}, fmt.Errorf("batch_size must be positive")
	}
	switch cfg.LedgerBackend {
	case "file", "redis":
	default:
		return Config{}, fmt.Errorf("ledger_backend must be file or redis, got %q", cfg.LedgerBackend)
	}
	if cfg.LedgerBackend == "redis" && cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("redis_url is required when ledger_backend is redis")
	}
	switch cfg.Locale {
	case "fr", "rn":
	default:
		return Config{}, fmt.Errorf("locale must be fr or rn, got %q", cfg.Locale)
	}

	if cfg.ExportDir == "" {
		cfg.ExportDir = filepath.Join(dataDir, "exports")
	}
	if cfg.SubmissionsDir == "" {
		cfg.SubmissionsDir = filepath.Join(dataDir, "submissions")
	}
	if cfg.ProcessedDir == "" {
		cfg.ProcessedDir = filepath.Join(dataDir, "processed_submissions")
	}
	if cfg.MasterPath == "" {
		cfg.MasterPath = filepath.Join(dataDir, "metadata.csv")
	}
	cfg.ArchivePath = filepath.Join(dataDir, ".umusanzu", "archive.db")
	cfg.LedgerPath = filepath.Join(dataDir, ".umusanzu", "ledger")
	cfg.ManifestPath = filepath.Join(dataDir, "plugins", "plugins.json")
	return cfg, nil
}
