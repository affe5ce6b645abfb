// Package config holds the explicit application configuration.
// There is no process-wide singleton: main loads a Config once and
// passes it down to the components that need it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v2"

	"github.com/lxltx2025/nsfcwriter/internal/llm"
)

// LiteratureConfig controls chunking and retrieval for the literature store.
type LiteratureConfig struct {
	ChunkSize    int `yaml:"chunk_size"`
	ChunkOverlap int `yaml:"chunk_overlap"`
	TopK         int `yaml:"top_k"`
}

// Config is the full application configuration.
type Config struct {
	// DBPath is the SQLite file backing the literature store.
	DBPath     string           `yaml:"db_path"`
	Literature LiteratureConfig `yaml:"literature"`

	// LLM is populated from its own defaults/env, not from the YAML file;
	// see llm.LoadConfig.
	LLM llm.Config `yaml:"-"`
}

// Default returns a Config with built-in defaults. The literature store
// lives under ~/.nsfcwriter by default.
func Default() Config {
	dbPath := "nsfcwriter.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".nsfcwriter", "nsfcwriter.db")
	}
	return Config{
		DBPath: dbPath,
		Literature: LiteratureConfig{
			ChunkSize:    500,
			ChunkOverlap: 100,
			TopK:         5,
		},
		LLM: llm.DefaultConfig(),
	}
}

// Load builds the effective configuration: defaults, then the YAML file
// at path (if it exists), then NSFC_* environment variables.
// An empty path means "no config file".
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config file: %w", err)
			}
		} else if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	cfg.LLM = llm.LoadConfig()

	if cfg.Literature.ChunkSize <= 0 {
		return cfg, fmt.Errorf("literature.chunk_size must be positive, got %d", cfg.Literature.ChunkSize)
	}
	if cfg.Literature.ChunkOverlap < 0 || cfg.Literature.ChunkOverlap >= cfg.Literature.ChunkSize {
		return cfg, fmt.Errorf("literature.chunk_overlap must be in [0, chunk_size), got %d", cfg.Literature.ChunkOverlap)
	}
	if cfg.Literature.TopK <= 0 {
		return cfg, fmt.Errorf("literature.top_k must be positive, got %d", cfg.Literature.TopK)
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NSFC_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NSFC_LITERATURE_TOP_K"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Literature.TopK = n
		}
	}
	if v := os.Getenv("NSFC_LITERATURE_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Literature.ChunkSize = n
		}
	}
	if v := os.Getenv("NSFC_LITERATURE_CHUNK_OVERLAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Literature.ChunkOverlap = n
		}
	}
}
