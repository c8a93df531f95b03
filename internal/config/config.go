// Package config provides configuration loading and structs for nukigaki.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application.
type Config struct {
	Debug     bool            `yaml:"debug"`
	Server    ServerConfig    `yaml:"server"`
	Embedding EmbeddingConfig `yaml:"embedding"`
	Selection SelectionConfig `yaml:"selection"`
	Refine    RefineConfig    `yaml:"refine"`
	Workers   int             `yaml:"workers"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// EmbeddingConfig holds embedder settings. An empty ModelPath means the
// deterministic fallback embedder is used instead of ONNX.
type EmbeddingConfig struct {
	ModelPath  string `yaml:"model_path"`
	Dimensions int    `yaml:"dimensions"`
	MaxTokens  int    `yaml:"max_tokens"`
	CacheSize  int    `yaml:"cache_size"`
	BatchSize  int    `yaml:"batch_size"`
}

// SelectionConfig holds the diversity selection caps.
type SelectionConfig struct {
	// OverallCap is the maximum number of sections selected across all documents.
	OverallCap int `yaml:"overall_cap"`
	// PerDocumentCap is the maximum number of sections any one document may contribute.
	PerDocumentCap int `yaml:"per_document_cap"`
}

// RefineConfig holds sub-section refinement settings.
type RefineConfig struct {
	// ChunkSentences is the number of consecutive sentences per chunk.
	ChunkSentences int `yaml:"chunk_sentences"`
	// TopChunks is how many top-scored chunks are refined per section.
	TopChunks int `yaml:"top_chunks"`
	// TopKeyphrases is how many ranked keyphrases are taken per chunk.
	TopKeyphrases int `yaml:"top_keyphrases"`
	// MaxChars is the hard character cap on refined text.
	MaxChars int `yaml:"max_chars"`
}

// Load reads and parses the config file at path, expands the model path,
// and applies defaults. Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	ApplyDefaults(&cfg)

	configDir := filepath.Dir(path)
	if cfg.Embedding.ModelPath != "" {
		cfg.Embedding.ModelPath = expandPath(cfg.Embedding.ModelPath, configDir)
	}
	return &cfg, nil
}

// Default returns a config with all defaults applied, for runs without a config file.
func Default() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// expandPath converts a path to absolute. Paths starting with "./" are relative to configDir;
// other relative paths are relative to the home directory.
func expandPath(path string, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if strings.HasPrefix(path, "./") || path == "." {
		return filepath.Join(configDir, path)
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path)
	}
	return path
}
