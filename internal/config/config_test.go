package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("server defaults: %+v", cfg.Server)
	}
	if cfg.Embedding.Dimensions != 384 {
		t.Errorf("dimensions default: %d", cfg.Embedding.Dimensions)
	}
	if cfg.Embedding.BatchSize != 32 {
		t.Errorf("batch size default: %d", cfg.Embedding.BatchSize)
	}
	if cfg.Selection.OverallCap != 10 || cfg.Selection.PerDocumentCap != 3 {
		t.Errorf("selection defaults: %+v", cfg.Selection)
	}
	if cfg.Refine.ChunkSentences != 5 || cfg.Refine.TopChunks != 3 ||
		cfg.Refine.TopKeyphrases != 5 || cfg.Refine.MaxChars != 500 {
		t.Errorf("refine defaults: %+v", cfg.Refine)
	}
	if cfg.Workers != 4 {
		t.Errorf("workers default: %d", cfg.Workers)
	}
}

func TestApplyDefaults_keepsSetValues(t *testing.T) {
	cfg := &Config{}
	cfg.Selection.OverallCap = 5
	cfg.Refine.MaxChars = 200
	ApplyDefaults(cfg)
	if cfg.Selection.OverallCap != 5 {
		t.Errorf("overall cap overwritten: %d", cfg.Selection.OverallCap)
	}
	if cfg.Refine.MaxChars != 200 {
		t.Errorf("max chars overwritten: %d", cfg.Refine.MaxChars)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
debug: true
selection:
  overall_cap: 7
  per_document_cap: 2
refine:
  max_chars: 300
`)
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug should be true")
	}
	if cfg.Selection.OverallCap != 7 || cfg.Selection.PerDocumentCap != 2 {
		t.Errorf("selection: %+v", cfg.Selection)
	}
	if cfg.Refine.MaxChars != 300 {
		t.Errorf("max chars: %d", cfg.Refine.MaxChars)
	}
	// Unset values still get defaults.
	if cfg.Refine.ChunkSentences != 5 {
		t.Errorf("chunk sentences default missing: %d", cfg.Refine.ChunkSentences)
	}
}

func TestLoad_missingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Selection.OverallCap != 10 {
		t.Errorf("Default() not defaulted: %+v", cfg.Selection)
	}
}
