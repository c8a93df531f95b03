package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Embedding.Dimensions == 0 {
		cfg.Embedding.Dimensions = 384
	}
	if cfg.Embedding.MaxTokens == 0 {
		cfg.Embedding.MaxTokens = 256
	}
	if cfg.Embedding.CacheSize == 0 {
		cfg.Embedding.CacheSize = 10000
	}
	if cfg.Embedding.BatchSize == 0 {
		cfg.Embedding.BatchSize = 32
	}
	if cfg.Selection.OverallCap == 0 {
		cfg.Selection.OverallCap = 10
	}
	if cfg.Selection.PerDocumentCap == 0 {
		cfg.Selection.PerDocumentCap = 3
	}
	if cfg.Refine.ChunkSentences == 0 {
		cfg.Refine.ChunkSentences = 5
	}
	if cfg.Refine.TopChunks == 0 {
		cfg.Refine.TopChunks = 3
	}
	if cfg.Refine.TopKeyphrases == 0 {
		cfg.Refine.TopKeyphrases = 5
	}
	if cfg.Refine.MaxChars == 0 {
		cfg.Refine.MaxChars = 500
	}
	if cfg.Workers == 0 {
		cfg.Workers = 4
	}
}
