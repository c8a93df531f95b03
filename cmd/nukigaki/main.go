// Package main is the nukigaki CLI entry point.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/hyperjump/nukigaki/internal/cli"
	"github.com/hyperjump/nukigaki/internal/config"
	"github.com/hyperjump/nukigaki/internal/embedding"
	"github.com/hyperjump/nukigaki/internal/models"
	"github.com/hyperjump/nukigaki/internal/pipeline"
	"github.com/hyperjump/nukigaki/internal/server"
	"github.com/hyperjump/nukigaki/internal/watcher"
	"github.com/hyperjump/nukigaki/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/nukigaki/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if neither
// exists, pure defaults are used so that analyze works with no config file.
func loadConfig(path string) (*config.Config, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				return config.Load(fallback)
			}
		}
		if _, statErr := os.Stat(path); statErr != nil {
			return config.Default(), nil
		}
	}
	return config.Load(path)
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "analyze":
		runAnalyze(false)
	case "watch":
		runAnalyze(true)
	case "serve":
		runServe()
	case "version", "--version", "-v":
		fmt.Printf("nukigaki version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// newEmbedder builds the shared embedder for the whole run: ONNX when a model
// path is configured and loadable, otherwise the deterministic hash embedder.
func newEmbedder(cfg *config.Config, logger *zap.Logger) embedding.Embedder {
	if cfg.Embedding.ModelPath != "" {
		onnx, err := embedding.NewONNXEmbedder(
			cfg.Embedding.ModelPath,
			cfg.Embedding.Dimensions,
			cfg.Embedding.MaxTokens,
			cfg.Embedding.CacheSize,
		)
		if err == nil {
			return onnx
		}
		logger.Warn("ONNX embedder unavailable, using hash embedder",
			zap.String("model_path", cfg.Embedding.ModelPath),
			zap.Error(err))
	}
	return embedding.NewHashEmbedder(cfg.Embedding.Dimensions)
}

func runAnalyze(watch bool) {
	name := "analyze"
	if watch {
		name = "watch"
	}
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	persona := fs.String("persona", "", "reader persona (required)")
	job := fs.String("job", "", "job to be done (required)")
	output := fs.String("output", "output.json", "output file path (use - for stdout)")
	outputFormat := fs.String("format", "json", "output format: json (persisted structure) or text")
	debug := fs.Bool("debug", false, "enable debug logging")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: nukigaki %s [flags] <document> [document ...]\n\n", name)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])

	if *persona == "" || *job == "" || fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}
	format := cli.OutputJSON
	switch *outputFormat {
	case "json":
	case "text":
		format = cli.OutputText
	default:
		fmt.Printf("Unknown output format %q; use json or text\n", *outputFormat)
		os.Exit(1)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	embedder := newEmbedder(cfg, logger)
	defer embedder.Close()

	pipeOpts := []pipeline.Option{}
	if debugMode {
		pipeOpts = append(pipeOpts, pipeline.WithLogger(logger))
	}
	pipe, err := pipeline.New(cfg, embedder, pipeOpts...)
	if err != nil {
		logger.Fatal("Failed to initialize pipeline", zap.Error(err))
	}

	req := models.AnalyzeRequest{
		Documents: fs.Args(),
		Persona:   *persona,
		Job:       *job,
	}
	if err := analyzeOnce(pipe, req, *output, format); err != nil {
		fmt.Fprintf(os.Stderr, "Analysis failed: %v\n", err)
		os.Exit(1)
	}
	if !watch {
		return
	}

	watchOpts := []watcher.Option{}
	if debugMode {
		watchOpts = append(watchOpts, watcher.WithLogger(logger))
	}
	watchSvc := watcher.NewWatcher(req.Documents, func() {
		if err := analyzeOnce(pipe, req, *output, format); err != nil {
			logger.Warn("re-analysis failed", zap.Error(err))
		} else {
			logger.Info("analysis rewritten", zap.String("output", *output))
		}
	}, watchOpts...)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := watchSvc.Start(ctx); err != nil {
		logger.Fatal("Failed to start watcher", zap.Error(err))
	}
	defer watchSvc.Stop()
	logger.Info("watching documents", zap.Int("count", len(req.Documents)))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("Shutting down...")
}

// analyzeOnce runs one batch analysis and writes the result (or the exact
// empty-corpus error structure) to the output destination. The destination is
// opened only after the analysis resolves, so a failed run never truncates a
// previous result.
func analyzeOnce(pipe *pipeline.Pipeline, req models.AnalyzeRequest, output string, format cli.OutputFormat) error {
	analysis, err := pipe.Analyze(context.Background(), req)
	noText := errors.Is(err, models.ErrNoText)
	if err != nil && !noText {
		return err
	}

	var out *os.File
	if output == "-" {
		out = os.Stdout
	} else {
		f, ferr := os.Create(output)
		if ferr != nil {
			return fmt.Errorf("create output: %w", ferr)
		}
		defer f.Close()
		out = f
	}

	if noText {
		return cli.WriteNoText(out)
	}
	return cli.WriteAnalysis(out, analysis, format)
}

func runServe() {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(os.Args[2:])

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	embedder := newEmbedder(cfg, logger)
	defer embedder.Close()

	pipeOpts := []pipeline.Option{}
	if debugMode {
		pipeOpts = append(pipeOpts, pipeline.WithLogger(logger))
	}
	pipe, err := pipeline.New(cfg, embedder, pipeOpts...)
	if err != nil {
		logger.Fatal("Failed to initialize pipeline", zap.Error(err))
	}

	srv := server.NewServer(pipe, &cfg.Server, logger)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func printUsage() {
	fmt.Println(`nukigaki - persona-driven document passage extraction

Usage:
  nukigaki analyze [flags] <document> [document ...]   Run one analysis
  nukigaki watch [flags] <document> [document ...]     Analyze, then re-run on changes
  nukigaki serve [flags]                               Start the HTTP API
  nukigaki version                                     Show version
  nukigaki help                                        Show this help

Analyze/Watch Flags:
  --persona string   Reader persona, e.g. "PhD Researcher" (required)
  --job string       Job to be done, e.g. "Prepare a literature review" (required)
  --output string    Output file path, - for stdout (default: output.json)
  --format string    Output format: json or text (default: json)
  --config string    Config file path (default: /usr/local/etc/nukigaki/config.yaml)
  --debug            Enable debug logging

Serve Flags:
  --config string    Config file path
  --debug            Enable debug logging

Examples:
  nukigaki analyze --persona "PhD Researcher" --job "Prepare a literature review" paper1.pdf paper2.pdf
  nukigaki analyze --persona "Analyst" --job "Summarize revenue drivers" --output - report.docx data.xlsx
  nukigaki watch --persona "Editor" --job "Find quotable passages" draft.md
  nukigaki serve --debug`)
}
