package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/lxltx2025/nsfcwriter/internal/cli"
	"github.com/lxltx2025/nsfcwriter/internal/config"
	"github.com/lxltx2025/nsfcwriter/internal/db"
	"github.com/lxltx2025/nsfcwriter/internal/generation"
	"github.com/lxltx2025/nsfcwriter/internal/literature"
	"github.com/lxltx2025/nsfcwriter/internal/llm"
	"github.com/lxltx2025/nsfcwriter/internal/repository"
	"github.com/lxltx2025/nsfcwriter/internal/review"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file: env var or default ~/.nsfcwriter/nsfcwriter.yaml
	configPath := os.Getenv("NSFC_CONFIG")
	if configPath == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configPath = filepath.Join(home, ".nsfcwriter", "nsfcwriter.yaml")
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	client := llm.NewOllamaClient(cfg.LLM, observer)

	store := literature.NewStore(
		repository.NewSQLiteChunkRepo(database),
		client,
		cfg.Literature,
		os.Stderr,
	)

	app := &cli.App{
		Reviewer:   review.NewEngine(client, os.Stderr),
		Generator:  generation.NewGenerator(client, store, cfg.Literature.TopK, os.Stderr),
		Literature: store,
		Client:     client,
		Version:    version,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
