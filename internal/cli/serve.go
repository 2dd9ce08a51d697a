package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yaklabco/cppgrader/internal/configloader"
	"github.com/yaklabco/cppgrader/internal/llm"
	"github.com/yaklabco/cppgrader/internal/logging"
	"github.com/yaklabco/cppgrader/internal/rag"
	"github.com/yaklabco/cppgrader/internal/server"
	"github.com/yaklabco/cppgrader/internal/store"
	"github.com/yaklabco/cppgrader/pkg/analyzer"
	"github.com/yaklabco/cppgrader/pkg/check"
	"github.com/yaklabco/cppgrader/pkg/config"
)

type serveFlags struct {
	host string
	port int
}

func newServeCommand() *cobra.Command {
	flags := &serveFlags{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the grading HTTP API",
		Long: `Start the HTTP server exposing file upload, style guide management,
analysis, and RAG document endpoints.

Configuration is read from config files and CPPGRADER_* environment
variables; a .env file in the working directory is honored.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.host, "host", "", "listen host (overrides config)")
	cmd.Flags().IntVar(&flags.port, "port", 0, "listen port (overrides config)")

	return cmd
}

func runServe(cmd *cobra.Command, flags *serveFlags) error {
	logger := logging.Default()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	cliCfg := &config.Config{}
	cliCfg.Server.Host = flags.host
	cliCfg.Server.Port = flags.port

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	logger = logging.NewFromConfig(cfg)
	logging.SetDefault(logger)

	// Assemble the analysis pipeline and its collaborators.
	engine := check.NewEngine(check.DefaultRegistry)
	retriever := rag.New(cfg.RAG.ChunkSize)

	opts := []analyzer.Option{
		analyzer.WithContextRetriever(retriever, cfg.RAG.TopK),
	}

	var llmClient *llm.Client
	if cfg.Ollama.Enabled {
		llmClient = llm.New(cfg.Ollama)
		opts = append(opts, analyzer.WithSemanticAnalyzer(llmClient))
		logger.Info("semantic analysis enabled",
			logging.FieldHost, cfg.Ollama.Host,
			logging.FieldModel, cfg.Ollama.Model,
		)
	}

	srv := server.New(cfg, server.Deps{
		Analyzer:  analyzer.New(engine, opts...),
		Files:     store.NewFileStore(),
		Guides:    store.NewGuideStore(),
		Retriever: retriever,
		LLM:       llmClient,
	}, logger)

	// Stop on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
