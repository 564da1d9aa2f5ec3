package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-relay/internal/config"
	"github.com/jonathan/cv-relay/internal/llm"
	"github.com/jonathan/cv-relay/internal/logging"
	"github.com/jonathan/cv-relay/internal/server"
	"github.com/jonathan/cv-relay/internal/service"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the /api/generate, /api/seed-cv, /api/extract-cv and /api/improve-cv endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT and the config file)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if servePort != 0 {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger := logging.New(cfg.LogLevel, cfg.LogPretty, cmd.ErrOrStderr())
	if cfg.APIKey == "" {
		logger.Warn().Msg("GEMINI_API_KEY not set; model requests will fail until it is configured")
	}

	client := llm.NewGeminiClient(cfg.LLM(), llm.WithLogger(logger))
	svc := service.New(client, service.Timeouts{
		Generate:   cfg.LLM().Timeout,
		Structured: cfg.LLM().StructuredTimeout,
	}, logger)

	logger.Info().Str("model", client.Model()).Strs("allowed_origins", cfg.AllowedOrigins).Msg("configured")

	return server.New(cfg, svc, logger).Start(cmd.Context())
}
