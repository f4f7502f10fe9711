package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/tribu-ai/tribuai/pkg/cli/config"
	httpctrl "github.com/tribu-ai/tribuai/pkg/controller/http"
	"github.com/tribu-ai/tribuai/pkg/repository/memory"
	"github.com/tribu-ai/tribuai/pkg/service/extract"
	"github.com/tribu-ai/tribuai/pkg/usecase"
	"github.com/tribu-ai/tribuai/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var tasteCfg config.Taste
	var geminiCfg config.Gemini
	var promptsCfg config.Prompts

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("TRIBUAI_ADDR"),
			Destination: &addr,
		},
	}

	// Add shared config flags
	flags = append(flags, tasteCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, promptsCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, cleanup, err := buildUseCases(ctx, &tasteCfg, &geminiCfg, &promptsCfg)
			if err != nil {
				return err
			}
			defer cleanup()

			httpHandler, err := httpctrl.New(uc)
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           httpHandler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}

// buildUseCases wires the repository and services from CLI configuration.
// Shared between serve and chat.
func buildUseCases(ctx context.Context, tasteCfg *config.Taste, geminiCfg *config.Gemini, promptsCfg *config.Prompts) (*usecase.UseCases, func(), error) {
	repo := memory.New()
	cleanup := func() {
		if err := repo.Close(); err != nil {
			logging.Default().Error("failed to close repository", "error", err.Error())
		}
	}

	tasteSvc, err := tasteCfg.Configure()
	if err != nil {
		cleanup()
		return nil, nil, goerr.Wrap(err, "failed to configure taste-graph client")
	}

	ucOpts := []usecase.Option{
		usecase.WithTasteService(tasteSvc),
	}

	llmClient, err := geminiCfg.Configure(ctx)
	if err != nil {
		cleanup()
		return nil, nil, goerr.Wrap(err, "failed to configure Gemini client")
	}
	if llmClient != nil {
		extractSvc, err := extract.New(llmClient)
		if err != nil {
			cleanup()
			return nil, nil, goerr.Wrap(err, "failed to initialize extract service")
		}
		ucOpts = append(ucOpts, usecase.WithExtractService(extractSvc))
		logging.Default().Info("Entity extraction enabled")
	} else {
		logging.Default().Warn("Gemini not configured, entity extraction will use fallback entities")
	}

	prompts, err := promptsCfg.Configure()
	if err != nil {
		cleanup()
		return nil, nil, goerr.Wrap(err, "failed to load prompt configuration")
	}
	if prompts != nil {
		ucOpts = append(ucOpts, usecase.WithPrompts(prompts))
		logging.Default().Info("Custom question prompts loaded", "categories", len(prompts))
	}

	return usecase.New(repo, ucOpts...), cleanup, nil
}
