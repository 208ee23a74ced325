package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/ai"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/config"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/deploy"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/signal"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/web"
)

// shutdownTimeout bounds how long serve waits for in-flight requests and
// child-process teardown on exit.
const shutdownTimeout = 15 * time.Second

// AddServeCommand adds the serve command to the root command.
func AddServeCommand(root *cobra.Command) {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the POC builder HTTP API server",
		Long: `Serve starts the HTTP API. Each POST /api/build-poc request runs the
full agent pipeline and, on success, leaves the generated backend running
as a local child process until the project is deleted or the server exits.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			if cfg.AI.APIKey == "" {
				return errors.Wrap(errors.ErrMissingAPIKey, "set POC_AI_API_KEY or GEMINI_API_KEY")
			}
			return runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "listen port (overrides config)")
	root.AddCommand(cmd)
}

func runServe(parent context.Context, cfg *config.Config) error {
	logger := GetLogger()

	handler := signal.NewHandler(parent)
	defer handler.Stop()
	ctx := handler.Context()

	completer, err := ai.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Timeout, logger)
	if err != nil {
		return err
	}

	if cfg.Deploy.SweepOrphans {
		deploy.SweepOrphans(cfg.Deploy.WorkRoot, logger)
	}

	assembled := buildStages(completer, cfg, logger)
	registry := deploy.NewRegistry(logger)

	server := web.NewServer(web.Options{
		Port:        cfg.Server.Port,
		Stages:      assembled.stages,
		NewLauncher: launcherFactory(cfg, logger),
		Registry:    registry,
		AgentInfos:  assembled.infos,
		Models:      assembled.models,
		BackendPort: cfg.Deploy.BackendPort,
		Logger:      logger,
	})

	if err := server.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
