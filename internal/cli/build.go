package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/agent"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/ai"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/config"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/pipeline"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/signal"
)

// buildOptions holds the build command's flags.
type buildOptions struct {
	keep      bool
	outputDir string
}

// AddBuildCommand adds the build command to the root command.
func AddBuildCommand(root *cobra.Command, flags *GlobalFlags) {
	opts := &buildOptions{}

	cmd := &cobra.Command{
		Use:   "build <requirement>",
		Short: "Run one pipeline build from the command line",
		Long: `Build runs the full agent pipeline once for the given requirement and
prints the result. The generated backend is stopped when the command exits
unless --keep is set, in which case it runs until interrupted.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			requirement := strings.TrimSpace(strings.Join(args, " "))
			if requirement == "" {
				return errors.ErrEmptyRequirement
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.AI.APIKey == "" {
				return errors.Wrap(errors.ErrMissingAPIKey, "set POC_AI_API_KEY or GEMINI_API_KEY")
			}
			return runBuild(cmd.Context(), cfg, flags, opts, requirement)
		},
	}

	cmd.Flags().BoolVar(&opts.keep, "keep", false, "leave the deployed backend running until interrupted")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "write generated artifacts to this directory")
	root.AddCommand(cmd)
}

func runBuild(parent context.Context, cfg *config.Config, flags *GlobalFlags, opts *buildOptions, requirement string) error {
	logger := GetLogger()

	handler := signal.NewHandler(parent)
	defer handler.Stop()
	ctx := handler.Context()

	completer, err := ai.NewGeminiClient(ctx, cfg.AI.APIKey, cfg.AI.Timeout, logger)
	if err != nil {
		return err
	}

	assembled := buildStages(completer, cfg, logger)
	launcher := launcherFactory(cfg, logger)()
	deployer := agent.NewDeployer(launcher, logger)

	orch := pipeline.New(
		assembled.stages.Refiner,
		assembled.stages.Architect,
		assembled.stages.Backend,
		assembled.stages.Frontend,
		assembled.stages.Reviewer,
		deployer,
		logger,
	)

	state := orch.Execute(ctx, requirement)

	if opts.outputDir != "" {
		if err := writeArtifacts(opts.outputDir, state); err != nil {
			launcher.Stop()
			return err
		}
	}

	if err := printState(os.Stdout, flags.Output, state); err != nil {
		launcher.Stop()
		return err
	}

	deployed := state.Deployment != nil && state.Deployment.PID > 0
	if deployed && opts.keep {
		fmt.Fprintf(os.Stderr, "backend running at %s, press Ctrl+C to stop\n", state.Deployment.BackendURL)
		<-ctx.Done()
	}
	launcher.Stop()

	if state.Failed() {
		return errors.Wrap(errors.ErrDeployFailed, state.Error)
	}
	return nil
}

// writeArtifacts copies the generated code to dir so it survives the
// launcher's working-directory cleanup.
func writeArtifacts(dir string, state *domain.WorkflowState) error {
	if state.Backend == nil || state.Frontend == nil {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}
	backendPath := filepath.Join(dir, constants.BackendFileName)
	if err := os.WriteFile(backendPath, []byte(state.Backend.Code), 0o644); err != nil {
		return errors.Wrap(err, "failed to write backend artifact")
	}
	frontendPath := filepath.Join(dir, constants.FrontendFileName)
	if err := os.WriteFile(frontendPath, []byte(state.Frontend.Code), 0o644); err != nil {
		return errors.Wrap(err, "failed to write frontend artifact")
	}
	return nil
}

// printState renders the final workflow state in the selected format.
func printState(w *os.File, format string, state *domain.WorkflowState) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}

	for _, resp := range state.AgentResponses {
		fmt.Fprintf(w, "%-24s %s\n", resp.Agent, resp.Status)
	}
	if state.Backend != nil {
		fmt.Fprintf(w, "backend:  %d lines, quality %d/100\n", state.Backend.LineCount, state.Backend.QualityScore)
	}
	if state.Frontend != nil {
		fmt.Fprintf(w, "frontend: %d lines, quality %d/100\n", state.Frontend.LineCount, state.Frontend.QualityScore)
	}
	if state.Review != nil {
		fmt.Fprintf(w, "review:   overall %.1f, production ready: %t\n", state.Review.OverallScore, state.Review.ProductionReady)
	}
	if state.Deployment != nil {
		fmt.Fprintf(w, "deploy:   %s\n", state.Deployment.Message)
	}
	if state.Failed() {
		fmt.Fprintf(w, "error:    %s\n", state.Error)
	}
	return nil
}
