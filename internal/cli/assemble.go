package cli

import (
	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/agent"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/ai"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/config"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/deploy"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/web"
)

// assembledStages holds everything the serve and build commands need to run
// pipelines: the shared generative stages plus their introspection data.
type assembledStages struct {
	stages web.Stages
	infos  []agent.Info
	models map[string]string
}

// buildStages constructs the five shared generative stage agents from the
// configuration. The deployment stage is created per run, so only its
// static description appears in infos.
func buildStages(completer ai.Completer, cfg *config.Config, logger zerolog.Logger) assembledStages {
	refiner := agent.NewRefiner(completer, cfg.AI.RefinerModel, cfg.AI.Temperature, logger)
	architect := agent.NewArchitect(completer, cfg.AI.ArchitectModel, cfg.AI.Temperature, logger)
	backend := agent.NewBackendGenerator(completer, cfg.AI.BackendModel, cfg.AI.CodeTemperature, logger)
	frontend := agent.NewFrontendGenerator(completer, cfg.AI.FrontendModel, cfg.AI.CodeTemperature, logger)
	reviewer := agent.NewReviewer(completer, cfg.AI.ReviewerModel, cfg.AI.Temperature, logger)

	return assembledStages{
		stages: web.Stages{
			Refiner:   refiner,
			Architect: architect,
			Backend:   backend,
			Frontend:  frontend,
			Reviewer:  reviewer,
		},
		infos: []agent.Info{
			refiner.Info(),
			architect.Info(),
			backend.Info(),
			frontend.Info(),
			reviewer.Info(),
			{
				Name:    agent.DeployerName,
				Purpose: "Deploy and manage application instances",
			},
		},
		models: map[string]string{
			"query_refiner":  cfg.AI.RefinerModel,
			"orchestrator":   cfg.AI.ArchitectModel,
			"code_generator": cfg.AI.BackendModel,
			"ui_enrichment":  cfg.AI.FrontendModel,
			"code_reviewer":  cfg.AI.ReviewerModel,
		},
	}
}

// launcherFactory returns a constructor for per-deployment launchers bound
// to the deploy configuration.
func launcherFactory(cfg *config.Config, logger zerolog.Logger) func() *deploy.Launcher {
	launcherCfg := deploy.Config{
		WorkRoot:    cfg.Deploy.WorkRoot,
		PythonBin:   cfg.Deploy.PythonBin,
		BackendPort: cfg.Deploy.BackendPort,
		GracePeriod: cfg.Deploy.GracePeriod,
		InstallDeps: cfg.Deploy.InstallDeps,
	}
	return func() *deploy.Launcher {
		return deploy.NewLauncher(launcherCfg, logger)
	}
}
