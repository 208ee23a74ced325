package agent

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
)

// Launcher materializes generated artifacts and starts the backend as a
// child process. It always returns a usable DeploymentRecord; a non-nil
// error marks the record as a failure record.
type Launcher interface {
	Deploy(ctx context.Context, backendCode, frontendCode, projectID string) (*domain.DeploymentRecord, error)
}

// Deployer is the deployment stage agent. Unlike the generative stages it
// wraps a process launch, but it honors the same contract: one external
// call, never a propagated failure.
type Deployer struct {
	launcher Launcher
	logger   zerolog.Logger
}

// NewDeployer creates the deployment stage agent.
func NewDeployer(launcher Launcher, logger zerolog.Logger) *Deployer {
	return &Deployer{launcher: launcher, logger: logger}
}

// Deploy launches the generated backend and returns the deployment record.
// Launch failures produce an error outcome whose record carries the captured
// diagnostics; the pipeline itself continues to completion.
func (d *Deployer) Deploy(ctx context.Context, backendCode, frontendCode, projectID string) domain.Outcome[domain.DeploymentRecord] {
	record, err := d.launcher.Deploy(ctx, backendCode, frontendCode, projectID)
	if err != nil {
		d.logger.Warn().Err(err).Str("project_id", projectID).Msg("deployment failed")
		if record == nil {
			record = &domain.DeploymentRecord{
				Message:   err.Error(),
				ProjectID: projectID,
			}
		}
		return domain.Failure(DeployerName, *record, err)
	}

	d.logger.Info().
		Str("project_id", projectID).
		Int("pid", record.PID).
		Str("backend_url", record.BackendURL).
		Msg("deployment succeeded")
	return domain.Success(DeployerName, *record)
}

// Info describes the agent for introspection.
func (d *Deployer) Info() Info {
	return Info{
		Name:    DeployerName,
		Purpose: "Deploy and manage application instances",
	}
}
