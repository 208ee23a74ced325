// Package deploy materializes generated artifacts and runs them as local
// child processes.
//
// A Launcher owns exactly one deployment: it holds the only live reference
// to the child process handle and the working directory, and is the sole
// authority permitted to terminate or delete them. Callers interact through
// Deploy, Stop, and Status; the Registry tracks launchers across concurrent
// pipeline runs.
package deploy

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/artifact"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/domain"
	apperrors "github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

// Config holds launcher settings. Zero values fall back to package defaults.
type Config struct {
	// WorkRoot is the directory project working directories are created
	// under. Empty means the system temp directory.
	WorkRoot string

	// PythonBin is the interpreter used to run generated backends.
	PythonBin string

	// BackendPort is the port the generated backend is expected to serve on.
	BackendPort int

	// GracePeriod is how long to wait before probing liveness.
	GracePeriod time.Duration

	// InstallDeps controls the best-effort dependency install before launch.
	InstallDeps bool
}

func (c *Config) withDefaults() Config {
	out := *c
	if out.PythonBin == "" {
		out.PythonBin = constants.DefaultPythonBin
	}
	if out.BackendPort == 0 {
		out.BackendPort = constants.DefaultBackendPort
	}
	if out.GracePeriod <= 0 {
		out.GracePeriod = constants.DefaultGracePeriod
	}
	return out
}

// Launcher deploys one generated project and manages its child process.
type Launcher struct {
	cfg    Config
	logger zerolog.Logger

	mu      sync.Mutex
	workDir string
	cmd     *exec.Cmd
	done    chan struct{}
	output  *captureBuffer
}

// NewLauncher creates a launcher for a single deployment.
func NewLauncher(cfg Config, logger zerolog.Logger) *Launcher {
	return &Launcher{
		cfg:    cfg.withDefaults(),
		logger: logger,
	}
}

// Deploy writes both sources to an isolated working directory, starts the
// backend, and probes liveness after the grace period.
//
// The returned record is always usable: on success it carries the local URL,
// frontend path, working directory, and PID; on failure it carries the
// captured diagnostic output (or the error description) and the project ID,
// alongside a non-nil error for categorization.
func (l *Launcher) Deploy(ctx context.Context, backendCode, frontendCode, projectID string) (*domain.DeploymentRecord, error) {
	fail := func(err error) (*domain.DeploymentRecord, error) {
		return &domain.DeploymentRecord{
			Message:   fmt.Sprintf("Deployment failed: %s", err.Error()),
			ProjectID: projectID,
		}, fmt.Errorf("%w: %s", apperrors.ErrDeployFailed, err.Error())
	}

	workDir, err := os.MkdirTemp(l.cfg.WorkRoot, constants.ProjectDirPrefix+projectID+"_")
	if err != nil {
		return fail(err)
	}

	// The generated backend sometimes imports the runtime but never invokes
	// it; append the standard run block before writing, never twice.
	if strings.Contains(backendCode, "uvicorn") && !strings.Contains(backendCode, "uvicorn.run") {
		backendCode = artifact.RepairBackend(backendCode)
	}

	backendPath := filepath.Join(workDir, constants.BackendFileName)
	if err := os.WriteFile(backendPath, []byte(backendCode), 0o644); err != nil {
		return fail(err)
	}
	frontendPath := filepath.Join(workDir, constants.FrontendFileName)
	if err := os.WriteFile(frontendPath, []byte(frontendCode), 0o644); err != nil {
		return fail(err)
	}

	l.installDependencies(ctx)

	output := &captureBuffer{}
	cmd := exec.Command(l.cfg.PythonBin, constants.BackendFileName)
	cmd.Dir = workDir
	cmd.Stdout = output
	cmd.Stderr = output

	if err := cmd.Start(); err != nil {
		return fail(err)
	}

	done := make(chan struct{})
	go func() {
		_ = cmd.Wait()
		close(done)
	}()

	l.mu.Lock()
	l.workDir = workDir
	l.cmd = cmd
	l.done = done
	l.output = output
	l.mu.Unlock()

	l.logger.Info().
		Str("project_id", projectID).
		Str("work_dir", workDir).
		Int("pid", cmd.Process.Pid).
		Msg("backend started, waiting grace period")

	select {
	case <-done:
		// Exited during the grace period: the captured output is the most
		// useful diagnostic we have.
		diag := output.String()
		if diag == "" {
			diag = "unknown error"
		}
		return &domain.DeploymentRecord{
			Message:   fmt.Sprintf("Server failed to start: %s", diag),
			ProjectID: projectID,
		}, fmt.Errorf("%w: %s", apperrors.ErrProcessExited, projectID)
	case <-ctx.Done():
		l.Stop()
		return fail(ctx.Err())
	case <-time.After(l.cfg.GracePeriod):
	}

	return &domain.DeploymentRecord{
		BackendURL:   fmt.Sprintf("http://localhost:%d", l.cfg.BackendPort),
		FrontendPath: frontendPath,
		WorkDir:      workDir,
		PID:          cmd.Process.Pid,
		Message:      fmt.Sprintf("Application deployed successfully on port %d", l.cfg.BackendPort),
		ProjectID:    projectID,
	}, nil
}

// installDependencies best-effort installs the fixed runtime dependency set.
// Failure is logged, never fatal: the backend may still run against a
// preinstalled environment.
func (l *Launcher) installDependencies(ctx context.Context) {
	if !l.cfg.InstallDeps {
		return
	}
	cmd := exec.CommandContext(ctx, "pip", "install", "-q", "fastapi", "uvicorn", "pydantic")
	if out, err := cmd.CombinedOutput(); err != nil {
		l.logger.Warn().
			Err(err).
			Str("output", strings.TrimSpace(string(out))).
			Msg("dependency install failed, continuing")
	}
}

// Stop idempotently terminates the child process and removes the working
// directory. Termination is two-phase: SIGTERM, a bounded wait, then SIGKILL
// for a process that will not die. Removal errors are swallowed; a second
// Stop is a no-op.
func (l *Launcher) Stop() {
	l.mu.Lock()
	cmd, done, workDir := l.cmd, l.done, l.workDir
	l.cmd = nil
	l.done = nil
	l.workDir = ""
	l.mu.Unlock()

	if cmd != nil && done != nil {
		select {
		case <-done:
			// Already exited.
		default:
			_ = cmd.Process.Signal(syscall.SIGTERM)
			select {
			case <-done:
				l.logger.Debug().Int("pid", cmd.Process.Pid).Msg("process terminated gracefully")
			case <-time.After(constants.TerminateWait):
				l.logger.Warn().Int("pid", cmd.Process.Pid).Msg("process did not terminate, sending SIGKILL")
				_ = cmd.Process.Kill()
				<-done
			}
		}
	}

	if workDir != "" {
		if err := os.RemoveAll(workDir); err != nil {
			l.logger.Warn().Err(err).Str("work_dir", workDir).Msg("working directory removal failed")
		}
	}
}

// Status reports liveness without side effects. Safe to call at any time,
// including before a deployment or after a stop.
func (l *Launcher) Status() domain.DeployStatus {
	l.mu.Lock()
	defer l.mu.Unlock()

	status := domain.DeployStatus{WorkDir: l.workDir}
	if l.cmd == nil || l.done == nil {
		return status
	}
	select {
	case <-l.done:
	default:
		status.Running = true
		status.PID = l.cmd.Process.Pid
	}
	return status
}

// captureBuffer is a goroutine-safe buffer for combined child output. The
// child writes from its own pipe goroutines while probes read.
type captureBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *captureBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *captureBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
