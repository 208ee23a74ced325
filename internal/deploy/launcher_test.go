package deploy

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	apperrors "github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

// testConfig runs generated "backends" with sh so tests need no Python
// interpreter: the backend source is a shell script.
func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		WorkRoot:    t.TempDir(),
		PythonBin:   "sh",
		BackendPort: 8080,
		GracePeriod: 150 * time.Millisecond,
		InstallDeps: false,
	}
}

func TestLauncher_DeploySuccess(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	l := NewLauncher(cfg, zerolog.Nop())
	defer l.Stop()

	record, err := l.Deploy(context.Background(), "sleep 30\n", "<html></html>", "proj-ok")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", record.BackendURL)
	assert.Positive(t, record.PID)
	assert.Equal(t, "proj-ok", record.ProjectID)
	assert.Contains(t, record.Message, "deployed successfully")
	assert.Contains(t, record.WorkDir, constants.ProjectDirPrefix+"proj-ok")

	backend, readErr := os.ReadFile(filepath.Join(record.WorkDir, constants.BackendFileName))
	require.NoError(t, readErr)
	assert.Equal(t, "sleep 30\n", string(backend))

	frontend, readErr := os.ReadFile(record.FrontendPath)
	require.NoError(t, readErr)
	assert.Equal(t, "<html></html>", string(frontend))

	status := l.Status()
	assert.True(t, status.Running)
	assert.Equal(t, record.PID, status.PID)
	assert.Equal(t, record.WorkDir, status.WorkDir)
}

func TestLauncher_DeployEarlyExitCapturesDiagnostics(t *testing.T) {
	t.Parallel()

	l := NewLauncher(testConfig(t), zerolog.Nop())
	defer l.Stop()

	record, err := l.Deploy(context.Background(), "echo boom >&2\nexit 1\n", "<html></html>", "proj-dead")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrProcessExited)
	assert.Contains(t, record.Message, "Server failed to start")
	assert.Contains(t, record.Message, "boom")
	assert.Equal(t, "proj-dead", record.ProjectID)
	assert.Zero(t, record.PID)
}

func TestLauncher_DeployRepairsBackendBeforeWriting(t *testing.T) {
	t.Parallel()

	l := NewLauncher(testConfig(t), zerolog.Nop())
	defer l.Stop()

	// Python-looking source that imports the runtime but never invokes it.
	_, err := l.Deploy(context.Background(), "import uvicorn\napp = 1\n", "<html></html>", "proj-repair")
	require.Error(t, err) // sh cannot run python, the process exits early

	workDir := l.Status().WorkDir
	require.NotEmpty(t, workDir)
	written, readErr := os.ReadFile(filepath.Join(workDir, constants.BackendFileName))
	require.NoError(t, readErr)
	assert.Contains(t, string(written), "uvicorn.run")
}

func TestLauncher_DeployCanceledContext(t *testing.T) {
	t.Parallel()

	cfg := testConfig(t)
	cfg.GracePeriod = 5 * time.Second
	l := NewLauncher(cfg, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	record, err := l.Deploy(ctx, "sleep 30\n", "<html></html>", "proj-cancel")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrDeployFailed)
	assert.Contains(t, record.Message, "Deployment failed")

	// Cancellation also stopped the child and removed the working directory.
	assert.Empty(t, l.Status().WorkDir)
}

func TestLauncher_StopTerminatesAndCleansUp(t *testing.T) {
	t.Parallel()

	l := NewLauncher(testConfig(t), zerolog.Nop())

	record, err := l.Deploy(context.Background(), "sleep 30\n", "<html></html>", "proj-stop")
	require.NoError(t, err)
	require.True(t, l.Status().Running)

	l.Stop()

	status := l.Status()
	assert.False(t, status.Running)
	assert.Empty(t, status.WorkDir)
	_, statErr := os.Stat(record.WorkDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLauncher_StopIsIdempotent(t *testing.T) {
	t.Parallel()

	l := NewLauncher(testConfig(t), zerolog.Nop())

	_, err := l.Deploy(context.Background(), "sleep 30\n", "<html></html>", "proj-twice")
	require.NoError(t, err)

	l.Stop()
	l.Stop() // no-op
	assert.False(t, l.Status().Running)
}

func TestLauncher_StatusBeforeDeploy(t *testing.T) {
	t.Parallel()

	l := NewLauncher(testConfig(t), zerolog.Nop())
	status := l.Status()
	assert.False(t, status.Running)
	assert.Zero(t, status.PID)
	assert.Empty(t, status.WorkDir)
}

func TestSweepOrphans(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "poc_20240101-old"), 0o750))
	require.NoError(t, os.Mkdir(filepath.Join(root, "poc_20240102-old"), 0o750))
	require.NoError(t, os.Mkdir(filepath.Join(root, "unrelated"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "poc_notadir"), []byte("x"), 0o644))

	removed := SweepOrphans(root, zerolog.Nop())
	assert.Equal(t, 2, removed)

	_, err := os.Stat(filepath.Join(root, "unrelated"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "poc_notadir"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(root, "poc_20240101-old"))
	assert.True(t, os.IsNotExist(err))
}

func TestSweepOrphans_MissingRoot(t *testing.T) {
	t.Parallel()

	removed := SweepOrphans(filepath.Join(t.TempDir(), "does-not-exist"), zerolog.Nop())
	assert.Zero(t, removed)
}
