package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, constants.DefaultServerPort, cfg.Server.Port)
	assert.Empty(t, cfg.AI.APIKey)
	assert.Equal(t, constants.DefaultFlashModel, cfg.AI.RefinerModel)
	assert.Equal(t, constants.DefaultFlashModel, cfg.AI.ArchitectModel)
	assert.Equal(t, constants.DefaultProModel, cfg.AI.BackendModel)
	assert.Equal(t, constants.DefaultProModel, cfg.AI.FrontendModel)
	assert.Equal(t, constants.DefaultFlashModel, cfg.AI.ReviewerModel)
	assert.InDelta(t, constants.DefaultTemperature, cfg.AI.Temperature, 0.001)
	assert.InDelta(t, 0.3, cfg.AI.CodeTemperature, 0.001)
	assert.Equal(t, 5*time.Minute, cfg.AI.Timeout)
	assert.Equal(t, constants.DefaultBackendPort, cfg.Deploy.BackendPort)
	assert.Equal(t, 3*time.Second, cfg.Deploy.GracePeriod)
	assert.Equal(t, constants.DefaultPythonBin, cfg.Deploy.PythonBin)
	assert.True(t, cfg.Deploy.InstallDeps)
	assert.True(t, cfg.Deploy.SweepOrphans)

	require.NoError(t, Validate(cfg))
}

func TestLoad_Defaults(t *testing.T) {
	// Isolate from any real ~/.pocbuilder and project config.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, constants.DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, constants.DefaultPythonBin, cfg.Deploy.PythonBin)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("POC_SERVER_PORT", "9999")
	t.Setenv("POC_AI_API_KEY", "env-key")
	t.Setenv("POC_AI_TIMEOUT", "90s")
	t.Setenv("POC_DEPLOY_PYTHON_BIN", "python3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "env-key", cfg.AI.APIKey)
	assert.Equal(t, 90*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "python3", cfg.Deploy.PythonBin)
}

func TestLoad_GeminiKeyFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "fallback-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fallback-key", cfg.AI.APIKey)
}

func TestLoad_EnvBeatsGeminiFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "fallback-key")
	t.Setenv("POC_AI_API_KEY", "primary-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "primary-key", cfg.AI.APIKey)
}

func TestLoad_GlobalConfigFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, constants.AppHome)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	body := "server:\n  port: 7001\nai:\n  timeout: 2m\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7001, cfg.Server.Port)
	assert.Equal(t, 2*time.Minute, cfg.AI.Timeout)
	// Untouched keys keep their defaults.
	assert.Equal(t, constants.DefaultFlashModel, cfg.AI.RefinerModel)
}

func TestLoad_ProjectConfigOverridesGlobal(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	globalDir := filepath.Join(home, constants.AppHome)
	require.NoError(t, os.MkdirAll(globalDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"),
		[]byte("server:\n  port: 7001\ndeploy:\n  backend_port: 7002\n"), 0o600))

	projectDir := filepath.Join(work, constants.AppHome)
	require.NoError(t, os.MkdirAll(projectDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"),
		[]byte("server:\n  port: 7003\n"), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7003, cfg.Server.Port)
	assert.Equal(t, 7002, cfg.Deploy.BackendPort)
}

func TestLoad_InvalidYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, constants.AppHome)
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"),
		[]byte("server: [not a map\n"), 0o600))

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_InvalidValueRejected(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv("POC_SERVER_PORT", "70000")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrConfigInvalidServer)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	mutate := func(fn func(*Config)) *Config {
		cfg := Default()
		fn(cfg)
		return cfg
	}

	tests := []struct {
		name    string
		cfg     *Config
		wantErr error
	}{
		{name: "nil config", cfg: nil, wantErr: errors.ErrConfigNil},
		{name: "valid defaults", cfg: Default(), wantErr: nil},
		{
			name:    "server port zero",
			cfg:     mutate(func(c *Config) { c.Server.Port = 0 }),
			wantErr: errors.ErrConfigInvalidServer,
		},
		{
			name:    "server port too high",
			cfg:     mutate(func(c *Config) { c.Server.Port = 70000 }),
			wantErr: errors.ErrConfigInvalidServer,
		},
		{
			name:    "empty model name",
			cfg:     mutate(func(c *Config) { c.AI.BackendModel = "" }),
			wantErr: errors.ErrConfigInvalidAI,
		},
		{
			name:    "temperature out of range",
			cfg:     mutate(func(c *Config) { c.AI.Temperature = 2.5 }),
			wantErr: errors.ErrConfigInvalidAI,
		},
		{
			name:    "negative code temperature",
			cfg:     mutate(func(c *Config) { c.AI.CodeTemperature = -0.1 }),
			wantErr: errors.ErrConfigInvalidAI,
		},
		{
			name:    "zero timeout",
			cfg:     mutate(func(c *Config) { c.AI.Timeout = 0 }),
			wantErr: errors.ErrConfigInvalidAI,
		},
		{
			name:    "backend port out of range",
			cfg:     mutate(func(c *Config) { c.Deploy.BackendPort = -1 }),
			wantErr: errors.ErrConfigInvalidDeploy,
		},
		{
			name:    "zero grace period",
			cfg:     mutate(func(c *Config) { c.Deploy.GracePeriod = 0 }),
			wantErr: errors.ErrConfigInvalidDeploy,
		},
		{
			name:    "empty python bin",
			cfg:     mutate(func(c *Config) { c.Deploy.PythonBin = "" }),
			wantErr: errors.ErrConfigInvalidDeploy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(tt.cfg)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGlobalConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := GlobalConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, constants.AppHome, "config.yaml"), path)
}
