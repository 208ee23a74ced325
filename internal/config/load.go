package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

// configFileName is the YAML file looked up in both config directories.
const configFileName = "config.yaml"

// newViperInstance creates a Viper instance with standard configuration:
// environment variable prefix (POC_), key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("POC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers the built-in defaults, mirroring the stock model
// assignment: flash for structured stages, pro for code stages.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", constants.DefaultServerPort)

	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.refiner_model", constants.DefaultFlashModel)
	v.SetDefault("ai.architect_model", constants.DefaultFlashModel)
	v.SetDefault("ai.backend_model", constants.DefaultProModel)
	v.SetDefault("ai.frontend_model", constants.DefaultProModel)
	v.SetDefault("ai.reviewer_model", constants.DefaultFlashModel)
	v.SetDefault("ai.temperature", constants.DefaultTemperature)
	v.SetDefault("ai.code_temperature", 0.3)
	v.SetDefault("ai.timeout", "5m")

	v.SetDefault("deploy.work_root", "")
	v.SetDefault("deploy.backend_port", constants.DefaultBackendPort)
	v.SetDefault("deploy.grace_period", "3s")
	v.SetDefault("deploy.python_bin", constants.DefaultPythonBin)
	v.SetDefault("deploy.install_deps", true)
	v.SetDefault("deploy.sweep_orphans", true)
}

// isConfigNotFoundError returns true if the error is a viper config file not
// found error. Missing config files are expected in many scenarios.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var notFound viper.ConfigFileNotFoundError
	return stderrors.As(err, &notFound) || os.IsNotExist(err)
}

// viperDecoderOption configures mapstructure to convert duration strings.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// GlobalConfigPath returns the path of the per-user config file.
func GlobalConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}
	return filepath.Join(home, constants.AppHome, configFileName), nil
}

// Load reads configuration from all available sources with proper
// precedence. It returns an error only for actual configuration problems,
// not for missing config files.
func Load() (*Config, error) {
	v := newViperInstance()

	if globalPath, err := GlobalConfigPath(); err == nil {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrap(err, "failed to read global config")
		}
	}

	projectPath := filepath.Join(constants.AppHome, configFileName)
	v.SetConfigFile(projectPath)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return nil, errors.Wrap(err, "failed to read project config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if cfg.AI.APIKey == "" {
		cfg.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching the
// filesystem or environment. Used by `config init` and tests.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults are static and known-good; decoding them cannot fail.
	_ = v.Unmarshal(&cfg, viperDecoderOption())
	return &cfg
}
