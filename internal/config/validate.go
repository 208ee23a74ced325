package config

import (
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

// Validate checks a configuration for values that would break the pipeline
// at runtime. A missing API key is allowed here; commands that actually
// invoke a model check for it separately so offline commands keep working.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}
	if err := validateServer(&cfg.Server); err != nil {
		return err
	}
	if err := validateAI(&cfg.AI); err != nil {
		return err
	}
	return validateDeploy(&cfg.Deploy)
}

func validateServer(s *ServerConfig) error {
	if s.Port < 1 || s.Port > 65535 {
		return errors.Wrapf(errors.ErrConfigInvalidServer, "port %d out of range", s.Port)
	}
	return nil
}

func validateAI(a *AIConfig) error {
	models := map[string]string{
		"refiner_model":   a.RefinerModel,
		"architect_model": a.ArchitectModel,
		"backend_model":   a.BackendModel,
		"frontend_model":  a.FrontendModel,
		"reviewer_model":  a.ReviewerModel,
	}
	for key, name := range models {
		if name == "" {
			return errors.Wrapf(errors.ErrConfigInvalidAI, "%s must not be empty", key)
		}
	}
	if a.Temperature < 0 || a.Temperature > 2 {
		return errors.Wrapf(errors.ErrConfigInvalidAI, "temperature %.2f out of range", a.Temperature)
	}
	if a.CodeTemperature < 0 || a.CodeTemperature > 2 {
		return errors.Wrapf(errors.ErrConfigInvalidAI, "code_temperature %.2f out of range", a.CodeTemperature)
	}
	if a.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidAI, "timeout must be positive, got %s", a.Timeout)
	}
	return nil
}

func validateDeploy(d *DeployConfig) error {
	if d.BackendPort < 1 || d.BackendPort > 65535 {
		return errors.Wrapf(errors.ErrConfigInvalidDeploy, "backend_port %d out of range", d.BackendPort)
	}
	if d.GracePeriod <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidDeploy, "grace_period must be positive, got %s", d.GracePeriod)
	}
	if d.PythonBin == "" {
		return errors.Wrapf(errors.ErrConfigInvalidDeploy, "python_bin must not be empty")
	}
	return nil
}
