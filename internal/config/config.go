// Package config provides configuration management for the POC builder with
// layered precedence.
//
// Configuration sources are loaded in the following order (highest
// precedence first):
//  1. Environment variables (POC_* prefix)
//  2. Project config (.pocbuilder/config.yaml)
//  3. Global config (~/.pocbuilder/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import "time"

// Config is the root configuration structure.
type Config struct {
	// Server contains settings for the builder's own HTTP API.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// AI contains settings for the generative model calls.
	AI AIConfig `yaml:"ai" mapstructure:"ai"`

	// Deploy contains settings for launching generated backends.
	Deploy DeployConfig `yaml:"deploy" mapstructure:"deploy"`
}

// ServerConfig contains settings for the HTTP front door.
type ServerConfig struct {
	// Port the builder's API listens on. Default: 5000.
	Port int `yaml:"port" mapstructure:"port"`
}

// AIConfig contains settings for the generative model caller. Each stage may
// use a different model; the structured stages default to the flash model and
// the code stages to the pro model.
type AIConfig struct {
	// APIKey authenticates against the Gemini API.
	// Usually supplied via the POC_AI_API_KEY environment variable.
	APIKey string `yaml:"api_key" mapstructure:"api_key"`

	// RefinerModel handles requirement refinement.
	RefinerModel string `yaml:"refiner_model" mapstructure:"refiner_model"`

	// ArchitectModel handles architecture decisions.
	ArchitectModel string `yaml:"architect_model" mapstructure:"architect_model"`

	// BackendModel handles backend code generation.
	BackendModel string `yaml:"backend_model" mapstructure:"backend_model"`

	// FrontendModel handles frontend code generation.
	FrontendModel string `yaml:"frontend_model" mapstructure:"frontend_model"`

	// ReviewerModel handles code review.
	ReviewerModel string `yaml:"reviewer_model" mapstructure:"reviewer_model"`

	// Temperature is the sampling temperature for the structured stages.
	// The code stages run cooler (see CodeTemperature).
	Temperature float32 `yaml:"temperature" mapstructure:"temperature"`

	// CodeTemperature is the sampling temperature for the code stages.
	CodeTemperature float32 `yaml:"code_temperature" mapstructure:"code_temperature"`

	// Timeout is the maximum duration for one model call.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// DeployConfig contains settings for launching generated backends.
type DeployConfig struct {
	// WorkRoot is where project working directories are created.
	// Empty means the system temp directory.
	WorkRoot string `yaml:"work_root" mapstructure:"work_root"`

	// BackendPort is the port generated backends listen on. Default: 8080.
	BackendPort int `yaml:"backend_port" mapstructure:"backend_port"`

	// GracePeriod is the wait before the post-launch liveness probe.
	GracePeriod time.Duration `yaml:"grace_period" mapstructure:"grace_period"`

	// PythonBin is the interpreter used to run generated backends.
	PythonBin string `yaml:"python_bin" mapstructure:"python_bin"`

	// InstallDeps controls the best-effort dependency install before launch.
	InstallDeps bool `yaml:"install_deps" mapstructure:"install_deps"`

	// SweepOrphans removes leftover project directories at startup.
	SweepOrphans bool `yaml:"sweep_orphans" mapstructure:"sweep_orphans"`
}
