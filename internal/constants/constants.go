// Package constants provides centralized constant values used throughout the
// POC builder. This package is the single source of truth for all shared
// constants and MUST NOT import any other internal packages.
package constants

import "time"

// File names used when materializing a generated project to disk.
const (
	// BackendFileName is the fixed filename the generated backend is written to.
	BackendFileName = "main.py"

	// FrontendFileName is the fixed filename the generated frontend is written to.
	FrontendFileName = "index.html"
)

// Directory names and paths used for organizing data.
const (
	// AppHome is the hidden directory name where the builder stores its data.
	// This directory is created in the user's home directory.
	AppHome = ".pocbuilder"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"

	// ProjectDirPrefix prefixes every working directory the launcher creates.
	// The project identifier is appended to form the full prefix.
	ProjectDirPrefix = "poc_"
)

// Log file settings for the rotating CLI log under AppHome/LogsDir.
const (
	// CLILogFileName is the name of the global CLI log file.
	CLILogFileName = "pocbuilder.log"

	// LogMaxSizeMB is the maximum size of the log file before rotation.
	LogMaxSizeMB = 10

	// LogMaxBackups is the number of rotated log files to retain.
	LogMaxBackups = 3

	// LogMaxAgeDays is the maximum age of a rotated log file.
	LogMaxAgeDays = 30

	// LogCompress enables gzip compression of rotated log files.
	LogCompress = true
)

// Deployment defaults for running generated backends.
const (
	// DefaultBackendPort is the port generated backends are instructed to listen on.
	DefaultBackendPort = 8080

	// DefaultServerPort is the port the builder's own HTTP API listens on.
	DefaultServerPort = 5000

	// DefaultGracePeriod is how long the launcher waits after starting a
	// generated backend before probing whether it is still alive.
	DefaultGracePeriod = 3 * time.Second

	// TerminateWait is how long Stop waits after SIGTERM before escalating
	// to SIGKILL.
	TerminateWait = 2 * time.Second

	// DefaultPythonBin is the interpreter used to run generated backends.
	DefaultPythonBin = "python"
)

// Model defaults for the generative stages. These mirror the stock
// configuration shipped with the service; all are overridable via config.
const (
	// DefaultFlashModel handles the structured-output stages (refine,
	// architect, review) where latency matters more than code quality.
	DefaultFlashModel = "gemini-2.5-flash"

	// DefaultProModel handles the two code-producing stages.
	DefaultProModel = "gemini-2.5-pro"

	// DefaultTemperature is the sampling temperature for structured stages.
	DefaultTemperature = 0.7

	// DefaultMaxOutputTokens bounds structured-stage responses.
	DefaultMaxOutputTokens = 8000

	// CodeMaxOutputTokens bounds code-generation responses, which run long.
	CodeMaxOutputTokens = 16000

	// DefaultAITimeout is the default maximum duration for one model call.
	DefaultAITimeout = 5 * time.Minute
)

// Review input bounds.
const (
	// ReviewSnippetLimit caps how many characters of each artifact are sent
	// to the review stage, keeping the prompt inside token limits.
	ReviewSnippetLimit = 1000
)

// Quality score bounds.
const (
	// MaxQualityScore is the ceiling of the heuristic artifact score.
	MaxQualityScore = 100
)
