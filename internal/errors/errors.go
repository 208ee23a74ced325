// Package errors provides centralized error handling for the POC builder.
//
// This package defines sentinel errors used for programmatic error
// categorization throughout the application. All error types can be checked
// using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrModelInvocation indicates that a generative model call failed to
	// complete (network, quota, or timeout problems).
	ErrModelInvocation = errors.New("model invocation failed")

	// ErrResponseParse indicates that a model responded but its output could
	// not be extracted or parsed into the expected shape.
	ErrResponseParse = errors.New("response parse failed")

	// ErrEmptyResponse indicates that a model returned no usable text.
	ErrEmptyResponse = errors.New("empty model response")

	// ErrDeployFailed indicates that materializing or launching a generated
	// backend did not succeed.
	ErrDeployFailed = errors.New("deployment failed")

	// ErrProcessExited indicates the launched backend process exited before
	// the liveness probe ran.
	ErrProcessExited = errors.New("process exited during grace period")

	// ErrProjectNotFound indicates a lookup for an unknown project identifier.
	ErrProjectNotFound = errors.New("project not found")

	// ErrProjectExists indicates a registration collision on a project
	// identifier.
	ErrProjectExists = errors.New("project already registered")

	// ErrFrontendNotFound indicates the materialized frontend file is missing.
	ErrFrontendNotFound = errors.New("frontend file not found")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidAI indicates an invalid AI configuration value.
	ErrConfigInvalidAI = errors.New("invalid AI configuration")

	// ErrConfigInvalidServer indicates an invalid server configuration value.
	ErrConfigInvalidServer = errors.New("invalid server configuration")

	// ErrConfigInvalidDeploy indicates an invalid deployment configuration value.
	ErrConfigInvalidDeploy = errors.New("invalid deployment configuration")

	// ErrMissingAPIKey indicates that no API key was configured for the
	// generative model caller.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrEmptyRequirement indicates a pipeline run was requested with a blank
	// requirement string.
	ErrEmptyRequirement = errors.New("requirement cannot be empty")

	// ErrInvalidOutputFormat indicates an unsupported CLI output format value.
	ErrInvalidOutputFormat = errors.New("invalid output format")
)
