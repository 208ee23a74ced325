// Package prompts provides centralized prompt management for the POC builder.
// All stage prompts are stored as text/template files and embedded at compile
// time, so a missing or malformed template is a build-time defect rather than
// a runtime surprise.
package prompts

import "errors"

// Package errors for prompt management.
var (
	// ErrTemplateNotFound indicates the requested template doesn't exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateExecution indicates a failure during template execution.
	ErrTemplateExecution = errors.New("template execution failed")
)
