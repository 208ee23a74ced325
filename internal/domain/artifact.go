package domain

import "strings"

// ValidationReport records the result of checking a generated artifact
// against its structural-marker checklist. It is computed once per artifact,
// after extraction and before any repair attempt. Validation failures are not
// errors; they feed the repair step and the quality score.
type ValidationReport struct {
	// Valid is true when no issues were found.
	Valid bool `json:"valid"`

	// Issues lists human-readable defect descriptions, in checklist order.
	Issues []string `json:"issues"`

	// ChecksPassed counts the checklist entries that passed.
	ChecksPassed int `json:"checks_passed"`

	// TotalChecks is the size of the checklist.
	TotalChecks int `json:"total_checks"`
}

// Artifact is a generated source text plus its derived metadata.
type Artifact struct {
	// Code is the full generated source text.
	Code string `json:"code"`

	// Language is the source language ("python", "html").
	Language string `json:"language"`

	// Framework names the framework the code targets.
	Framework string `json:"framework"`

	// Port is the port the backend listens on. Zero for frontends.
	Port int `json:"port,omitempty"`

	// LineCount is the number of lines in Code.
	LineCount int `json:"lines"`

	// Validation is the structural checklist report. Nil on fallback
	// artifacts, which skip validation.
	Validation *ValidationReport `json:"validation,omitempty"`

	// QualityScore is the heuristic 0-100 completeness proxy.
	QualityScore int `json:"quality_score"`
}

// CountLines returns the number of newline-delimited lines in code.
func CountLines(code string) int {
	if code == "" {
		return 0
	}
	return strings.Count(code, "\n") + 1
}
