// Package logging provides zerolog utilities that keep credentials out of
// log output. The builder handles a Gemini API key and runs arbitrary
// generated code, so everything written to the rotating log file passes
// through a redaction filter first.
package logging

import (
	"io"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
)

// RedactedValue is the replacement string for sensitive data.
const RedactedValue = "[REDACTED]"

// sensitivePatterns match credential formats that could plausibly appear in
// log messages: the Gemini key this service is configured with, plus common
// token shapes that generated code or model output might echo back.
var sensitivePatterns = []*regexp.Regexp{
	// Google API keys (AIza...)
	regexp.MustCompile(`AIza[0-9A-Za-z_-]{35}`),

	// OpenAI-style keys (sk-...)
	regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}`),

	// Explicit api_key assignments
	regexp.MustCompile(`(?i)(api[_-]?key|apikey)\s*[:=]\s*["']?([a-zA-Z0-9_-]{16,})["']?`),

	// Bearer tokens
	regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9_-]{20,}`),

	// Generic secret assignments
	regexp.MustCompile(`(?i)(secret|password|credential|passwd|pwd|token)\s*[:=]\s*["']?[^\s"']{8,}["']?`),
}

// sensitiveFieldNames are field names whose values are always redacted.
var sensitiveFieldNames = []string{
	"api_key",
	"apikey",
	"api-key",
	"password",
	"secret",
	"credential",
	"token",
	"authorization",
	"gemini_api_key",
}

// SensitiveDataHook flags log events whose message matches a sensitive
// pattern. Zerolog hooks cannot rewrite the message itself, so actual
// redaction happens at call sites (RedactIfSensitive) and in the file
// writer (FilteringWriter); the hook marks anything that slipped through.
type SensitiveDataHook struct{}

// NewSensitiveDataHook creates a SensitiveDataHook.
func NewSensitiveDataHook() *SensitiveDataHook {
	return &SensitiveDataHook{}
}

// Run implements the zerolog.Hook interface.
func (h *SensitiveDataHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsSensitiveData(msg) {
		e.Bool("contains_filtered_data", true)
	}
}

// ContainsSensitiveData reports whether s matches any sensitive pattern.
func ContainsSensitiveData(s string) bool {
	for _, pattern := range sensitivePatterns {
		if pattern.MatchString(s) {
			return true
		}
	}
	return false
}

// FilterSensitiveValue replaces every sensitive-pattern match with
// RedactedValue.
func FilterSensitiveValue(value string) string {
	result := value
	for _, pattern := range sensitivePatterns {
		result = pattern.ReplaceAllString(result, RedactedValue)
	}
	return result
}

// IsSensitiveFieldName reports whether a field name indicates sensitive data.
func IsSensitiveFieldName(fieldName string) bool {
	lowerName := strings.ToLower(fieldName)
	for _, sensitive := range sensitiveFieldNames {
		if lowerName == sensitive || strings.Contains(lowerName, sensitive) {
			return true
		}
	}
	return false
}

// RedactIfSensitive returns RedactedValue when the field name indicates
// sensitive data, otherwise the pattern-filtered value.
func RedactIfSensitive(fieldName, value string) string {
	if IsSensitiveFieldName(fieldName) {
		return RedactedValue
	}
	return FilterSensitiveValue(value)
}

// FilteringWriter wraps an io.Writer and redacts sensitive data from
// everything written through it. Log file writers are wrapped with this so
// credentials never reach disk.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter creates a FilteringWriter over w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write implements io.Writer. It reports the original length so callers do
// not misread redaction as a short write.
func (fw *FilteringWriter) Write(p []byte) (n int, err error) {
	filtered := FilterSensitiveValue(string(p))
	if _, err = fw.w.Write([]byte(filtered)); err != nil {
		return 0, err
	}
	return len(p), nil
}
