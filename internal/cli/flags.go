// Package cli provides the command-line interface for the POC builder.
package cli

import (
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

// Exit codes for the CLI.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0
	// ExitError indicates a general error.
	ExitError = 1
	// ExitInvalidInput indicates invalid user input.
	ExitInvalidInput = 2
)

// Output format constants.
const (
	// OutputText is the default human-readable output format.
	OutputText = "text"
	// OutputJSON is the machine-readable JSON output format.
	OutputJSON = "json"
)

// GlobalFlags holds flags available to all commands.
type GlobalFlags struct {
	// Output specifies the output format (text or json).
	Output string
	// Verbose enables debug-level logging.
	Verbose bool
	// Quiet suppresses non-essential output (warn level only).
	Quiet bool
}

// AddGlobalFlags adds global flags to a command via PersistentFlags so they
// are available to all subcommands.
func AddGlobalFlags(cmd *cobra.Command, flags *GlobalFlags) {
	cmd.PersistentFlags().StringVarP(&flags.Output, "output", "o", OutputText, "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&flags.Quiet, "quiet", "q", false, "suppress non-essential output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
}

// ValidOutputFormats returns the list of valid output format values.
func ValidOutputFormats() []string {
	return []string{OutputText, OutputJSON}
}

// IsValidOutputFormat checks if the given format is a valid output format.
func IsValidOutputFormat(format string) bool {
	for _, valid := range ValidOutputFormats() {
		if format == valid {
			return true
		}
	}
	return false
}

// ExitCodeForError maps an error to a process exit code: 0 for nil,
// 2 for invalid user input, 1 for everything else.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if stderrors.Is(err, errors.ErrInvalidOutputFormat) || stderrors.Is(err, errors.ErrEmptyRequirement) {
		return ExitInvalidInput
	}
	if isInvalidInputError(err.Error()) {
		return ExitInvalidInput
	}
	return ExitError
}

// isInvalidInputError catches Cobra's built-in flag validation errors.
func isInvalidInputError(errMsg string) bool {
	patterns := []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"were all set",
		"accepts at most",
		"accepts at least",
		"requires at least",
	}
	for _, p := range patterns {
		if strings.Contains(errMsg, p) {
			return true
		}
	}
	return false
}
