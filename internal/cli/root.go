package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/errors"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// globalLogger stores the initialized logger for use by subcommands. It is
// set during PersistentPreRunE; access it via GetLogger.
var (
	globalLogger   zerolog.Logger //nolint:gochecknoglobals // CLI logger requires global access
	globalLoggerMu sync.RWMutex   //nolint:gochecknoglobals // Protects globalLogger
)

// GetLogger returns the initialized logger for use by subcommands. It must
// only be called after the root command's PersistentPreRunE has executed;
// before that it returns a zero-value logger that discards all output.
func GetLogger() zerolog.Logger {
	globalLoggerMu.RLock()
	defer globalLoggerMu.RUnlock()
	return globalLogger
}

// newRootCmd creates the root command for the pocbuilder CLI.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pocbuilder",
		Short: "POC Builder - multi-agent proof-of-concept generator",
		Long: `POC Builder turns a one-line product requirement into a running
proof of concept through a fixed pipeline of AI agents: requirement
refinement, architecture selection, backend and frontend generation,
code review, and local deployment.

Commands:
  serve    run the HTTP API server
  build    run one pipeline build from the command line
  config   inspect and initialize configuration`,
		Version: formatVersion(info),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !IsValidOutputFormat(flags.Output) {
				return fmt.Errorf("%w: %q must be one of %v", errors.ErrInvalidOutputFormat, flags.Output, ValidOutputFormats())
			}

			globalLoggerMu.Lock()
			globalLogger = InitLogger(flags.Verbose, flags.Quiet)
			globalLoggerMu.Unlock()

			return nil
		},
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddServeCommand(cmd)
	AddBuildCommand(cmd, flags)
	AddConfigCommand(cmd)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	return cmd.ExecuteContext(ctx)
}
