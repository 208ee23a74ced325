package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/logging"
)

// logFileWriter holds the log file writer for cleanup during shutdown.
var logFileWriter io.WriteCloser //nolint:gochecknoglobals // Needed for cleanup

// zerologGlobalMu protects concurrent writes to the zerolog global logger.
var zerologGlobalMu sync.Mutex //nolint:gochecknoglobals // Protects zerolog global

// InitLogger creates and configures a zerolog.Logger based on verbosity
// flags.
//
// Log levels:
//   - verbose=true: Debug level
//   - quiet=true: Warn level
//   - default: Info level
//
// Output goes to stderr, as a console writer on a TTY without NO_COLOR and
// as JSON otherwise. The logger also writes to a rotating file under
// ~/.pocbuilder/logs, wrapped with a sensitive-data filter; if the file
// cannot be created, console-only logging is used.
func InitLogger(verbose, quiet bool) zerolog.Logger {
	level := selectLevel(verbose, quiet)
	console := selectOutput()

	var writer io.Writer = console
	if fileWriter, err := createLogFileWriter(); err == nil {
		logFileWriter = fileWriter
		writer = zerolog.MultiLevelWriter(console, fileWriter)
	}

	logger := buildLogger(level, writer)
	setGlobalLogger(logger)
	return logger
}

// InitLoggerWithWriter creates a logger with a custom writer. This is
// primarily intended for testing.
func InitLoggerWithWriter(verbose, quiet bool, w io.Writer) zerolog.Logger {
	logger := buildLogger(selectLevel(verbose, quiet), w)
	setGlobalLogger(logger)
	return logger
}

func buildLogger(level zerolog.Level, writer io.Writer) zerolog.Logger {
	hook := logging.NewSensitiveDataHook()
	return zerolog.New(writer).Level(level).Hook(hook).With().Timestamp().Logger()
}

// setGlobalLogger points the zerolog global logger at the CLI logger so any
// code using the log package shares the same formatting.
func setGlobalLogger(cliLogger zerolog.Logger) {
	zerologGlobalMu.Lock()
	defer zerologGlobalMu.Unlock()
	log.Logger = cliLogger
}

// CloseLogFile closes the global log file writer if it was opened. Called
// during shutdown.
func CloseLogFile() {
	if logFileWriter != nil {
		_ = logFileWriter.Close()
		logFileWriter = nil
	}
}

func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectOutput picks the stderr format: console writer on a TTY without
// NO_COLOR, JSON otherwise.
func selectOutput() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("NO_COLOR") == "" {
		return zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.Kitchen,
		}
	}
	return os.Stderr
}

// filteringWriteCloser wraps a WriteCloser with sensitive data filtering.
type filteringWriteCloser struct {
	filter *logging.FilteringWriter
	closer io.Closer
}

func (f *filteringWriteCloser) Write(p []byte) (int, error) {
	return f.filter.Write(p)
}

func (f *filteringWriteCloser) Close() error {
	return f.closer.Close()
}

// createLogFileWriter creates a rotating file writer for the global CLI
// log, wrapped so sensitive data is never written to disk.
func createLogFileWriter() (io.WriteCloser, error) {
	home, err := getAppHome()
	if err != nil {
		return nil, err
	}

	logDir := filepath.Join(home, constants.LogsDir)
	logPath := filepath.Join(logDir, constants.CLILogFileName)

	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    constants.LogMaxSizeMB,
		MaxBackups: constants.LogMaxBackups,
		MaxAge:     constants.LogMaxAgeDays,
		Compress:   constants.LogCompress,
	}

	return &filteringWriteCloser{
		filter: logging.NewFilteringWriter(lj),
		closer: lj,
	}, nil
}

// getAppHome returns the builder's home directory: $POCBUILDER_HOME when
// set, otherwise ~/.pocbuilder.
func getAppHome() (string, error) {
	if home := os.Getenv("POCBUILDER_HOME"); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, constants.AppHome), nil
}

// LogFilePath returns the path to the global CLI log file, for display.
func LogFilePath() (string, error) {
	home, err := getAppHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, constants.LogsDir, constants.CLILogFileName), nil
}
