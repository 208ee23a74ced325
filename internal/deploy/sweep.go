package deploy

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ansumanpatra890-nocodeapp/my-agentic-app/internal/constants"
)

// SweepOrphans removes leftover project working directories under root.
//
// The registry lives only as long as the process, so a crash or a forgotten
// stop leaks directories. Call this once at startup, before any project is
// deployed; it is not safe to run while deployments are live under root.
func SweepOrphans(root string, logger zerolog.Logger) int {
	if root == "" {
		root = os.TempDir()
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Warn().Err(err).Str("root", root).Msg("orphan sweep skipped")
		return 0
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), constants.ProjectDirPrefix) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if err := os.RemoveAll(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("orphan removal failed")
			continue
		}
		removed++
	}

	if removed > 0 {
		logger.Info().Int("removed", removed).Str("root", root).Msg("swept orphaned project directories")
	}
	return removed
}
