package introspection

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// ResolveHints returns the text appended to the execute tool description.
//
// When HintsFile is set its contents are returned, regardless of Hints. The
// path is joined to configDir unless configDir is empty or the path is
// absolute, in which case it is used as given. A read failure is returned
// wrapping ErrHintsFile and the underlying error; Hints is not used as a
// fallback. When HintsFile is unset, Hints is returned as is, which may be nil.
//
// The file is read on every call. A nil logger uses slog.Default.
func (c ExecuteConfig) ResolveHints(configDir string, logger *slog.Logger) (*string, error) {
	if c.HintsFile == nil {
		return c.Hints, nil
	}
	if logger == nil {
		logger = slog.Default()
	}

	path := c.HintsPath(configDir)
	data, err := os.ReadFile(path) // #nosec G304 -- path from operator configuration
	if err != nil {
		logger.Warn("failed to read hints file", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %s: %w", ErrHintsFile, path, err)
	}

	logger.Info("loaded hints from file", "path", path)
	hints := string(data)
	return &hints, nil
}

// HintsPath returns the path ResolveHints reads, or "" when no hints file is
// configured.
func (c ExecuteConfig) HintsPath(configDir string) string {
	if c.HintsFile == nil {
		return ""
	}
	if configDir == "" || filepath.IsAbs(*c.HintsFile) {
		return *c.HintsFile
	}
	return filepath.Join(configDir, *c.HintsFile)
}
