package introspection

import "errors"

// ErrHintsFile is returned by ExecuteConfig.ResolveHints when the configured
// hints file cannot be read. The underlying I/O error is wrapped as well.
var ErrHintsFile = errors.New("hints file unreadable")
