package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// commandLogger builds a text logger on the command's stderr honouring the
// root --verbose and --quiet flags. Commands built without a root get the
// default info level.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	var w io.Writer = cmd.ErrOrStderr()
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
