package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/toolintrospect/config"
	"github.com/jonwraymond/toolintrospect/introspection"
)

// NewCheckCmd creates the "check" subcommand.
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <config-file>",
		Short: "Load a configuration file and report the introspection tools it enables",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}

	cmd.Flags().String("format", "text", "Output format: text | json")

	return cmd
}

// checkReport is the result of checking one configuration file.
type checkReport struct {
	Path        string   `json:"path"`
	Enabled     bool     `json:"enabled"`
	Tools       []string `json:"tools"`
	HintsSource string   `json:"hints_source"`
	HintsPath   string   `json:"hints_path,omitempty"`
	HintsBytes  int      `json:"hints_bytes"`
	HintsError  string   `json:"hints_error,omitempty"`
	LeafDepth   uint     `json:"leaf_depth"`
	IndexMemory uint     `json:"index_memory_bytes"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	format, _ := cmd.Flags().GetString("format")
	out := cmd.OutOrStdout()
	logger := commandLogger(cmd)

	file, err := config.Load(path)
	if err != nil {
		return exitError(exitFailure, "%s", err)
	}

	cfg := file.Introspection
	report := checkReport{
		Path:        path,
		Enabled:     cfg.AnyEnabled(),
		Tools:       cfg.EnabledTools(),
		HintsSource: "none",
		LeafDepth:   cfg.Search.LeafDepth,
		IndexMemory: cfg.Search.IndexMemoryBytes,
	}
	if report.Tools == nil {
		report.Tools = []string{}
	}

	var hintsErr error
	if cfg.Execute.Enabled {
		hintsErr = checkHints(&report, file, logger)
	}

	switch format {
	case "json":
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		_, _ = fmt.Fprintln(out, string(data))
	default:
		printCheckReport(out, report)
	}

	if hintsErr != nil {
		return exitError(exitHints, "%s", hintsErr)
	}
	return nil
}

func checkHints(report *checkReport, file *config.File, logger *slog.Logger) error {
	exec := file.Introspection.Execute
	switch {
	case exec.HintsFile != nil:
		report.HintsSource = "file"
		report.HintsPath = exec.HintsPath(file.Dir)
	case exec.Hints != nil:
		report.HintsSource = "inline"
	}

	hints, err := file.ResolveHints(logger)
	if err != nil {
		report.HintsError = err.Error()
		if errors.Is(err, introspection.ErrHintsFile) {
			return err
		}
		return fmt.Errorf("resolving hints: %w", err)
	}
	if hints != nil {
		report.HintsBytes = len(*hints)
	}
	return nil
}

func printCheckReport(w io.Writer, r checkReport) {
	_, _ = fmt.Fprintf(w, "%s\n", r.Path)
	if !r.Enabled {
		_, _ = fmt.Fprintln(w, "  no introspection tools enabled")
		return
	}
	_, _ = fmt.Fprintf(w, "  tools: %s\n", strings.Join(r.Tools, ", "))

	for _, tool := range r.Tools {
		switch tool {
		case introspection.ToolExecute:
			switch {
			case r.HintsError != "":
				_, _ = fmt.Fprintf(w, "  hints: %s (error: %s)\n", r.HintsSource, r.HintsError)
			case r.HintsSource == "file":
				_, _ = fmt.Fprintf(w, "  hints: file %s (%d bytes)\n", r.HintsPath, r.HintsBytes)
			case r.HintsSource == "inline":
				_, _ = fmt.Fprintf(w, "  hints: inline (%d bytes)\n", r.HintsBytes)
			default:
				_, _ = fmt.Fprintln(w, "  hints: none")
			}
		case introspection.ToolSearch:
			_, _ = fmt.Fprintf(w, "  search: leaf depth %d, index memory %d bytes\n", r.LeafDepth, r.IndexMemory)
		}
	}
}
