package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/toolintrospect/schema"
)

// newTestRoot creates a fresh cobra root command wired to all subcommands.
// Each test gets an isolated command tree to avoid shared state.
func newTestRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "introspect",
		SilenceUsage: true,
	}
	root.PersistentFlags().Bool("verbose", false, "")
	root.PersistentFlags().Bool("quiet", false, "")
	root.AddCommand(NewSchemaCmd())
	root.AddCommand(NewCheckCmd())
	return root
}

// executeCommand runs a cobra command with the given args and captures stdout/stderr.
func executeCommand(root *cobra.Command, args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	root.SetOut(&outBuf)
	root.SetErr(&errBuf)
	root.SetArgs(args)
	err = root.Execute()
	return outBuf.String(), errBuf.String(), err
}

// writeTestFile creates a file with the given content in dir and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error %v is not an ExitError", err)
	}
	return exitErr.Code
}

func TestDefaultSchemas(t *testing.T) {
	names := DefaultSchemas().Names()
	want := []string{
		"introspection",
		"introspection.execute",
		"introspection.introspect",
		"introspection.search",
		"introspection.validate",
		"tool.execute",
		"tool.introspect",
		"tool.search",
		"tool.validate",
	}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names() = %v, want %v", names, want)
	}
}

func TestSchemaCmd_Named(t *testing.T) {
	stdout, _, err := executeCommand(newTestRoot(), "schema", "introspection.search")
	if err != nil {
		t.Fatalf("schema failed: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if doc["$schema"] != schema.Draft07 {
		t.Errorf("$schema = %v", doc["$schema"])
	}
	props := doc["properties"].(map[string]any)
	leaf := props["leaf_depth"].(map[string]any)
	if leaf["default"] != float64(1) {
		t.Errorf("leaf_depth default = %v, want 1", leaf["default"])
	}
	if !strings.Contains(stdout, "\n  ") {
		t.Error("expected indented output by default")
	}
}

func TestSchemaCmd_All(t *testing.T) {
	stdout, _, err := executeCommand(newTestRoot(), "schema", "--pretty=false")
	if err != nil {
		t.Fatalf("schema failed: %v", err)
	}
	if strings.Count(strings.TrimSpace(stdout), "\n") != 0 {
		t.Error("expected single-line output with --pretty=false")
	}

	var docs map[string]map[string]any
	if err := json.Unmarshal([]byte(stdout), &docs); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(docs) != len(DefaultSchemas().Names()) {
		t.Errorf("got %d schemas, want %d", len(docs), len(DefaultSchemas().Names()))
	}
	if docs["introspection"]["title"] != "Config" {
		t.Errorf("introspection title = %v", docs["introspection"]["title"])
	}
}

func TestSchemaCmd_List(t *testing.T) {
	stdout, _, err := executeCommand(newTestRoot(), "schema", "--list")
	if err != nil {
		t.Fatalf("schema --list failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 9 || lines[0] != "introspection" {
		t.Errorf("--list output = %q", stdout)
	}
}

func TestSchemaCmd_UnknownName(t *testing.T) {
	_, _, err := executeCommand(newTestRoot(), "schema", "nope")
	if err == nil {
		t.Fatal("expected error")
	}
	if code := exitCode(t, err); code != exitUnknownName {
		t.Errorf("exit code = %d, want %d", code, exitUnknownName)
	}
	if !strings.Contains(err.Error(), "nope") {
		t.Errorf("error %q does not name the schema", err)
	}
}

const enabledYAML = `introspection:
  execute:
    enabled: true
    hints_file: hints.md
  search:
    enabled: true
    leaf_depth: 2
`

func TestCheckCmd_Enabled(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "hints.md", "Use the viewer field.")
	path := writeTestFile(t, dir, "server.yaml", enabledYAML)

	stdout, stderr, err := executeCommand(newTestRoot(), "check", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	for _, want := range []string{
		"tools: execute, search",
		"hints: file " + filepath.Join(dir, "hints.md") + " (21 bytes)",
		"search: leaf depth 2, index memory 50000000 bytes",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
	if !strings.Contains(stderr, "loaded hints from file") {
		t.Errorf("stderr missing hints log:\n%s", stderr)
	}
}

func TestCheckCmd_Quiet(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "hints.md", "Use the viewer field.")
	path := writeTestFile(t, dir, "server.yaml", enabledYAML)

	_, stderr, err := executeCommand(newTestRoot(), "--quiet", "check", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if stderr != "" {
		t.Errorf("expected no logs with --quiet, got:\n%s", stderr)
	}
}

func TestCheckCmd_Disabled(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "server.json", `{"introspection": {}}`)

	stdout, _, err := executeCommand(newTestRoot(), "check", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(stdout, "no introspection tools enabled") {
		t.Errorf("output = %q", stdout)
	}
}

func TestCheckCmd_InlineHintsJSON(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "server.json",
		`{"introspection": {"execute": {"enabled": true, "hints": "abc"}, "validate": {"enabled": true}}}`)

	stdout, _, err := executeCommand(newTestRoot(), "check", "--format", "json", path)
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}

	var report checkReport
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout)
	}
	if !report.Enabled {
		t.Error("report.Enabled = false")
	}
	if strings.Join(report.Tools, ",") != "execute,validate" {
		t.Errorf("report.Tools = %v", report.Tools)
	}
	if report.HintsSource != "inline" || report.HintsBytes != 3 {
		t.Errorf("hints = %s/%d, want inline/3", report.HintsSource, report.HintsBytes)
	}
	if report.LeafDepth != 1 {
		t.Errorf("report.LeafDepth = %d, want default 1", report.LeafDepth)
	}
}

func TestCheckCmd_MissingHintsFile(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "server.yaml", enabledYAML)

	stdout, _, err := executeCommand(newTestRoot(), "check", path)
	if err == nil {
		t.Fatal("expected error")
	}
	if code := exitCode(t, err); code != exitHints {
		t.Errorf("exit code = %d, want %d", code, exitHints)
	}
	if !strings.Contains(stdout, "hints: file (error:") {
		t.Errorf("output missing hints error:\n%s", stdout)
	}
}

func TestCheckCmd_MissingHintsFileIgnoredWhenExecuteDisabled(t *testing.T) {
	path := writeTestFile(t, t.TempDir(), "server.yaml", `introspection:
  execute:
    hints_file: missing.md
  validate:
    enabled: true
`)

	if _, _, err := executeCommand(newTestRoot(), "check", path); err != nil {
		t.Errorf("check failed: %v", err)
	}
}

func TestCheckCmd_LoadFailures(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
	}{
		{name: "missing file", path: filepath.Join(dir, "missing.yaml")},
		{name: "bad yaml", path: writeTestFile(t, dir, "bad.yaml", "introspection: [unclosed")},
		{name: "wrong type", path: writeTestFile(t, dir, "bad.json", `{"introspection": {"search": {"leaf_depth": "deep"}}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(newTestRoot(), "check", tt.path)
			if err == nil {
				t.Fatal("expected error")
			}
			if code := exitCode(t, err); code != exitFailure {
				t.Errorf("exit code = %d, want %d", code, exitFailure)
			}
		})
	}
}
