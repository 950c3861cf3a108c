package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/repomap/pkg/pipeline"
	"github.com/matzehuels/repomap/pkg/tree"
)

const sampleFlatTree = `{
  "tree": [
    {"path": "README.md", "type": "blob", "size": 120},
    {"path": "cmd", "type": "tree"},
    {"path": "cmd/main.go", "type": "blob", "size": 300},
    {"path": "pkg/engine.go", "type": "blob", "size": 9000},
    {"path": "pkg/engine_test.go", "type": "blob", "size": 4000},
    {"path": "pkg/util/strings.go", "type": "blob", "size": 700},
    {"path": "vendor", "type": "commit"}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, name := range []string{"layout", "inspect", "browse", "config", "completion"} {
		if cmd, _, err := root.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if root.PersistentFlags().Lookup("verbose") == nil {
		t.Error("missing --verbose flag")
	}
}

func TestLayoutCommand(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "tree.json", sampleFlatTree)
	cfg := writeFile(t, dir, "config.toml", "mode = \"ring\"\ndiameter = 300\n")
	out := filepath.Join(dir, "layout.json")

	err := execute(t, "layout", input, "--config", cfg, "--mode", "rows", "--path", "pkg", "-o", out)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		Path     string  `json:"path"`
		Mode     string  `json:"mode"`
		Diameter float64 `json:"diameter"`
		Feasible bool    `json:"feasible"`
		Items    []struct {
			Name string `json:"name"`
		} `json:"items"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}

	// The flag overrides the file's mode; the file's diameter survives.
	if got.Mode != "rows" || got.Diameter != 300 {
		t.Errorf("mode %s, diameter %v; want rows, 300", got.Mode, got.Diameter)
	}
	if got.Path != "/pkg" || len(got.Items) != 2 || !got.Feasible {
		t.Errorf("path %s with %d items, feasible %v", got.Path, len(got.Items), got.Feasible)
	}
	if got.Items[0].Name != "engine.go" {
		t.Errorf("first item = %s, want engine.go", got.Items[0].Name)
	}
}

func TestLayoutCommandAll(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "tree.json", sampleFlatTree)
	out := filepath.Join(dir, "all.yaml")

	if err := execute(t, "layout", input, "--all", "--format", "yaml", "-o", out); err != nil {
		t.Fatalf("layout --all: %v", err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{"path: /\n", "path: /cmd\n", "path: /pkg\n", "path: /pkg/util\n"} {
		if !bytes.Contains(data, []byte(path)) {
			t.Errorf("output missing %q", path)
		}
	}
}

func TestLayoutCommandErrors(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "tree.json", sampleFlatTree)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing input", []string{"layout", filepath.Join(dir, "nope.json")}, "load tree"},
		{"bad mode", []string{"layout", input, "--mode", "spiral"}, "mode"},
		{"bad format", []string{"layout", input, "--format", "svg"}, "formats"},
		{"missing path", []string{"layout", input, "--path", "docs"}, "no entry"},
		{"file path", []string{"layout", input, "--path", "README.md"}, "is a file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLayoutPrecisionUsage(t *testing.T) {
	cmd := New(io.Discard, LogInfo).layoutCommand()
	f := cmd.Flags().Lookup("precision")
	if f == nil {
		t.Fatal("layout has no --precision flag")
	}
	if !strings.Contains(f.Usage, "refinement levels") || !strings.Contains(f.Usage, "precision-1 decimals") {
		t.Errorf("precision usage = %q", f.Usage)
	}
}

func TestOverrideOptions(t *testing.T) {
	flags := pipeline.Options{Mode: "rows", Diameter: 900, Precision: 2}
	cmd := &cobra.Command{Use: "x"}
	cmd.Flags().StringVar(&flags.Mode, "mode", flags.Mode, "")
	cmd.Flags().Float64Var(&flags.Diameter, "diameter", flags.Diameter, "")
	cmd.Flags().IntVar(&flags.Precision, "precision", flags.Precision, "")
	if err := cmd.Flags().Parse([]string{"--diameter", "450"}); err != nil {
		t.Fatal(err)
	}

	dst := pipeline.Options{Mode: "ring", Precision: 4}
	overrideOptions(cmd, &dst, flags)

	if dst.Diameter != 450 {
		t.Errorf("Diameter = %v, want the flag value 450", dst.Diameter)
	}
	if dst.Mode != "ring" || dst.Precision != 4 {
		t.Errorf("unset flags must keep file values, got mode %s precision %d", dst.Mode, dst.Precision)
	}
}

func TestLoadOptionsDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	opts, err := loadOptions("")
	if err != nil || opts.Mode != "" {
		t.Fatalf("missing default config should yield zero options, got %+v, %v", opts, err)
	}

	if err := os.MkdirAll(filepath.Join(home, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(home, appName), configFileName, "mode = \"ring\"\n")
	opts, err = loadOptions("")
	if err != nil || opts.Mode != "ring" {
		t.Errorf("loadOptions() = %+v, %v; want ring", opts, err)
	}

	if _, err := loadOptions(filepath.Join(home, "absent.toml")); err == nil {
		t.Error("an explicit missing config file should fail")
	}
}

func TestWriteEffectiveOptions(t *testing.T) {
	var buf bytes.Buffer
	if err := writeEffectiveOptions(&buf, pipeline.Options{Mode: "ring"}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`mode = "ring"`, "diameter = 600", "precision = 5"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	if err := writeEffectiveOptions(&buf, pipeline.Options{Mode: "spiral"}); err == nil {
		t.Error("invalid options should not be printed")
	}
}

func TestHeaviestContainers(t *testing.T) {
	root, err := tree.FromFlat([]tree.FlatEntry{
		{Path: "a/x.go", Type: tree.TypeBlob, Size: 10},
		{Path: "b/y.go", Type: tree.TypeBlob, Size: 50},
		{Path: "c/z.go", Type: tree.TypeBlob, Size: 10},
	})
	if err != nil {
		t.Fatal(err)
	}

	got := heaviestContainers(root, 3)
	want := []string{"/b", "/a", "/c"}
	for i, n := range got {
		if n.Path != want[i] {
			t.Errorf("heaviest[%d] = %s, want %s", i, n.Path, want[i])
		}
	}
	if len(heaviestContainers(root, 0)) != 4 {
		t.Error("n <= 0 should list every container")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestParseFormats(t *testing.T) {
	if got := parseFormats(""); len(got) != 1 || got[0] != pipeline.FormatJSON {
		t.Errorf("parseFormats(\"\") = %v", got)
	}
	if got := parseFormats("yaml,json"); len(got) != 2 || got[0] != "yaml" {
		t.Errorf("parseFormats(yaml,json) = %v", got)
	}
}

func TestGenCompletion(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		var buf bytes.Buffer
		if err := genCompletion(root, shell, &buf); err != nil || buf.Len() == 0 {
			t.Errorf("genCompletion(%s) = %v with %d bytes", shell, err, buf.Len())
		}
	}
	if err := genCompletion(root, "tcsh", io.Discard); err == nil {
		t.Error("unsupported shell should fail")
	}
}
