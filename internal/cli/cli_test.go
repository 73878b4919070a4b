package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
	pkgio "github.com/allen-marshall/lv2-se-bundle/pkg/io"
	"github.com/allen-marshall/lv2-se-bundle/pkg/observability"
	"github.com/allen-marshall/lv2-se-bundle/pkg/vocab"
)

// execute runs the root command with args and empty config and cache
// directories, returning what the command wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeWithCache(t, t.TempDir(), args...)
}

func executeWithCache(t *testing.T, cacheHome string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", cacheHome)
	t.Cleanup(observability.Reset)

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	root := c.RootCommand()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestImplied(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{
			name:    "plugin by name",
			args:    []string{"implied", "plugin", "Reverb"},
			want:    []string{"Reverb", "Delay", "Simulator", "Plugin", vocab.NsLV2 + "ReverbPlugin"},
			notWant: []string{"Filter"},
		},
		{
			name:    "atom by IRI",
			args:    []string{"implied", "atom", vocab.NsAtom + "Int"},
			want:    []string{"Int", "Number", "Atom"},
			notWant: []string{"Float"},
		},
		{
			name: "several classes",
			args: []string{"implied", "plugin", "Lowpass", "Compressor"},
			want: []string{"Lowpass", "Filter", "Compressor", "Dynamics"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(out, w) {
					t.Errorf("output contains %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestImplied_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"unknown class", []string{"implied", "plugin", "Kazoo"}, errors.ErrCodeUnknownTerm},
		{"class of other vocabulary", []string{"implied", "atom", "Reverb"}, errors.ErrCodeUnknownTerm},
		{"unknown vocabulary", []string{"implied", "port", "Input"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("execute(%v) error = %v, want code %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestAncestors_MatchesImplied(t *testing.T) {
	for _, kind := range []string{kindPlugin, kindAtom} {
		names := vocab.Names[vocab.PluginType]()
		if kind == kindAtom {
			names = vocab.Names[vocab.AtomType]()
		}
		for _, name := range names {
			implied, err := execute(t, "implied", kind, name)
			if err != nil {
				t.Fatalf("implied %s %s: %v", kind, name, err)
			}
			ancestors, err := execute(t, "ancestors", kind, name)
			if err != nil {
				t.Fatalf("ancestors %s %s: %v", kind, name, err)
			}
			if implied != ancestors {
				t.Errorf("%s %s: ancestors output\n%s\nwant\n%s", kind, name, ancestors, implied)
			}
		}
	}
}

func TestAncestors_IsA(t *testing.T) {
	out, err := execute(t, "ancestors", "plugin", "Reverb", "Lowpass", "--is-a", "Delay")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "Reverb is a Delay") {
		t.Errorf("output missing positive answer:\n%s", out)
	}
	if !strings.Contains(out, "Lowpass is not a Delay") {
		t.Errorf("output missing negative answer:\n%s", out)
	}
}

func TestGraph_DOT(t *testing.T) {
	out, err := execute(t, "graph", "plugin")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.HasPrefix(out, "digraph G {") {
		t.Errorf("output is not DOT:\n%s", out)
	}
	if !strings.Contains(out, `"Reverb" -> "Delay";`) {
		t.Errorf("output missing direct edge:\n%s", out)
	}
}

func TestGraph_Closure(t *testing.T) {
	direct, err := execute(t, "graph", "atom")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	closed, err := execute(t, "graph", "atom", "--closure")
	if err != nil {
		t.Fatalf("execute(--closure) error = %v", err)
	}

	const edge = `"Int" -> "Atom";`
	if strings.Contains(direct, edge) {
		t.Errorf("direct graph contains transitive edge %s", edge)
	}
	if !strings.Contains(closed, edge) {
		t.Errorf("closed graph missing %s", edge)
	}
	if strings.Contains(closed, `"Int" -> "Int";`) {
		t.Error("closed graph contains a self loop")
	}
}

func TestGraph_Reverse(t *testing.T) {
	out, err := execute(t, "graph", "plugin", "--reverse")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, `"Delay" -> "Reverb";`) {
		t.Errorf("reversed graph missing edge:\n%s", out)
	}
}

func TestGraph_Highlight(t *testing.T) {
	out, err := execute(t, "graph", "atom", "--highlight", "Int")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if n := strings.Count(out, "fillcolor=lightblue"); n != 3 {
		t.Errorf("highlighted %d nodes, want 3 (Int, Number, Atom):\n%s", n, out)
	}
}

func TestGraph_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atoms.dot")
	out, err := execute(t, "graph", "atom", "-o", path)
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if out != "" {
		t.Errorf("stdout = %q, want empty when writing a file", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte("digraph G {")) {
		t.Errorf("file is not DOT: %s", data)
	}
}

func TestGraph_SVG(t *testing.T) {
	out, err := execute(t, "graph", "atom", "--format", "svg")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "<svg") {
		t.Errorf("output is not SVG: %.200s", out)
	}
}

type recordingRenderHooks struct {
	observability.NoopRenderHooks
	mu      sync.Mutex
	formats []string
}

func (h *recordingRenderHooks) OnRenderComplete(_ context.Context, _, format string, _ int, _ time.Duration, _ error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.formats = append(h.formats, format)
}

func TestGraph_RenderHooks(t *testing.T) {
	hooks := &recordingRenderHooks{}
	observability.SetRenderHooks(hooks)

	if _, err := execute(t, "graph", "plugin", "-f", "dot"); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if len(hooks.formats) != 1 || hooks.formats[0] != formatDOT {
		t.Errorf("render hooks saw %v, want [dot]", hooks.formats)
	}
}

func TestGraph_RenderCache(t *testing.T) {
	cacheHome := t.TempDir()
	hooks := &recordingRenderHooks{}
	observability.SetRenderHooks(hooks)

	first, err := executeWithCache(t, cacheHome, "graph", "atom", "-f", "svg")
	if err != nil {
		t.Fatalf("first execute() error = %v", err)
	}
	observability.SetRenderHooks(hooks)
	second, err := executeWithCache(t, cacheHome, "graph", "atom", "-f", "svg")
	if err != nil {
		t.Fatalf("second execute() error = %v", err)
	}
	if first != second {
		t.Error("cached SVG differs from rendered SVG")
	}
	if len(hooks.formats) != 1 {
		t.Errorf("rendered %d times, want 1 with a warm cache", len(hooks.formats))
	}

	observability.SetRenderHooks(hooks)
	if _, err := executeWithCache(t, cacheHome, "graph", "atom", "-f", "svg", "--no-cache"); err != nil {
		t.Fatalf("execute(--no-cache) error = %v", err)
	}
	if len(hooks.formats) != 2 {
		t.Errorf("--no-cache rendered %d times in total, want 2", len(hooks.formats))
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		output   string
		fallback string
		want     string
		wantErr  bool
	}{
		{"fallback", "", "", "dot", "dot", false},
		{"from extension", "", "out.svg", "dot", "svg", false},
		{"explicit wins", "png", "out.svg", "dot", "png", false},
		{"unknown extension", "", "out.txt", "pdf", "pdf", false},
		{"invalid explicit", "gif", "", "dot", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := outputFormat(tt.explicit, tt.output, tt.fallback)
			if (err != nil) != tt.wantErr {
				t.Fatalf("outputFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("outputFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

const testManifest = `@prefix lv2: <http://lv2plug.in/ns/lv2core#> .
@prefix doap: <http://usefulinc.com/ns/doap#> .

<http://example.org/amp>
	a lv2:Plugin, lv2:AmplifierPlugin ;
	lv2:binary <amp.so> ;
	doap:name "Simple Amp" ;
	lv2:port [
		a lv2:InputPort, lv2:ControlPort ;
		lv2:index 0 ;
		lv2:symbol "gain" ;
		lv2:name "Gain" ;
		lv2:default 0.0 ;
		lv2:minimum -90.0 ;
		lv2:maximum 24.0
	] , [
		a lv2:OutputPort, lv2:AudioPort ;
		lv2:index 1 ;
		lv2:symbol "out" ;
		lv2:name "Out"
	] .
`

func writeTestBundle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "manifest.ttl"), []byte(testManifest), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", writeTestBundle(t))
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	for _, want := range []string{"Simple Amp", "http://example.org/amp", "Amplifier", "Dynamics", "gain", "out", `"Gain"`, "[-90", "1 plugins"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspect_NoImplied(t *testing.T) {
	out, err := execute(t, "inspect", "--implied=false", writeTestBundle(t))
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if strings.Contains(out, "Dynamics") {
		t.Errorf("output lists implied classes:\n%s", out)
	}
}

func TestInspect_JSON(t *testing.T) {
	out, err := execute(t, "inspect", "--json", writeTestBundle(t))
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	var doc pkgio.Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if len(doc.Plugins) != 1 || len(doc.Plugins[0].Ports) != 2 {
		t.Fatalf("document = %+v, want one plugin with two ports", doc)
	}
	if got := doc.Plugins[0].Names; len(got) != 1 || got[0].Value != "Simple Amp" {
		t.Errorf("names = %v", got)
	}
}

func TestInspect_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing bundle", []string{"inspect", filepath.Join(t.TempDir(), "none.lv2")}, errors.ErrCodeFileNotFound},
		{"invalid language", []string{"inspect", "--lang", "not a tag", writeTestBundle(t)}, errors.ErrCodeInvalidLangTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if !errors.Is(err, tt.code) {
				t.Errorf("execute(%v) error = %v, want code %s", tt.args, err, tt.code)
			}
		})
	}
}

func TestRoot_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("implied = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", cfg, "inspect", writeTestBundle(t))
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if strings.Contains(out, "Dynamics") {
		t.Errorf("config implied = false ignored:\n%s", out)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfg, []byte("log_level = \"loud\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := execute(t, "--config", cfg, "implied", "plugin", "Reverb")
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("execute() error = %v, want INVALID_INPUT", err)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, "version:") || !strings.Contains(out, "commit:") {
		t.Errorf("version output = %q", out)
	}
}

func TestCompletionCommand(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	if err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	if !strings.Contains(out, appName) {
		t.Error("bash completion does not mention the program")
	}
}

func TestCompletion_Classes(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    []string
		notWant []string
	}{
		{"kind", []string{"implied", ""}, []string{kindPlugin, kindAtom}, nil},
		{"plugin class", []string{"implied", "plugin", "Rev"}, []string{"Reverb"}, []string{"Delay"}},
		{"atom class", []string{"ancestors", "atom", "In"}, []string{"Int"}, []string{"Float"}},
		{"given classes skipped", []string{"implied", "plugin", "Reverb", "Rev"}, nil, []string{"Reverb"}},
		{"is-a flag", []string{"ancestors", "plugin", "Reverb", "--is-a", "Dyn"}, []string{"Dynamics"}, nil},
		{"highlight flag", []string{"graph", "atom", "--highlight", "In"}, []string{"Int"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{cobra.ShellCompRequestCmd}, tt.args...)...)
			if err != nil {
				t.Fatalf("execute() error = %v", err)
			}
			lines := strings.Split(out, "\n")
			for _, w := range tt.want {
				if !slices.Contains(lines, w) {
					t.Errorf("completions missing %q:\n%s", w, out)
				}
			}
			for _, w := range tt.notWant {
				if slices.Contains(lines, w) {
					t.Errorf("completions offer %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestAncestors_HelpExamples(t *testing.T) {
	cmd := New(io.Discard, LogInfo).ancestorsCommand()
	for _, line := range strings.Split(cmd.Example, "\n") {
		args := strings.Fields(line)
		if len(args) < 2 || args[0] != appName {
			continue
		}
		if _, err := execute(t, args[1:]...); err != nil {
			t.Errorf("example %q failed: %v", strings.TrimSpace(line), err)
		}
	}
}

