package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/allen-marshall/lv2-se-bundle/pkg/errors"
)

func TestConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error = %v", err)
	}
	if want := filepath.Join("/tmp/xdg", appName, "config.toml"); got != want {
		t.Errorf("configPath() = %q, want %q", got, want)
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string // empty means no file
		want    Config
		wantErr bool
	}{
		{
			name: "missing file",
			want: DefaultConfig(),
		},
		{
			name:    "partial file keeps defaults",
			content: "format = \"svg\"\n",
			want:    Config{Format: "svg", Implied: true, LogLevel: "info"},
		},
		{
			name: "every key",
			content: `format = "png"
implied = false
log_level = "debug"
max_triples = 100000
`,
			want: Config{Format: "png", Implied: false, LogLevel: "debug", MaxTriples: 100000},
		},
		{name: "unknown key", content: "formt = \"svg\"\n", wantErr: true},
		{name: "invalid format", content: "format = \"gif\"\n", wantErr: true},
		{name: "negative max triples", content: "max_triples = -1\n", wantErr: true},
		{name: "not toml", content: "format = \n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if tt.content != "" {
				if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}

			got, err := loadConfig(path)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidInput) {
					t.Errorf("loadConfig() error = %v, want INVALID_INPUT", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("loadConfig() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("loadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
