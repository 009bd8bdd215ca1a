package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-authform/pkg/validation"
)

func TestDefault(t *testing.T) {
	want := &Config{
		Rules: validation.RuleSet{Preset: validation.PresetStandard},
		Store: StoreConfig{Driver: DriverFile, Path: DefaultUsersPath},
		Log:   LogConfig{Level: "info", Format: FormatText},
	}
	if diff := cmp.Diff(want, Default()); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("default must validate: %v", err)
	}
	if diff := cmp.Diff(validation.StandardRules(), Default().RuleSet()); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Driver != DriverFile || cfg.Store.Path != DefaultUsersPath {
		t.Fatalf("expected file driver at %s, got %q %q", DefaultUsersPath, cfg.Store.Driver, cfg.Store.Path)
	}
}

func TestParse_StoreDefaults(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want StoreConfig
	}{
		{name: "no store section", doc: "log:\n  level: info\n", want: StoreConfig{Driver: DriverFile, Path: DefaultUsersPath}},
		{name: "file without path", doc: "store:\n  driver: file\n", want: StoreConfig{Driver: DriverFile, Path: DefaultUsersPath}},
		{name: "file with path", doc: "store:\n  driver: file\n  path: users.json\n", want: StoreConfig{Driver: DriverFile, Path: "users.json"}},
		{name: "memory", doc: "store:\n  driver: memory\n", want: StoreConfig{Driver: DriverMemory}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.doc))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg.Store); diff != "" {
				t.Fatalf("store mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "authform.yaml")
	doc := `
rules:
  preset: Extended
store:
  driver: sqlite
  path: /tmp/users.db
log:
  level: debug
  format: json
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(validation.ExtendedRules(), cfg.RuleSet()); diff != "" {
		t.Fatalf("rules mismatch (-want +got):\n%s", diff)
	}
	if cfg.Store.Driver != DriverSQLite || cfg.Store.Path != "/tmp/users.db" {
		t.Fatalf("unexpected store %+v", cfg.Store)
	}

	var buf bytes.Buffer
	cfg.Logger(&buf, false).Debug("hello", "k", "v")
	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Fatalf("expected JSON debug line, got %q", buf.String())
	}
}

func TestParse_JSONAndOverride(t *testing.T) {
	cfg, err := Parse([]byte(`{"rules":{"preset":"standard","special_characters":"?"}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	rules := cfg.RuleSet()
	if rules.SpecialCharacters != "?" {
		t.Fatalf("expected override, got %q", rules.SpecialCharacters)
	}
	if msg := rules.Password("Passw0rd?"); msg != "" {
		t.Fatalf("expected override to accept '?', got %q", msg)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"preset":        "rules: {preset: fancy}",
		"driver":        "store: {driver: redis}",
		"path required": "store: {driver: sqlite}",
		"level":         "log: {level: loud}",
		"format":        "log: {format: xml}",
		"syntax":        "rules: [",
		"negative":      "rules: {min_password_length: -1}",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatalf("expected error for %q", doc)
			}
		})
	}
}

func TestLogger_VerboseAndText(t *testing.T) {
	var buf bytes.Buffer
	logger := Default().Logger(&buf, false)
	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug must be filtered at info level")
	}
	Default().Logger(&buf, true).Debug("shown")
	if !strings.Contains(buf.String(), "msg=shown") {
		t.Fatalf("expected text debug line, got %q", buf.String())
	}
}
