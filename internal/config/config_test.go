package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bigint/internal/bignum"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load("", t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != "" || cfg.Demo.A.String() != "348975" || cfg.Demo.B.String() != "123" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.Batch.Format != "text" || cfg.Color != "auto" || cfg.Batch.Jobs != 0 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadWalksUp(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, `
[demo]
a = "-99999999999999999999"
b = "7"

[batch]
jobs = 4
fail_fast = true
format = "JSON"

[output]
color = "off"
`)
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	cfg, err := Load("", nested)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Path != path {
		t.Fatalf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.Demo.A.String() != "-99999999999999999999" || cfg.Demo.B.String() != "7" {
		t.Fatalf("demo = %s, %s", cfg.Demo.A, cfg.Demo.B)
	}
	if cfg.Batch.Jobs != 4 || !cfg.Batch.FailFast || cfg.Batch.Format != "json" || cfg.Color != "off" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[demo]\nb = \"5\"\n")
	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Demo.A.String() != "348975" || cfg.Demo.B.String() != "5" || cfg.Batch.Format != "text" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		body string
		want string
	}{
		{"[demo]\na = \"12x\"\n", "[demo].a"},
		{"[batch]\njobs = -1\n", "[batch].jobs"},
		{"[batch]\nformat = \"xml\"\n", "[batch].format"},
		{"[output]\ncolor = \"rainbow\"\n", "[output].color"},
		{"[demo]\nc = \"1\"\n", "unknown key demo.c"},
		{"[demo\n", "failed to parse TOML"},
	}
	for _, tc := range cases {
		path := writeConfig(t, t.TempDir(), tc.body)
		_, err := LoadFile(path)
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("LoadFile(%q) error = %v, want %q", tc.body, err, tc.want)
		}
	}
}

func TestLoadDemoFormatError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[demo]\nb = \"-\"\n")
	if _, err := LoadFile(path); !errors.Is(err, bignum.ErrFormat) {
		t.Fatalf("error = %v, want ErrFormat", err)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml"), ""); err == nil {
		t.Fatal("explicit missing config should fail")
	}
}
