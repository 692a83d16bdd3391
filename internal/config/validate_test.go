package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newRoot builds a project root with a content dir and a registry file.
func newRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "content"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "viewer.tsx"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	return root
}

func validConfig() *Config {
	return &Config{
		Name:         "course",
		ContentDir:   "content",
		RegistryFile: "viewer.tsx",
	}
}

func intp(n int) *int { return &n }

func TestValidate_Defaults(t *testing.T) {
	root := newRoot(t)
	cfg := validConfig()
	if err := Validate(cfg, root); err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "sonnet" {
		t.Fatalf("model default = %q", cfg.Model)
	}
	if cfg.TimeoutMinutes == nil || *cfg.TimeoutMinutes != 15 {
		t.Fatalf("timeout default = %v", cfg.TimeoutMinutes)
	}
	if cfg.MinContentChars != 100 {
		t.Fatalf("min-content-chars default = %d", cfg.MinContentChars)
	}
	if cfg.OutputDir != filepath.Join(root, "public/presentations") {
		t.Fatalf("output-dir = %q", cfg.OutputDir)
	}
	if cfg.StaticDir != filepath.Join(root, "static/presentations") {
		t.Fatalf("static-dir = %q", cfg.StaticDir)
	}
	if cfg.ContentDir != filepath.Join(root, "content") {
		t.Fatalf("content-dir = %q", cfg.ContentDir)
	}
}

func TestValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"missing name", func(c *Config) { c.Name = "" }, "'name' is required"},
		{"missing content-dir", func(c *Config) { c.ContentDir = "" }, "'content-dir' is required"},
		{"missing registry", func(c *Config) { c.RegistryFile = "" }, "'registry-file' is required"},
		{"bad model", func(c *Config) { c.Model = "gpt4" }, "unknown model"},
		{"negative timeout", func(c *Config) { c.TimeoutMinutes = intp(-1) }, "timeout-minutes"},
		{"negative threshold", func(c *Config) { c.MinContentChars = -5 }, "min-content-chars"},
		{"content-dir not a dir", func(c *Config) { c.ContentDir = "viewer.tsx" }, "not a directory"},
		{"registry missing", func(c *Config) { c.RegistryFile = "nope.tsx" }, "not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := newRoot(t)
			cfg := validConfig()
			tc.mutate(cfg)
			err := Validate(cfg, root)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not contain %q", err, tc.want)
			}
		})
	}
}

func TestValidate_ZeroTimeoutDisables(t *testing.T) {
	root := newRoot(t)
	cfg := validConfig()
	cfg.TimeoutMinutes = intp(0)
	if err := Validate(cfg, root); err != nil {
		t.Fatal(err)
	}
	if *cfg.TimeoutMinutes != 0 {
		t.Fatalf("explicit 0 must stay 0 (timeout disabled), got %d", *cfg.TimeoutMinutes)
	}
}

func TestLoad_RoundTrip(t *testing.T) {
	root := newRoot(t)
	yaml := "name: course\ncontent-dir: content\nregistry-file: viewer.tsx\nmodel: opus\ntimeout-minutes: 5\n"
	path := filepath.Join(root, "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Model != "opus" || *cfg.TimeoutMinutes != 5 {
		t.Fatalf("got %+v", cfg)
	}
}

func TestLoad_ZeroTimeoutFromYAML(t *testing.T) {
	root := newRoot(t)
	yaml := "name: course\ncontent-dir: content\nregistry-file: viewer.tsx\ntimeout-minutes: 0\n"
	path := filepath.Join(root, "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path, root)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg.TimeoutMinutes != 0 {
		t.Fatalf("timeout-minutes: 0 must disable the timeout, got %d", *cfg.TimeoutMinutes)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir()); err == nil {
		t.Fatal("expected error")
	}
}
