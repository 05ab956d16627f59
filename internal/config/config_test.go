package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	outleterrors "github.com/vango-dev/outlet/internal/errors"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, FileName)
	if err := os.WriteFile(p, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
title: Demo Motors
listen: ":9090"
log:
  level: debug
  format: json
content:
  source: s3
  cache_ttl: 30s
  s3:
    bucket: site
    prefix: pages/
    region: eu-west-1
    path_style: true
routes:
  - path: /
    title: Home
    page: home
  - path: /about
    title: About
    content: about.html
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Title != "Demo Motors" || cfg.Listen != ":9090" {
		t.Errorf("title/listen = %q %q", cfg.Title, cfg.Listen)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("log = %+v", cfg.Log)
	}
	if cfg.Content.Source != "s3" || cfg.Content.CacheTTL != 30*time.Second {
		t.Errorf("content = %+v", cfg.Content)
	}
	if cfg.Content.S3 != (S3Config{Bucket: "site", Prefix: "pages/", Region: "eu-west-1", PathStyle: true}) {
		t.Errorf("s3 = %+v", cfg.Content.S3)
	}
	if len(cfg.Routes) != 2 || cfg.Routes[1].Content != "about.html" {
		t.Errorf("routes = %+v", cfg.Routes)
	}
	// Unset keys keep their defaults.
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("metrics = %+v", cfg.Metrics)
	}
	if cfg.Path() != path || cfg.Dir() != dir {
		t.Errorf("path = %q dir = %q", cfg.Path(), cfg.Dir())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "title: From File\n")
	t.Setenv("OUTLET_TITLE", "From Env")
	t.Setenv("OUTLET_CONTENT_DIR", "/srv/content")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "From Env" {
		t.Errorf("title = %q, want env override", cfg.Title)
	}
	if cfg.ContentDir() != "/srv/content" {
		t.Errorf("content dir = %q", cfg.ContentDir())
	}
}

func TestLoadDefaultsWithoutRoutes(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "title: Bare\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Routes) != 2 || cfg.Routes[0].Page != "home" || cfg.Routes[1].Path != "/404" {
		t.Errorf("routes = %+v, want defaults", cfg.Routes)
	}
	if cfg.Content.Source != "dir" || cfg.Content.CacheTTL != DefaultCacheTTL {
		t.Errorf("content = %+v", cfg.Content)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if outleterrors.CodeOf(err) != "E001" {
		t.Errorf("err = %v, want E001", err)
	}
}

func TestFindProjectRoot(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "title: x\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := FindProjectRoot(nested)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := filepath.EvalSymlinks(root)
	if g, _ := filepath.EvalSymlinks(got); g != want {
		t.Errorf("root = %q, want %q", got, root)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		code   string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty title", func(c *Config) { c.Title = " " }, "E002"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "E004"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "E004"},
		{"unknown source", func(c *Config) { c.Content.Source = "ftp" }, "E003"},
		{"s3 without bucket", func(c *Config) { c.Content.Source = "s3" }, "E003"},
		{"route without title", func(c *Config) { c.Routes[0].Title = "" }, "E101"},
		{"route with page and content", func(c *Config) { c.Routes[0].Content = "x.html" }, "E102"},
		{"route with neither", func(c *Config) { c.Routes[0].Page = "" }, "E102"},
		{"duplicate path", func(c *Config) { c.Routes[1].Path = "/" }, "E103"},
		{"relative path", func(c *Config) { c.Routes[0].Path = "about" }, "E105"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if got := outleterrors.CodeOf(err); got != tt.code {
				t.Errorf("code = %q (%v), want %s", got, err, tt.code)
			}
		})
	}
}

func TestValidateTracingExporter(t *testing.T) {
	cfg := Defaults()
	cfg.Tracing.Exporter = "zipkin"
	err := cfg.Validate()
	var e *outleterrors.Error
	if !errors.As(err, &e) || e.Category != outleterrors.CategoryConfig {
		t.Errorf("err = %v, want config error", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Defaults()
	cfg.Log = LogConfig{Level: "warn", Format: "json"}
	logger := cfg.NewLogger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info should be filtered at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) || !strings.Contains(out, `"k":"v"`) {
		t.Errorf("json output = %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"":      slog.LevelInfo,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range levels {
		got, err := ParseLevel(name)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v", name, got, err)
		}
	}
}
