package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/vango-dev/outlet/internal/errors"
)

const (
	// FileName is the name of the configuration file.
	FileName = "outlet.yaml"

	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "OUTLET"

	DefaultListen      = ":8080"
	DefaultContentDir  = "content"
	DefaultMetricsPath = "/metrics"
	DefaultCacheTTL    = 5 * time.Minute
)

// Config is the complete site configuration.
type Config struct {
	// Title is the site title, prefixed to every route title.
	Title string `mapstructure:"title"`

	// Listen is the HTTP listen address.
	Listen string `mapstructure:"listen"`

	Log     LogConfig     `mapstructure:"log"`
	Content ContentConfig `mapstructure:"content"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Tracing TracingConfig `mapstructure:"tracing"`

	// Routes is the route table. Defaults to a home page and a not-found
	// page when empty.
	Routes []RouteConfig `mapstructure:"routes"`

	// path is the file the config was loaded from.
	path string
}

// LogConfig controls the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Format is text or json.
	Format string `mapstructure:"format"`
}

// ContentConfig selects where content routes load their bodies from.
type ContentConfig struct {
	// Source is "dir" or "s3".
	Source string `mapstructure:"source"`

	// Dir is the content root for the dir source.
	Dir string `mapstructure:"dir"`

	// Watch invalidates cached content when files under Dir change.
	Watch bool `mapstructure:"watch"`

	// CacheTTL is how long loaded content is kept. Zero disables caching.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`

	S3 S3Config `mapstructure:"s3"`
}

// S3Config locates content in a bucket.
type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	PathStyle bool   `mapstructure:"path_style"`

	// Anonymous sends unsigned requests, for public buckets.
	Anonymous bool `mapstructure:"anonymous"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// TracingConfig controls navigation tracing.
type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Exporter is "stdout" or "none".
	Exporter    string `mapstructure:"exporter"`
	ServiceName string `mapstructure:"service_name"`
}

// RouteConfig is one entry of the route table. Exactly one of Page and
// Content is set.
type RouteConfig struct {
	Path  string `mapstructure:"path"`
	Title string `mapstructure:"title"`

	// Page names a built-in page.
	Page string `mapstructure:"page"`

	// Content is a content key loaded from the content source.
	Content string `mapstructure:"content"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Config {
	return Config{
		Title:  "Outlet",
		Listen: DefaultListen,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Content: ContentConfig{
			Source:   "dir",
			Dir:      DefaultContentDir,
			CacheTTL: DefaultCacheTTL,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    DefaultMetricsPath,
		},
		Tracing: TracingConfig{
			Exporter:    "stdout",
			ServiceName: "outlet",
		},
		Routes: DefaultRoutes(),
	}
}

// DefaultRoutes is the route table used when none is configured.
func DefaultRoutes() []RouteConfig {
	return []RouteConfig{
		{Path: "/", Title: "Home", Page: "home"},
		{Path: "/404", Title: "Not found", Page: "notfound"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("title", d.Title)
	v.SetDefault("listen", d.Listen)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("content.source", d.Content.Source)
	v.SetDefault("content.dir", d.Content.Dir)
	v.SetDefault("content.watch", d.Content.Watch)
	v.SetDefault("content.cache_ttl", d.Content.CacheTTL)
	v.SetDefault("content.s3.bucket", "")
	v.SetDefault("content.s3.prefix", "")
	v.SetDefault("content.s3.region", "")
	v.SetDefault("content.s3.endpoint", "")
	v.SetDefault("content.s3.path_style", false)
	v.SetDefault("content.s3.anonymous", false)
	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.path", d.Metrics.Path)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

// Load reads configuration from path. With an empty path it looks for
// outlet.yaml in the working directory and its parents, and falls back to
// defaults when there is none. Environment overrides apply either way.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		if root, err := FindProjectRoot("."); err == nil {
			path = filepath.Join(root, FileName)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.New("E001").
				WithDetail(path).
				WithSuggestion("Check that the file exists and is valid YAML").
				Wrap(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.New("E001").Wrap(err)
	}
	cfg.path = v.ConfigFileUsed()
	if len(cfg.Routes) == 0 {
		cfg.Routes = DefaultRoutes()
	}
	return &cfg, nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Dir returns the directory relative paths are resolved against.
func (c *Config) Dir() string {
	if c.path == "" {
		return "."
	}
	return filepath.Dir(c.path)
}

// ContentDir returns the content root, resolved against Dir.
func (c *Config) ContentDir() string {
	if filepath.IsAbs(c.Content.Dir) {
		return c.Content.Dir
	}
	return filepath.Join(c.Dir(), c.Content.Dir)
}

// Validate checks the configuration for errors that would only surface
// at request time.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("E002").WithSuggestion("Set title: in " + FileName)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E004").WithDetail(`log.format must be "text" or "json"`)
	}

	switch c.Content.Source {
	case "dir":
	case "s3":
		if c.Content.S3.Bucket == "" {
			return errors.New("E003").WithDetail("content.s3.bucket is required for the s3 source")
		}
	default:
		return errors.New("E003")
	}

	switch c.Tracing.Exporter {
	case "", "stdout", "none":
	default:
		return errors.Newf(errors.CategoryConfig, "unknown tracing exporter %q", c.Tracing.Exporter)
	}

	seen := make(map[string]bool, len(c.Routes))
	for _, r := range c.Routes {
		if !strings.HasPrefix(r.Path, "/") {
			return errors.New("E105").WithDetail("path " + quote(r.Path))
		}
		if seen[r.Path] {
			return errors.New("E103").WithDetail("path " + quote(r.Path))
		}
		seen[r.Path] = true
		if strings.TrimSpace(r.Title) == "" {
			return errors.New("E101").WithDetail("path " + quote(r.Path))
		}
		if (r.Page == "") == (r.Content == "") {
			return errors.New("E102").
				WithDetail("path " + quote(r.Path)).
				WithSuggestion("Use page: for built-in pages and content: for content files")
		}
	}
	return nil
}

// ParseLevel maps a log level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, errors.New("E004").WithDetail("level " + quote(name))
}

// NewLogger builds the logger described by c.Log, writing to w.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Exists reports whether dir contains a config file.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, FileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the first directory holding
// a config file.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E001").
				WithDetail("No " + FileName + " found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

func quote(s string) string {
	return `"` + s + `"`
}
