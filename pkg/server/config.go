package server

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/outlet/pkg/router"
)

// Config holds server configuration.
type Config struct {
	// Address is the listen address (default ":8080").
	Address string

	// AppTitle prefixes every route title.
	AppTitle string

	// Routes is the site's route table.
	Routes router.Routes

	// StyleSheets are linked from the document shell.
	StyleSheets []string

	// MetricsPath serves prometheus metrics when non-empty.
	MetricsPath string

	// Registry receives the server's collectors. A fresh registry is
	// created when nil.
	Registry *prometheus.Registry

	// Tracer is used for navigation and request spans. Defaults to the
	// global tracer provider.
	Tracer trace.Tracer

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// CheckOrigin validates websocket origins (default SameOriginCheck).
	CheckOrigin func(r *http.Request) bool

	// Timeouts
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	ReadHeaderTimeout time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration

	// MaxMessageSize bounds client messages in bytes.
	MaxMessageSize int64

	// SendBuffer is the per-session outbound queue length.
	SendBuffer int
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":8080",
		CheckOrigin:       SameOriginCheck,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ShutdownTimeout:   15 * time.Second,
		MaxMessageSize:    4096,
		SendBuffer:        32,
	}
}

// withDefaults fills unset fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	out := *c
	d := DefaultConfig()
	if out.Address == "" {
		out.Address = d.Address
	}
	if out.CheckOrigin == nil {
		out.CheckOrigin = d.CheckOrigin
	}
	if out.ReadTimeout == 0 {
		out.ReadTimeout = d.ReadTimeout
	}
	if out.WriteTimeout == 0 {
		out.WriteTimeout = d.WriteTimeout
	}
	if out.ReadHeaderTimeout == 0 {
		out.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if out.IdleTimeout == 0 {
		out.IdleTimeout = d.IdleTimeout
	}
	if out.ShutdownTimeout == 0 {
		out.ShutdownTimeout = d.ShutdownTimeout
	}
	if out.MaxMessageSize == 0 {
		out.MaxMessageSize = d.MaxMessageSize
	}
	if out.SendBuffer == 0 {
		out.SendBuffer = d.SendBuffer
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	if out.Registry == nil {
		out.Registry = prometheus.NewRegistry()
	}
	return &out
}

// SameOriginCheck accepts websocket upgrades whose Origin host matches the
// request host, and requests without an Origin header.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && u.Host == r.Host
}
