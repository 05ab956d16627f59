package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/vango-dev/outlet/internal/config"
	"github.com/vango-dev/outlet/internal/site"
	"github.com/vango-dev/outlet/internal/tracing"
	"github.com/vango-dev/outlet/pkg/content"
	"github.com/vango-dev/outlet/pkg/server"
)

const tracerName = "github.com/vango-dev/outlet"

// app is a fully wired site: server, content source and the background
// pieces that must be stopped with it.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *server.Server
	tracing *tracing.Provider
	watcher *content.Watcher
}

// loadConfig reads and validates the configuration at path.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newApp wires cfg into a server. Logs go to logw and stdout spans to
// tracew.
func newApp(ctx context.Context, cfg *config.Config, logw, tracew io.Writer) (*app, error) {
	a := &app{cfg: cfg, logger: cfg.NewLogger(logw)}

	tp, err := tracing.NewProvider(cfg.Tracing, tracew)
	if err != nil {
		return nil, err
	}
	a.tracing = tp

	src, err := a.contentSource(ctx)
	if err != nil {
		a.Close(context.Background())
		return nil, err
	}

	routes, err := site.Routes(cfg, src)
	if err != nil {
		a.Close(context.Background())
		return nil, err
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	sc := server.DefaultConfig()
	sc.Address = cfg.Listen
	sc.AppTitle = cfg.Title
	sc.Routes = routes
	sc.MetricsPath = metricsPath
	sc.Tracer = tp.Tracer(tracerName)
	sc.Logger = a.logger
	a.server = server.New(sc)
	return a, nil
}

// contentSource builds the configured source. Sites without content
// routes get none.
func (a *app) contentSource(ctx context.Context) (content.Source, error) {
	if !hasContentRoutes(a.cfg) {
		return nil, nil
	}

	var src content.Source
	var dir *content.DirSource
	switch a.cfg.Content.Source {
	case "s3":
		s3cfg := a.cfg.Content.S3
		client, err := content.NewS3Client(ctx, content.S3Options{
			Region:    s3cfg.Region,
			Endpoint:  s3cfg.Endpoint,
			PathStyle: s3cfg.PathStyle,
			Anonymous: s3cfg.Anonymous,
		})
		if err != nil {
			return nil, err
		}
		src = content.NewS3Source(client, s3cfg.Bucket, s3cfg.Prefix)
	default:
		var err error
		dir, err = content.NewDirSource(a.cfg.ContentDir())
		if err != nil {
			return nil, err
		}
		src = dir
	}

	if a.cfg.Content.CacheTTL <= 0 {
		return src, nil
	}
	cached := content.NewCached(src, a.cfg.Content.CacheTTL, a.logger)

	if a.cfg.Content.Watch && dir != nil {
		w, err := content.WatchCache(dir, cached, a.logger)
		if err != nil {
			return nil, err
		}
		if err := w.Start(); err != nil {
			return nil, err
		}
		a.watcher = w
	}
	return cached, nil
}

func hasContentRoutes(cfg *config.Config) bool {
	for _, rc := range cfg.Routes {
		if rc.Content != "" {
			return true
		}
	}
	return false
}

// Close stops the watcher and flushes pending spans.
func (a *app) Close(ctx context.Context) error {
	var errs []error
	if a.watcher != nil {
		errs = append(errs, a.watcher.Stop())
		a.watcher = nil
	}
	if a.tracing != nil {
		errs = append(errs, a.tracing.Shutdown(ctx))
	}
	return errors.Join(errs...)
}
