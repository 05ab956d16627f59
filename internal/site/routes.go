package site

import (
	"context"

	"github.com/vango-dev/outlet/internal/config"
	"github.com/vango-dev/outlet/internal/errors"
	"github.com/vango-dev/outlet/pkg/content"
	"github.com/vango-dev/outlet/pkg/router"
	"github.com/vango-dev/outlet/pkg/view"
)

// Built-in page names usable as RouteConfig.Page.
const (
	PageHome     = "home"
	PageNotFound = "notfound"
)

// Routes builds the route table for cfg. Content routes load from src,
// which may be nil when cfg has no content routes.
func Routes(cfg *config.Config, src content.Source) (router.Routes, error) {
	routes := make(router.Routes, len(cfg.Routes))
	for _, rc := range cfg.Routes {
		if _, dup := routes[rc.Path]; dup {
			return nil, errors.New("E103").WithDetail("path " + rc.Path)
		}
		create, err := factory(cfg, rc, src)
		if err != nil {
			return nil, err
		}
		routes[rc.Path] = router.Route{Title: rc.Title, Create: create}
	}
	return routes, nil
}

func factory(cfg *config.Config, rc config.RouteConfig, src content.Source) (router.Factory, error) {
	if rc.Content != "" {
		if src == nil {
			return nil, errors.New("E003").WithDetail("route " + rc.Path + " needs a content source")
		}
		if !content.ValidKey(rc.Content) {
			return nil, errors.New("E302").WithDetail("route " + rc.Path + ": " + rc.Content)
		}
		key := rc.Content
		return func(ctx context.Context) (view.Mountable, error) {
			p, err := LoadContentPage(ctx, src, key)
			if err != nil {
				return nil, err
			}
			return p, nil
		}, nil
	}

	switch rc.Page {
	case PageHome:
		title := cfg.Title
		return router.Sync(func() view.Mountable { return NewHomePage(title) }), nil
	case PageNotFound:
		return router.Sync(func() view.Mountable { return NewNotFoundPage() }), nil
	}
	return nil, errors.New("E104").
		WithDetail("page " + rc.Page + " on route " + rc.Path).
		WithSuggestion("Use one of: " + PageHome + ", " + PageNotFound)
}
