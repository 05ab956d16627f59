package site

import (
	"context"
	"fmt"

	"github.com/vango-dev/outlet/pkg/content"
	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/template"
	"github.com/vango-dev/outlet/pkg/view"
)

// ContentPage shows an HTML fragment from a content source.
type ContentPage struct {
	*view.View
	key  string
	body template.HTML
}

// NewContentPage wraps an already loaded body.
func NewContentPage(key string, body []byte) *ContentPage {
	p := &ContentPage{key: key, body: template.HTML(body)}
	p.View = view.New("article", p, view.Options{
		ClassName:  []string{"content-page"},
		Dataset:    map[string]any{"contentKey": key},
		RenderMode: view.RenderOnce,
	})
	return p
}

// LoadContentPage fetches key from src and builds its page.
func LoadContentPage(ctx context.Context, src content.Source, key string) (*ContentPage, error) {
	body, err := src.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load content %s: %w", key, err)
	}
	return NewContentPage(key, body), nil
}

// Render inserts the loaded body as trusted markup.
func (p *ContentPage) Render() (*dom.Node, error) {
	return p.Tpl(`{{}}`, p.body)
}

// Key returns the content key the page was loaded from.
func (p *ContentPage) Key() string {
	return p.key
}
