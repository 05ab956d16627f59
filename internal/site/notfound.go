package site

import (
	"github.com/vango-dev/outlet/pkg/components"
	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/view"
)

// NotFoundPage is mounted for paths without a route.
type NotFoundPage struct {
	*view.View
}

func NewNotFoundPage() *NotFoundPage {
	p := &NotFoundPage{}
	p.View = view.New("section", p, view.Options{
		ClassName:  []string{"not-found-page"},
		RenderMode: view.RenderOnce,
	})
	return p
}

func (p *NotFoundPage) Render() (*dom.Node, error) {
	home, err := components.NewButton(components.ButtonConfig{
		Label:   "Back to home",
		Variant: components.VariantSolid,
		Href:    "/",
	})
	if err != nil {
		return nil, err
	}
	return p.Tpl(`
		<h1>Page not found</h1>
		<p>The page you are looking for does not exist.</p>
		{{}}
	`, home)
}
