// Package site is the outlet demo site: its pages and the route table
// built from configuration.
package site

import (
	"github.com/vango-dev/outlet/pkg/components"
	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/view"
)

// HomePage is the landing page.
type HomePage struct {
	*view.View
	title string
}

// NewHomePage creates the landing page for a site called title.
func NewHomePage(title string) *HomePage {
	p := &HomePage{title: title}
	p.View = view.New("section", p, view.Options{ClassName: []string{"home-page"}})
	return p
}

func (p *HomePage) Render() (*dom.Node, error) {
	hero, err := newHero(p.title)
	if err != nil {
		return nil, err
	}
	gallery, err := components.NewGallery(components.GalleryConfig{
		Title: "Gallery",
		Images: []components.LazyImageConfig{
			{Src: "/assets/home/exterior.jpg", Alt: "Exterior", Width: 640, Height: 400},
			{Src: "/assets/home/interior.jpg", Alt: "Interior", Width: 640, Height: 400},
			{Src: "/assets/home/detail.jpg", Alt: "Detail", Width: 640, Height: 400},
		},
	})
	if err != nil {
		return nil, err
	}
	return p.Tpl(`{{}}{{}}`, hero, gallery)
}

// hero is the banner at the top of the home page.
type hero struct {
	*view.View
	heading string
	ctas    []*components.Button
}

func newHero(heading string) (*hero, error) {
	demo, err := components.NewButton(components.ButtonConfig{
		Label:     "Demo Drive",
		Variant:   components.VariantCTA,
		ClassName: "hero-cta",
		Href:      "/demo",
	})
	if err != nil {
		return nil, err
	}
	about, err := components.NewButton(components.ButtonConfig{
		Label:    "Learn more",
		Variant:  components.VariantOutline,
		Inverted: true,
		Href:     "/about",
	})
	if err != nil {
		return nil, err
	}

	h := &hero{heading: heading, ctas: []*components.Button{demo, about}}
	h.View = view.New("div", h, view.Options{
		ClassName:  []string{"hero"},
		RenderMode: view.RenderOnce,
	})
	return h, nil
}

func (h *hero) Render() (*dom.Node, error) {
	return h.Tpl(`
		<h1 class="hero__title">{{}}</h1>
		<div class="hero__actions">{{}}</div>
	`, h.heading, h.ctas)
}
