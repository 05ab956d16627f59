package components

import (
	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/view"
)

// GalleryConfig configures a Gallery.
type GalleryConfig struct {
	Title     string
	ClassName string
	Images    []LazyImageConfig
}

// Gallery lays out a list of lazy images in a figure grid.
type Gallery struct {
	*view.View
	title  string
	images []LazyImageConfig
}

// NewGallery fails with ErrNoImages when cfg has no images.
func NewGallery(cfg GalleryConfig) (*Gallery, error) {
	if len(cfg.Images) == 0 {
		return nil, ErrNoImages
	}
	g := &Gallery{title: cfg.Title, images: cfg.Images}
	g.View = view.New("section", g, view.Options{
		ClassName:  joinClasses("gallery", cfg.ClassName),
		Dataset:    map[string]any{"count": len(cfg.Images)},
		RenderMode: view.RenderOnce,
	})
	return g, nil
}

func (g *Gallery) Render() (*dom.Node, error) {
	images := make([]*LazyImage, len(g.images))
	for i, cfg := range g.images {
		images[i] = NewLazyImage(cfg)
	}
	if g.title == "" {
		return g.Tpl(`<div class="gallery__grid">{{}}</div>`, images)
	}
	return g.Tpl(`<h2 class="gallery__title">{{}}</h2><div class="gallery__grid">{{}}</div>`, g.title, images)
}
