package components

import (
	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/view"
)

// DefaultPlaceholder is shown until the client swaps in the real source.
const DefaultPlaceholder = "/assets/shared/placeholder.png"

// LazyImageConfig configures a LazyImage.
type LazyImageConfig struct {
	Src         string
	Alt         string
	ClassName   string
	Placeholder string
	Srcset      string
	Sizes       string

	// Loading defaults to "lazy", Decoding to "async".
	Loading  string
	Decoding string

	Width  any
	Height any

	// Attrs cannot override src, alt, srcset, sizes, loading or decoding.
	Attrs Attrs
}

// LazyImage is an <img> that starts on a placeholder and carries the real
// sources in data-lazy-* attributes.
type LazyImage struct {
	*view.View
	src string
}

// NewLazyImage builds the image element.
func NewLazyImage(cfg LazyImageConfig) *LazyImage {
	placeholder := cfg.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	attrs := cfg.Attrs.without("src", "alt", "srcset", "sizes", "loading", "decoding")
	attrs["src"] = placeholder
	attrs["alt"] = cfg.Alt
	attrs["loading"] = orDefault(cfg.Loading, "lazy")
	attrs["decoding"] = orDefault(cfg.Decoding, "async")
	if cfg.Width != nil {
		attrs["width"] = cfg.Width
	}
	if cfg.Height != nil {
		attrs["height"] = cfg.Height
	}

	img := &LazyImage{src: cfg.Src}
	img.View = view.New("img", img, view.Options{
		ClassName:  joinClasses("lazy-image", cfg.ClassName),
		Attrs:      attrs,
		Dataset:    map[string]any{"lazySrc": cfg.Src, "lazySrcset": optional(cfg.Srcset), "lazySizes": optional(cfg.Sizes)},
		RenderMode: view.RenderOnce,
	})
	return img
}

// Render returns nothing; an image has no children.
func (img *LazyImage) Render() (*dom.Node, error) {
	return nil, nil
}

// Src returns the real image source.
func (img *LazyImage) Src() string {
	return img.src
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// optional maps the empty string to nil so the attribute is skipped.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}
