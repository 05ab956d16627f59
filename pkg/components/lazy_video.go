package components

import (
	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/view"
)

// VideoSource is one <source> of a LazyVideo.
type VideoSource struct {
	Src   string
	Type  string
	Media string
}

// LazyVideoConfig configures a LazyVideo.
type LazyVideoConfig struct {
	Sources   []VideoSource
	ClassName string

	// Poster is deferred like the sources; PlaceholderPoster is shown
	// meanwhile.
	Poster            string
	PlaceholderPoster string

	// Preload defaults to "none".
	Preload string

	Controls    bool
	Muted       bool
	Loop        bool
	AutoPlay    bool
	PlaysInline bool

	// Attrs cannot override the playback attributes or poster.
	Attrs Attrs
}

// LazyVideo is a <video> whose sources carry data-lazy-src instead of src.
type LazyVideo struct {
	*view.View
	sources []VideoSource
}

// NewLazyVideo builds the video element. It fails with ErrNoSources when
// cfg has no sources.
func NewLazyVideo(cfg LazyVideoConfig) (*LazyVideo, error) {
	if len(cfg.Sources) == 0 {
		return nil, ErrNoSources
	}

	attrs := cfg.Attrs.without("poster", "preload", "controls", "muted", "loop", "autoplay", "playsinline")
	attrs["preload"] = orDefault(cfg.Preload, "none")
	attrs["controls"] = cfg.Controls
	attrs["muted"] = cfg.Muted
	attrs["loop"] = cfg.Loop
	attrs["autoplay"] = cfg.AutoPlay
	attrs["playsinline"] = cfg.PlaysInline
	if cfg.Poster != "" {
		attrs["poster"] = orDefault(cfg.PlaceholderPoster, DefaultPlaceholder)
	}

	v := &LazyVideo{sources: append([]VideoSource(nil), cfg.Sources...)}
	v.View = view.New("video", v, view.Options{
		ClassName:  joinClasses("lazy-video", cfg.ClassName),
		Attrs:      attrs,
		Dataset:    map[string]any{"lazyPoster": optional(cfg.Poster)},
		RenderMode: view.RenderOnce,
	})
	return v, nil
}

func (v *LazyVideo) Render() (*dom.Node, error) {
	frag := dom.NewFragment()
	for _, s := range v.sources {
		source := dom.NewElement("source")
		source.SetData("lazySrc", s.Src)
		if s.Type != "" {
			source.SetAttr("type", s.Type)
		}
		if s.Media != "" {
			source.SetAttr("media", s.Media)
		}
		frag.AppendChild(source)
	}
	return frag, nil
}
