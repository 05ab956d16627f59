// Package render serializes dom trees to HTML.
//
// The Renderer writes elements, text and comments with HTML escaping and
// deterministic (sorted) attribute order, so two renders of equal trees
// produce byte-identical output. RenderPage wraps an outlet's content in
// the full document shell served on first load.
//
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(outlet)
package render
