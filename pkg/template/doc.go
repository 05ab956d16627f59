// Package template compiles HTML markup with interpolation points into a
// detached dom fragment.
//
// Markup uses {{}} to mark each interpolation point; values are consumed in
// order. Values in content position may be:
//
//   - nil: renders nothing
//   - *dom.Node: inserted as-is (fragments are spliced)
//   - HTML: trusted markup, parsed and inserted
//   - any slice: each element interpolated in turn, recursively
//   - anything else: rendered as escaped text via fmt.Sprint
//
// Values in attribute position are stringified; nodes are rejected there.
//
//	frag, err := template.Compile(`<h1 class="{{}}">{{}}</h1>`, "title", "Hello")
//
// The compiler knows nothing about views. The view package resolves child
// views to nodes before calling Compile.
package template
