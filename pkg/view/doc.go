// Package view provides the lifecycle base for UI units.
//
// A View owns exactly one root element, created at construction and never
// replaced. Rendering replaces the root's children with the output of the
// embedding type's Render method. Resources acquired while rendering are
// registered on the view's cleanup registry and released before the next
// render pass and on Destroy.
//
// Concrete views embed *View and pass themselves as the Renderer:
//
//	type HomePage struct {
//	    *view.View
//	}
//
//	func NewHomePage() *HomePage {
//	    p := &HomePage{}
//	    p.View = view.New("section", p, view.Options{ClassName: []string{"home"}})
//	    return p
//	}
//
//	func (p *HomePage) Render() (*dom.Node, error) {
//	    cta, err := components.NewButton(components.ButtonConfig{Label: "Shop", Href: "/cart"})
//	    if err != nil {
//	        return nil, err
//	    }
//	    return p.Tpl(`<h1>Welcome</h1>{{}}`, cta)
//	}
//
// Interpolating a child view into Tpl slots it: the child is rendered into
// the parent's content and its Destroy is registered on the parent, so
// destroying or re-rendering the parent tears the child down.
//
// # Render modes
//
// RenderAlways (the default) runs Render on every RenderToNode/Mount.
// RenderOnce renders on first activation and afterwards returns the cached
// root unchanged until the view is destroyed.
package view
