package view

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/outlet/pkg/cleanup"
	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/template"
)

// RenderMode controls how often Render is invoked.
type RenderMode uint8

const (
	// RenderAlways re-renders on every activation.
	RenderAlways RenderMode = iota
	// RenderOnce renders on first activation only.
	RenderOnce
)

// String returns the string representation of the RenderMode.
func (m RenderMode) String() string {
	switch m {
	case RenderAlways:
		return "always"
	case RenderOnce:
		return "once"
	default:
		return "unknown"
	}
}

// Renderer produces a view's current content. Render should depend only on
// the view's own state; the View decides when it is called.
type Renderer interface {
	Render() (*dom.Node, error)
}

// Renderable is anything that can be slotted into a parent's content.
type Renderable interface {
	RenderToNode() (*dom.Node, error)
	Destroy()
}

// Mountable is what a route factory produces.
type Mountable interface {
	Mount(parent *dom.Node) error
	Destroy()
}

// Options configure a view's root element.
type Options struct {
	// ClassName entries are joined with single spaces.
	ClassName []string

	// ID sets the id attribute.
	ID string

	// Attrs are applied once at construction. nil and false values are
	// omitted, true becomes an empty-value attribute, anything else is
	// formatted with fmt.Sprint.
	Attrs map[string]any

	// Dataset keys are in camelCase and become data-kebab-case
	// attributes. nil values are skipped.
	Dataset map[string]any

	// RenderMode defaults to RenderAlways.
	RenderMode RenderMode
}

// View is the lifecycle base embedded by concrete views.
type View struct {
	root     *dom.Node
	renderer Renderer
	cleanup  *cleanup.Registry
	mode     RenderMode
	rendered bool
}

// New creates a view whose root is a fresh tag element configured by opts.
// r supplies the content; it is normally the embedding struct.
func New(tag string, r Renderer, opts Options) *View {
	root := dom.NewElement(tag)
	applyOptions(root, opts)
	return &View{
		root:     root,
		renderer: r,
		mode:     opts.RenderMode,
	}
}

func applyOptions(root *dom.Node, opts Options) {
	if len(opts.ClassName) > 0 {
		root.SetClassName(opts.ClassName...)
	}
	if opts.ID != "" {
		root.SetID(opts.ID)
	}
	for key, value := range opts.Attrs {
		switch v := value.(type) {
		case nil:
			continue
		case bool:
			if v {
				root.SetAttr(key, "")
			}
			continue
		}
		if isNilPointer(value) {
			continue
		}
		root.SetAttr(key, fmt.Sprint(value))
	}
	for key, value := range opts.Dataset {
		if value == nil || isNilPointer(value) {
			continue
		}
		root.SetData(key, fmt.Sprint(value))
	}
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Root returns the view's root element.
func (v *View) Root() *dom.Node {
	return v.root
}

// Mode returns the view's render mode.
func (v *View) Mode() RenderMode {
	return v.mode
}

// Rendered reports whether the view has rendered since construction or
// the last Destroy.
func (v *View) Rendered() bool {
	return v.rendered
}

// Cleanup returns the view's cleanup registry, creating it on first use.
func (v *View) Cleanup() *cleanup.Registry {
	if v.cleanup == nil {
		v.cleanup = &cleanup.Registry{}
	}
	return v.cleanup
}

// Mount renders the view per its render mode and appends the root to parent.
func (v *View) Mount(parent *dom.Node) error {
	node, err := v.RenderToNode()
	if err != nil {
		return err
	}
	parent.AppendChild(node)
	return nil
}

// RenderToNode returns the root element, rendering it first unless the view
// is in RenderOnce mode and has already rendered.
func (v *View) RenderToNode() (*dom.Node, error) {
	if v.mode == RenderOnce && v.rendered {
		return v.root, nil
	}
	if err := v.renderPass(); err != nil {
		return nil, err
	}
	return v.root, nil
}

// Rerender forces a render pass regardless of render mode. Views call it
// after their own state changes.
func (v *View) Rerender() error {
	return v.renderPass()
}

// Destroy releases everything registered on the cleanup registry, detaches
// the root, and clears the rendered flag. Calling it again is harmless.
func (v *View) Destroy() {
	if v.cleanup != nil {
		v.cleanup.Run()
	}
	v.root.Remove()
	v.rendered = false
}

// renderPass releases the previous content's resources, then replaces the
// root's children with fresh Render output.
func (v *View) renderPass() error {
	if v.renderer == nil {
		return ErrNilRenderer
	}
	if v.cleanup != nil {
		v.cleanup.Run()
	}
	content, err := v.renderer.Render()
	if err != nil {
		return err
	}
	if content == nil {
		v.root.ReplaceChildren()
	} else {
		v.root.ReplaceChildren(content)
	}
	v.rendered = true
	return nil
}

// Slot takes ownership of child: it returns the child's node for inclusion
// in this view's content and registers the child's Destroy on this view.
func (v *View) Slot(child Renderable) (*dom.Node, error) {
	node, err := child.RenderToNode()
	if err != nil {
		return nil, err
	}
	v.Cleanup().Add(child.Destroy)
	return node, nil
}

// Tpl compiles markup with {{}} interpolation points. Renderable values are
// slotted, slices are walked recursively, and everything else is passed to
// the template compiler.
func (v *View) Tpl(markup string, values ...any) (*dom.Node, error) {
	normalized := make([]any, len(values))
	for i, value := range values {
		n, err := v.normalize(value)
		if err != nil {
			return nil, err
		}
		normalized[i] = n
	}
	return template.Compile(markup, normalized...)
}

func (v *View) normalize(value any) (any, error) {
	switch val := value.(type) {
	case nil:
		return nil, nil
	case *dom.Node, string, template.HTML:
		return val, nil
	case Renderable:
		if isNilPointer(val) {
			return nil, nil
		}
		return v.Slot(val)
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice || rv.Type().Elem().Kind() == reflect.Uint8 {
		return value, nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		n, err := v.normalize(rv.Index(i).Interface())
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
