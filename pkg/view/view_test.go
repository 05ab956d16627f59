package view

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/vango-dev/outlet/pkg/dom"
)

// counter renders a paragraph with its render count.
type counter struct {
	*View
	renders int
	err     error
}

func newCounter(mode RenderMode) *counter {
	c := &counter{}
	c.View = New("div", c, Options{RenderMode: mode})
	return c
}

func (c *counter) Render() (*dom.Node, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.renders++
	return c.Tpl(`<p>{{}}</p>`, c.renders)
}

// child records how many times it was destroyed.
type child struct {
	*View
	label     string
	destroyed int
}

func newChild(label string) *child {
	c := &child{label: label}
	c.View = New("span", c, Options{RenderMode: RenderOnce})
	return c
}

func (c *child) Render() (*dom.Node, error) {
	return dom.NewText(c.label), nil
}

func (c *child) Destroy() {
	c.destroyed++
	c.View.Destroy()
}

// parent interpolates whatever children it is given.
type parent struct {
	*View
	kids []*child
}

func newParent(kids ...*child) *parent {
	p := &parent{kids: kids}
	p.View = New("section", p, Options{})
	return p
}

func (p *parent) Render() (*dom.Node, error) {
	return p.Tpl(`<div class="kids">{{}}</div>`, p.kids)
}

func TestRenderOnceRendersExactlyOnce(t *testing.T) {
	c := newCounter(RenderOnce)
	outlet := dom.NewElement("div")

	for i := 0; i < 3; i++ {
		if _, err := c.RenderToNode(); err != nil {
			t.Fatal(err)
		}
	}
	if err := c.Mount(outlet); err != nil {
		t.Fatal(err)
	}

	if c.renders != 1 {
		t.Errorf("renders = %d, want 1", c.renders)
	}
	if c.Root().Parent() != outlet {
		t.Error("root not mounted")
	}
}

func TestRenderAlwaysRendersEveryActivation(t *testing.T) {
	c := newCounter(RenderAlways)

	c.RenderToNode()
	c.RenderToNode()
	c.Rerender()

	if c.renders != 3 {
		t.Errorf("renders = %d, want 3", c.renders)
	}
	if got := c.Root().TextContent(); got != "3" {
		t.Errorf("content = %q, want latest render", got)
	}
	if c.Root().ChildCount() != 1 {
		t.Errorf("root has %d children, want content replaced", c.Root().ChildCount())
	}
}

func TestRerenderIgnoresOnceMode(t *testing.T) {
	c := newCounter(RenderOnce)
	c.RenderToNode()
	c.Rerender()
	c.RenderToNode()

	if c.renders != 2 {
		t.Errorf("renders = %d, want 2", c.renders)
	}
}

func TestRootNeverReplaced(t *testing.T) {
	c := newCounter(RenderAlways)
	root := c.Root()

	n1, _ := c.RenderToNode()
	n2, _ := c.RenderToNode()

	if n1 != root || n2 != root {
		t.Error("RenderToNode must always return the construction-time root")
	}
}

func TestDestroyRunsCleanupsInOrderOnce(t *testing.T) {
	c := newCounter(RenderAlways)
	outlet := dom.NewElement("div")
	c.Mount(outlet)

	var order []int
	c.Cleanup().Add(func() { order = append(order, 1) })
	c.Cleanup().Add(func() { order = append(order, 2) })
	c.Cleanup().Add(func() { order = append(order, 3) })

	c.Destroy()
	c.Destroy()

	if !reflect.DeepEqual(order, []int{1, 2, 3}) {
		t.Errorf("cleanup order = %v, want [1 2 3]", order)
	}
	if outlet.ChildCount() != 0 {
		t.Error("root should be detached from outlet")
	}
	if c.Rendered() {
		t.Error("Rendered should be reset by Destroy")
	}
}

func TestDestroyBeforeRenderIsSafe(t *testing.T) {
	c := newCounter(RenderAlways)
	c.Destroy()
	if c.Root().Parent() != nil {
		t.Error("unexpected parent")
	}
}

func TestOnceViewRevivesAfterDestroy(t *testing.T) {
	c := newCounter(RenderOnce)
	c.RenderToNode()
	c.Destroy()
	c.RenderToNode()

	if c.renders != 2 {
		t.Errorf("renders = %d, want 2 after revival", c.renders)
	}
}

func TestSlottedChildDestroyedWithParent(t *testing.T) {
	a, b := newChild("a"), newChild("b")
	p := newParent(a, b)
	outlet := dom.NewElement("div")

	if err := p.Mount(outlet); err != nil {
		t.Fatal(err)
	}
	if !p.Root().Contains(a.Root()) || !p.Root().Contains(b.Root()) {
		t.Fatal("children not slotted into parent content")
	}
	if got := p.Root().TextContent(); got != "ab" {
		t.Errorf("content = %q, want ab", got)
	}

	p.Destroy()

	if a.destroyed != 1 || b.destroyed != 1 {
		t.Errorf("destroyed = %d/%d, want 1/1", a.destroyed, b.destroyed)
	}
	if a.Root().Parent() != nil {
		t.Error("child root should be detached")
	}

	p.Destroy()
	if a.destroyed != 1 {
		t.Error("second parent Destroy must not destroy children again")
	}
}

func TestRerenderDestroysPreviousChildren(t *testing.T) {
	a := newChild("a")
	p := newParent(a)
	p.RenderToNode()

	b := newChild("b")
	p.kids = []*child{b}
	if err := p.Rerender(); err != nil {
		t.Fatal(err)
	}

	if a.destroyed != 1 {
		t.Errorf("old child destroyed %d times, want 1", a.destroyed)
	}
	if b.destroyed != 0 {
		t.Error("new child must not be destroyed")
	}
	if got := p.Root().TextContent(); got != "b" {
		t.Errorf("content = %q, want b", got)
	}
}

func TestNestedSliceOfChildren(t *testing.T) {
	a, b, c := newChild("a"), newChild("b"), newChild("c")
	host := &counter{}
	host.View = New("div", host, Options{})

	frag, err := host.Tpl(`<ul>{{}}</ul>`, []any{a, []*child{b, c}, "!"})
	if err != nil {
		t.Fatal(err)
	}
	if got := frag.TextContent(); got != "abc!" {
		t.Errorf("content = %q, want abc!", got)
	}
	if host.Cleanup().Len() != 3 {
		t.Errorf("registered cleanups = %d, want 3", host.Cleanup().Len())
	}
}

func TestRenderErrorPropagates(t *testing.T) {
	boom := stderrors.New("boom")
	c := newCounter(RenderAlways)
	c.err = boom

	if _, err := c.RenderToNode(); !stderrors.Is(err, boom) {
		t.Errorf("RenderToNode err = %v, want boom", err)
	}
	outlet := dom.NewElement("div")
	if err := c.Mount(outlet); !stderrors.Is(err, boom) {
		t.Errorf("Mount err = %v, want boom", err)
	}
	if outlet.ChildCount() != 0 {
		t.Error("failed mount must not attach the root")
	}
}

func TestNilRenderer(t *testing.T) {
	v := New("div", nil, Options{})
	if _, err := v.RenderToNode(); !stderrors.Is(err, ErrNilRenderer) {
		t.Errorf("err = %v, want ErrNilRenderer", err)
	}
}

func TestOptionsApplied(t *testing.T) {
	v := New("a", nil, Options{
		ClassName: []string{"ui-button", "ui-button--solid"},
		ID:        "cta",
		Attrs: map[string]any{
			"href":     "/cart",
			"tabindex": 0,
			"hidden":   false,
			"download": true,
			"title":    nil,
		},
		Dataset: map[string]any{
			"trackId": 42,
			"empty":   nil,
		},
	})
	root := v.Root()

	if root.Tag != "a" {
		t.Errorf("Tag = %q", root.Tag)
	}
	if root.ClassName() != "ui-button ui-button--solid" {
		t.Errorf("class = %q", root.ClassName())
	}
	if root.ID() != "cta" {
		t.Errorf("id = %q", root.ID())
	}
	if v, _ := root.Attr("href"); v != "/cart" {
		t.Errorf("href = %q", v)
	}
	if v, _ := root.Attr("tabindex"); v != "0" {
		t.Errorf("tabindex = %q", v)
	}
	if root.HasAttr("hidden") {
		t.Error("false attribute must be omitted")
	}
	if v, ok := root.Attr("download"); !ok || v != "" {
		t.Errorf("true attribute = %q, %v; want empty and present", v, ok)
	}
	if root.HasAttr("title") {
		t.Error("nil attribute must be omitted")
	}
	if v, _ := root.Attr("data-track-id"); v != "42" {
		t.Errorf("data-track-id = %q", v)
	}
	if root.HasAttr("data-empty") {
		t.Error("nil dataset value must be skipped")
	}
	if v.Mode() != RenderAlways {
		t.Errorf("default mode = %s, want always", v.Mode())
	}
}

func TestRenderModeString(t *testing.T) {
	if RenderAlways.String() != "always" || RenderOnce.String() != "once" {
		t.Error("unexpected RenderMode strings")
	}
}
