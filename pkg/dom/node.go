package dom

import (
	"sort"
	"strings"
)

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
	KindFragment             // Grouping without wrapper
	KindComment              // <!-- ... -->
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Node is a node in the document tree.
type Node struct {
	Kind Kind   // Node type
	Tag  string // Element tag name (e.g., "div")
	Text string // For KindText and KindComment

	attrs    map[string]string
	children []*Node
	parent   *Node
}

// Attr is a single attribute name/value pair.
type Attr struct {
	Key   string
	Value string
}

// NewElement creates a detached element node.
func NewElement(tag string) *Node {
	return &Node{Kind: KindElement, Tag: strings.ToLower(tag)}
}

// NewText creates a detached text node.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// NewComment creates a detached comment node.
func NewComment(text string) *Node {
	return &Node{Kind: KindComment, Text: text}
}

// NewFragment creates a fragment holding the given children.
func NewFragment(children ...*Node) *Node {
	f := &Node{Kind: KindFragment}
	for _, c := range children {
		f.AppendChild(c)
	}
	return f
}

// Parent returns the parent node, or nil when detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// AppendChild appends child to n. A child attached elsewhere is detached
// first. Appending a fragment moves its children and empties it.
// Appending n itself or one of its ancestors is a no-op.
func (n *Node) AppendChild(child *Node) {
	if child == nil || child.Contains(n) {
		return
	}
	if child.Kind == KindFragment {
		moved := child.children
		child.children = nil
		for _, c := range moved {
			c.parent = nil
			n.AppendChild(c)
		}
		return
	}
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
}

// ReplaceChildren detaches every current child and appends nodes.
func (n *Node) ReplaceChildren(nodes ...*Node) {
	for _, c := range n.children {
		c.parent = nil
	}
	n.children = nil
	for _, c := range nodes {
		n.AppendChild(c)
	}
}

// Remove detaches n from its parent. It is a no-op when detached.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Find returns the first node in depth-first order (n included) for which
// match returns true.
func (n *Node) Find(match func(*Node) bool) *Node {
	if match(n) {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in depth-first order matching match.
func (n *Node) FindAll(match func(*Node) bool) []*Node {
	var out []*Node
	n.walk(func(c *Node) {
		if match(c) {
			out = append(out, c)
		}
	})
	return out
}

func (n *Node) walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.walk(fn)
	}
}

// TextContent returns the concatenated text of all descendant text nodes.
func (n *Node) TextContent() string {
	if n.Kind == KindText {
		return n.Text
	}
	var b strings.Builder
	n.walk(func(c *Node) {
		if c.Kind == KindText {
			b.WriteString(c.Text)
		}
	})
	return b.String()
}

// SetAttr sets an attribute on an element.
func (n *Node) SetAttr(key, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[strings.ToLower(key)] = value
}

// RemoveAttr removes an attribute.
func (n *Node) RemoveAttr(key string) {
	delete(n.attrs, strings.ToLower(key))
}

// Attr returns an attribute value and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[strings.ToLower(key)]
	return v, ok
}

// HasAttr reports whether the attribute is present.
func (n *Node) HasAttr(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// Attrs returns the attributes sorted by key.
func (n *Node) Attrs() []Attr {
	out := make([]Attr, 0, len(n.attrs))
	for k, v := range n.attrs {
		out = append(out, Attr{Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// ID returns the id attribute.
func (n *Node) ID() string {
	v, _ := n.Attr("id")
	return v
}

// SetID sets the id attribute.
func (n *Node) SetID(id string) {
	n.SetAttr("id", id)
}

// ClassName returns the class attribute.
func (n *Node) ClassName() string {
	v, _ := n.Attr("class")
	return v
}

// SetClassName sets the class attribute, joining classes with single spaces.
func (n *Node) SetClassName(classes ...string) {
	n.SetAttr("class", strings.Join(classes, " "))
}

// SetData sets a data-* attribute. The key is given in dataset form
// (camelCase) and stored as data-kebab-case, as element.dataset does.
func (n *Node) SetData(key, value string) {
	n.SetAttr(DataAttrName(key), value)
}

// Data returns a data-* attribute by its dataset (camelCase) key.
func (n *Node) Data(key string) (string, bool) {
	return n.Attr(DataAttrName(key))
}

// DataAttrName converts a dataset key to its attribute name:
// "lazySrcset" becomes "data-lazy-srcset".
func DataAttrName(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 8)
	b.WriteString("data-")
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
