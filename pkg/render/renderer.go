package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/vango-dev/outlet/pkg/dom"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables newline-and-indent output for block elements.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes dom trees to HTML.
type Renderer struct {
	config RendererConfig
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// RenderToString renders a node to an HTML string.
func (r *Renderer) RenderToString(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a node to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *dom.Node) error {
	return r.renderNode(w, node, 0, false)
}

// RenderChildren renders only the children of node, which is how an
// outlet's content is sent to the client.
func (r *Renderer) RenderChildren(node *dom.Node) (string, error) {
	var buf bytes.Buffer
	if node == nil {
		return "", nil
	}
	raw := isRawTextElement(node.Tag)
	for _, c := range node.Children() {
		if err := r.renderNode(&buf, c, 0, raw); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// renderNode dispatches rendering based on node kind.
func (r *Renderer) renderNode(w io.Writer, node *dom.Node, depth int, rawText bool) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case dom.KindElement:
		return r.renderElement(w, node, depth)
	case dom.KindText:
		text := node.Text
		if !rawText {
			text = escapeHTML(text)
		}
		_, err := io.WriteString(w, text)
		return err
	case dom.KindComment:
		_, err := fmt.Fprintf(w, "<!--%s-->", strings.ReplaceAll(node.Text, "--", "- -"))
		return err
	case dom.KindFragment:
		for _, child := range node.Children() {
			if err := r.renderNode(w, child, depth, rawText); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown node kind: %d", node.Kind)
	}
}

// renderElement renders an HTML element with its attributes and children.
func (r *Renderer) renderElement(w io.Writer, node *dom.Node, depth int) error {
	tag := node.Tag

	if r.config.Pretty && depth > 0 {
		r.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, a := range node.Attrs() {
		var err error
		if a.Value == "" {
			_, err = fmt.Fprintf(w, " %s", a.Key)
		} else {
			_, err = fmt.Fprintf(w, ` %s="%s"`, a.Key, escapeAttr(a.Value))
		}
		if err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if isVoidElement(tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	children := node.Children()
	block := r.config.Pretty && len(children) > 0 && hasElementChild(children)
	if block {
		io.WriteString(w, "\n")
	}
	raw := isRawTextElement(tag)
	for _, child := range children {
		if err := r.renderNode(w, child, depth+1, raw); err != nil {
			return err
		}
	}
	if block {
		r.writeIndent(w, depth)
	}

	if _, err := fmt.Fprintf(w, "</%s>", tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// writeIndent writes indentation for pretty printing.
func (r *Renderer) writeIndent(w io.Writer, depth int) {
	io.WriteString(w, strings.Repeat(r.config.Indent, depth))
}

func hasElementChild(children []*dom.Node) bool {
	for _, c := range children {
		if c.Kind == dom.KindElement {
			return true
		}
	}
	return false
}

// voidElements cannot have children and have no closing tag.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

func isVoidElement(tag string) bool {
	return voidElements[tag]
}

// isRawTextElement reports whether children of tag are written unescaped.
func isRawTextElement(tag string) bool {
	return tag == "script" || tag == "style"
}
