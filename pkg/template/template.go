package template

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/vango-dev/outlet/pkg/dom"
)

// Placeholder marks an interpolation point in markup.
const Placeholder = "{{}}"

var (
	// ErrSlotCount is returned when the number of placeholders differs from
	// the number of values.
	ErrSlotCount = errors.New("template: placeholder count does not match values")

	// ErrNodeInAttribute is returned when a node is interpolated into an
	// attribute value.
	ErrNodeInAttribute = errors.New("template: node interpolated into attribute")

	// ErrReservedCodePoint is returned for markup containing U+E000 or
	// U+E001, which the compiler uses internally.
	ErrReservedCodePoint = errors.New("template: markup contains reserved code point U+E000 or U+E001")
)

// HTML is trusted markup inserted without escaping.
type HTML string

// Markers use private-use code points. In content position a marker is
// wrapped in a comment, which the parser keeps in place even inside tables;
// in attributes, comments and raw text it is inserted bare.
const (
	markerOpen  = "\uE000"
	markerClose = "\uE001"
)

var markerPattern = regexp.MustCompile(`\x{E000}(\d+)\x{E001}`)

func marker(i int) string {
	return markerOpen + strconv.Itoa(i) + markerClose
}

// Compile parses markup, substitutes values at each {{}} and returns a
// detached fragment.
func Compile(markup string, values ...any) (*dom.Node, error) {
	if strings.ContainsAny(markup, markerOpen+markerClose) {
		return nil, ErrReservedCodePoint
	}
	parts := strings.Split(markup, Placeholder)
	if len(parts)-1 != len(values) {
		return nil, fmt.Errorf("%w: %d placeholders, %d values", ErrSlotCount, len(parts)-1, len(values))
	}

	var src strings.Builder
	src.Grow(len(markup) + len(values)*16)
	var sc scanner
	for i, p := range parts {
		src.WriteString(p)
		sc.feed(p)
		if i < len(values) {
			if sc.inContent() {
				src.WriteString("<!--" + marker(i) + "-->")
			} else {
				src.WriteString(marker(i))
			}
		}
	}

	nodes, err := parse(src.String())
	if err != nil {
		return nil, err
	}

	c := &compiler{values: values}
	frag := dom.NewFragment()
	for _, n := range nodes {
		if err := c.convert(frag, n); err != nil {
			return nil, err
		}
	}
	return frag, nil
}

// Parse parses trusted markup without interpolation.
func Parse(markup string) (*dom.Node, error) {
	frag := dom.NewFragment()
	if err := appendValue(frag, HTML(markup)); err != nil {
		return nil, err
	}
	return frag, nil
}

func parse(src string) ([]*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, fmt.Errorf("template: parse: %w", err)
	}
	return nodes, nil
}

type compiler struct {
	values []any
}

func (c *compiler) convert(parent *dom.Node, n *html.Node) error {
	switch n.Type {
	case html.TextNode:
		return c.text(parent, n.Data)
	case html.CommentNode:
		if loc := markerPattern.FindStringSubmatchIndex(n.Data); loc != nil && loc[0] == 0 && loc[1] == len(n.Data) {
			v, err := c.value(n.Data[loc[2]:loc[3]])
			if err != nil {
				return err
			}
			return appendValue(parent, v)
		}
		data, err := c.attr(n.Data)
		if err != nil {
			return err
		}
		parent.AppendChild(dom.NewComment(data))
	case html.ElementNode:
		el := dom.NewElement(n.Data)
		for _, a := range n.Attr {
			key := a.Key
			if a.Namespace != "" {
				key = a.Namespace + ":" + a.Key
			}
			val, err := c.attr(a.Val)
			if err != nil {
				return fmt.Errorf("%w: <%s %s>", err, n.Data, key)
			}
			el.SetAttr(key, val)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if err := c.convert(el, ch); err != nil {
				return err
			}
		}
		parent.AppendChild(el)
	}
	return nil
}

// text splits a text node on markers and inserts the referenced values.
func (c *compiler) text(parent *dom.Node, data string) error {
	locs := markerPattern.FindAllStringSubmatchIndex(data, -1)
	if len(locs) == 0 {
		parent.AppendChild(dom.NewText(data))
		return nil
	}
	last := 0
	for _, loc := range locs {
		if loc[0] > last {
			parent.AppendChild(dom.NewText(data[last:loc[0]]))
		}
		v, err := c.value(data[loc[2]:loc[3]])
		if err != nil {
			return err
		}
		if err := appendValue(parent, v); err != nil {
			return err
		}
		last = loc[1]
	}
	if last < len(data) {
		parent.AppendChild(dom.NewText(data[last:]))
	}
	return nil
}

func (c *compiler) attr(val string) (string, error) {
	if !strings.Contains(val, markerOpen) {
		return val, nil
	}
	var err error
	out := markerPattern.ReplaceAllStringFunc(val, func(m string) string {
		v, verr := c.value(m[len(markerOpen) : len(m)-len(markerClose)])
		if verr != nil {
			if err == nil {
				err = verr
			}
			return ""
		}
		s, serr := attrString(v)
		if serr != nil && err == nil {
			err = serr
		}
		return s
	})
	return out, err
}

// value returns the value a marker index refers to.
func (c *compiler) value(digits string) (any, error) {
	idx, err := strconv.Atoi(digits)
	if err != nil || idx < 0 || idx >= len(c.values) {
		return nil, fmt.Errorf("template: marker %q out of range", digits)
	}
	return c.values[idx], nil
}

func attrString(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "", nil
	case *dom.Node:
		return "", ErrNodeInAttribute
	case string:
		return val, nil
	case HTML:
		return string(val), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		parts := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			s, err := attrString(rv.Index(i).Interface())
			if err != nil {
				return "", err
			}
			if s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " "), nil
	}
	return fmt.Sprint(v), nil
}

// appendValue appends v to parent according to the content-position rules.
func appendValue(parent *dom.Node, v any) error {
	switch val := v.(type) {
	case nil:
		return nil
	case *dom.Node:
		if val != nil {
			parent.AppendChild(val)
		}
		return nil
	case string:
		parent.AppendChild(dom.NewText(val))
		return nil
	case HTML:
		nodes, err := parse(string(val))
		if err != nil {
			return err
		}
		c := &compiler{}
		for _, n := range nodes {
			if err := c.convertTrusted(parent, n); err != nil {
				return err
			}
		}
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() != reflect.Uint8 {
		for i := 0; i < rv.Len(); i++ {
			if err := appendValue(parent, rv.Index(i).Interface()); err != nil {
				return err
			}
		}
		return nil
	}

	parent.AppendChild(dom.NewText(fmt.Sprint(v)))
	return nil
}

// convertTrusted converts parsed trusted markup, ignoring marker syntax.
func (c *compiler) convertTrusted(parent *dom.Node, n *html.Node) error {
	switch n.Type {
	case html.TextNode:
		parent.AppendChild(dom.NewText(n.Data))
		return nil
	case html.CommentNode:
		parent.AppendChild(dom.NewComment(n.Data))
		return nil
	case html.ElementNode:
	default:
		return nil
	}
	el := dom.NewElement(n.Data)
	for _, a := range n.Attr {
		el.SetAttr(a.Key, a.Val)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if err := c.convertTrusted(el, ch); err != nil {
			return err
		}
	}
	parent.AppendChild(el)
	return nil
}
