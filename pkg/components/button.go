package components

import (
	"strings"

	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/view"
)

// ButtonVariant selects the visual style of a button.
type ButtonVariant string

const (
	VariantSolid   ButtonVariant = "solid"
	VariantOutline ButtonVariant = "outline"
	VariantText    ButtonVariant = "text"
	VariantCTA     ButtonVariant = "cta"
)

// ButtonConfig configures a Button.
type ButtonConfig struct {
	Label     string
	Variant   ButtonVariant
	Inverted  bool
	ClassName string

	// AsButton renders a native <button> instead of an anchor.
	AsButton bool

	// Href is required for anchors.
	Href string

	// Type is the native button type. Defaults to "button".
	Type string

	// Attrs are extra attributes. class, href and type are ignored.
	Attrs Attrs

	// Aria keys may be given with or without the "aria-" prefix.
	Aria Attrs

	// Dataset keys are camelCase; a "data-" prefix is tolerated.
	Dataset Attrs
}

// Button is a link or native button with a label span.
type Button struct {
	*view.View
	label string
}

// NewButton validates cfg and builds the button element.
func NewButton(cfg ButtonConfig) (*Button, error) {
	if strings.TrimSpace(cfg.Label) == "" {
		return nil, ErrEmptyLabel
	}
	if cfg.Variant == "" {
		cfg.Variant = VariantSolid
	}

	tag := "a"
	attrs := cfg.Attrs.without("class", "className", "href", "type")
	if cfg.AsButton {
		tag = "button"
		typ := cfg.Type
		if typ == "" {
			typ = "button"
		}
		attrs["type"] = typ
	} else {
		if cfg.Href == "" {
			return nil, ErrMissingHref
		}
		attrs["href"] = cfg.Href
		secureRel(attrs)
	}

	for k, v := range cfg.Aria {
		if v == nil {
			continue
		}
		if !strings.HasPrefix(k, "aria-") {
			k = "aria-" + k
		}
		// aria values are always stringified, false included.
		if b, ok := v.(bool); ok {
			v = boolString(b)
		}
		attrs[k] = v
	}

	dataset := make(map[string]any, len(cfg.Dataset))
	for k, v := range cfg.Dataset {
		dataset[dataKey(k)] = v
	}

	b := &Button{label: cfg.Label}
	b.View = view.New(tag, b, view.Options{
		ClassName:  buttonClasses(cfg),
		Attrs:      attrs,
		Dataset:    dataset,
		RenderMode: view.RenderOnce,
	})
	return b, nil
}

func (b *Button) Render() (*dom.Node, error) {
	span := dom.NewElement("span")
	span.SetClassName("ui-button__label")
	span.AppendChild(dom.NewText(b.label))
	return span, nil
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

func buttonClasses(cfg ButtonConfig) []string {
	inverted := ""
	if cfg.Inverted {
		inverted = "is-inverted"
	}
	return joinClasses("ui-button", "ui-button--"+string(cfg.Variant), inverted, cfg.ClassName)
}

// secureRel adds noopener and noreferrer to rel when the anchor opens a new
// browsing context.
func secureRel(attrs Attrs) {
	target, ok := attrs["target"].(string)
	if !ok || strings.ToLower(strings.TrimSpace(target)) != "_blank" {
		return
	}

	var tokens []string
	if rel, ok := attrs["rel"].(string); ok {
		tokens = strings.Fields(rel)
	}
	have := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		have[strings.ToLower(t)] = true
	}
	for _, required := range []string{"noopener", "noreferrer"} {
		if !have[required] {
			tokens = append(tokens, required)
		}
	}
	attrs["rel"] = strings.Join(tokens, " ")
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
