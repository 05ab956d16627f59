package components

import (
	"errors"
	"testing"

	"github.com/vango-dev/outlet/pkg/dom"
)

func mustButton(t *testing.T, cfg ButtonConfig) *dom.Node {
	t.Helper()
	b, err := NewButton(cfg)
	if err != nil {
		t.Fatalf("NewButton: %v", err)
	}
	node, err := b.RenderToNode()
	if err != nil {
		t.Fatalf("RenderToNode: %v", err)
	}
	return node
}

func attr(n *dom.Node, key string) string {
	v, _ := n.Attr(key)
	return v
}

func TestAnchorButton(t *testing.T) {
	node := mustButton(t, ButtonConfig{
		Label:     "Demo Drive",
		Variant:   VariantCTA,
		ClassName: "hero-cta",
		Href:      "/demo",
	})

	if node.Tag != "a" {
		t.Errorf("tag = %q, want a", node.Tag)
	}
	if got := node.ClassName(); got != "ui-button ui-button--cta hero-cta" {
		t.Errorf("class = %q", got)
	}
	if got := attr(node, "href"); got != "/demo" {
		t.Errorf("href = %q", got)
	}
	if node.ChildCount() != 1 {
		t.Fatalf("children = %d, want 1", node.ChildCount())
	}
	label := node.FirstChild()
	if label.ClassName() != "ui-button__label" || label.TextContent() != "Demo Drive" {
		t.Errorf("label = %q %q", label.ClassName(), label.TextContent())
	}
}

func TestNativeButtonType(t *testing.T) {
	def := mustButton(t, ButtonConfig{Label: "Save", Variant: VariantSolid, AsButton: true})
	submit := mustButton(t, ButtonConfig{Label: "Submit", Variant: VariantSolid, AsButton: true, Type: "submit"})

	if def.Tag != "button" {
		t.Errorf("tag = %q, want button", def.Tag)
	}
	if got := attr(def, "type"); got != "button" {
		t.Errorf("default type = %q, want button", got)
	}
	if got := attr(submit, "type"); got != "submit" {
		t.Errorf("type = %q, want submit", got)
	}
	if def.HasAttr("href") {
		t.Error("native buttons have no href")
	}
}

func TestButtonReservedAttrs(t *testing.T) {
	node := mustButton(t, ButtonConfig{
		Label:   "Open menu",
		Variant: VariantText,
		Href:    "/menu",
		Attrs: Attrs{
			"title":     "Open menu",
			"class":     "ignored",
			"className": "ignored",
			"href":      "/should-not-override",
			"type":      "submit",
			"hidden":    false,
			"disabled":  nil,
		},
		Aria: Attrs{
			"label":         "Open main menu",
			"expanded":      false,
			"aria-controls": "menu-panel",
			"hidden":        nil,
		},
		Dataset: Attrs{
			"trackingId": 42,
			"data-state": "active",
			"skip":       nil,
		},
	})

	want := map[string]string{
		"class":            "ui-button ui-button--text",
		"href":             "/menu",
		"title":            "Open menu",
		"aria-label":       "Open main menu",
		"aria-expanded":    "false",
		"aria-controls":    "menu-panel",
		"data-tracking-id": "42",
		"data-state":       "active",
	}
	for k, v := range want {
		if got := attr(node, k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
	for _, k := range []string{"type", "hidden", "disabled", "aria-hidden", "data-skip"} {
		if node.HasAttr(k) {
			t.Errorf("unexpected attribute %s", k)
		}
	}
}

func TestButtonSecureRel(t *testing.T) {
	tests := []struct {
		name  string
		attrs Attrs
		want  string
	}{
		{"blank without rel", Attrs{"target": "_blank"}, "noopener noreferrer"},
		{"blank keeps tokens", Attrs{"target": " _BLANK ", "rel": "external NoOpener"}, "external NoOpener noreferrer"},
		{"other target", Attrs{"target": "_self", "rel": "external"}, "external"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := mustButton(t, ButtonConfig{Label: "Docs", Variant: VariantOutline, Href: "https://example.com", Attrs: tt.attrs})
			if got := attr(node, "rel"); got != tt.want {
				t.Errorf("rel = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestButtonInverted(t *testing.T) {
	node := mustButton(t, ButtonConfig{Label: "Go", Variant: VariantOutline, Inverted: true, Href: "/"})
	if got := node.ClassName(); got != "ui-button ui-button--outline is-inverted" {
		t.Errorf("class = %q", got)
	}
}

func TestButtonValidation(t *testing.T) {
	if _, err := NewButton(ButtonConfig{Label: "  ", Href: "/"}); !errors.Is(err, ErrEmptyLabel) {
		t.Errorf("blank label err = %v, want ErrEmptyLabel", err)
	}
	if _, err := NewButton(ButtonConfig{Label: "Go"}); !errors.Is(err, ErrMissingHref) {
		t.Errorf("missing href err = %v, want ErrMissingHref", err)
	}
	if errors.Is(ErrMissingHref, ErrEmptyLabel) {
		t.Error("sentinels must be distinct")
	}
}

func TestButtonRendersOnce(t *testing.T) {
	b, err := NewButton(ButtonConfig{Label: "Go", Href: "/"})
	if err != nil {
		t.Fatal(err)
	}
	first, _ := b.RenderToNode()
	label := first.FirstChild()
	second, _ := b.RenderToNode()
	if first != second || second.FirstChild() != label {
		t.Error("once-mode button should not re-render")
	}
}
