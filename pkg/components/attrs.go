package components

import (
	"strings"
)

// Attrs maps attribute names to values. nil and false values are omitted and
// true becomes an empty attribute.
type Attrs map[string]any

// without returns a copy of a with the reserved keys removed.
func (a Attrs) without(reserved ...string) Attrs {
	out := make(Attrs, len(a))
	for k, v := range a {
		skip := false
		for _, r := range reserved {
			if k == r {
				skip = true
				break
			}
		}
		if !skip {
			out[k] = v
		}
	}
	return out
}

// joinClasses joins non-empty class names with single spaces.
func joinClasses(classes ...string) []string {
	out := classes[:0:0]
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}

// dataKey strips a leading "data-" so that both "trackingId" and
// "data-state" end up as dataset keys.
func dataKey(key string) string {
	return strings.TrimPrefix(key, "data-")
}
