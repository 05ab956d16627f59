package errors

import (
	"encoding/json"
	"strings"
)

// FormatCompact returns a single-line representation suitable for logs.
func (e *Error) FormatCompact() string {
	var b strings.Builder
	if e.Code != "" {
		b.WriteString("[")
		b.WriteString(e.Code)
		b.WriteString("] ")
	}
	b.WriteString(e.Message)
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	if e.Wrapped != nil {
		b.WriteString(": ")
		b.WriteString(e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		b.WriteString(" (hint: ")
		b.WriteString(e.Suggestion)
		b.WriteString(")")
	}
	return b.String()
}

// FormatJSON returns the error as JSON.
func (e *Error) FormatJSON() string {
	data := map[string]any{
		"code":     e.Code,
		"category": e.Category,
		"message":  e.Message,
	}
	if e.Detail != "" {
		data["detail"] = e.Detail
	}
	if e.Suggestion != "" {
		data["suggestion"] = e.Suggestion
	}
	if e.Wrapped != nil {
		data["wrapped"] = e.Wrapped.Error()
	}
	out, _ := json.Marshal(data)
	return string(out)
}
