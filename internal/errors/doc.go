// Package errors provides structured, coded errors for outlet.
//
// Every error carries a category and, when it comes from the registry, a
// short code (e.g. "E101") that maps to a message and a longer detail.
// Configuration and view-construction failures use these errors so the CLI
// can print an actionable message instead of a bare string.
//
// # Error Categories
//
//   - config: invalid outlet.yaml or flags
//   - view: a view or component was constructed with invalid input
//   - route: route table problems
//   - content: page content could not be loaded
//   - transport: websocket session failures
//
// # Usage
//
//	err := errors.New("E101").
//	    WithDetail(`route "/about" has no title`).
//	    WithSuggestion("Add a title: field to the route")
//
//	fmt.Println(err.FormatCompact())
package errors
