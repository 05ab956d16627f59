package errors

// Template defines a registered error type.
type Template struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]Template{
	// Configuration (E001-E099)
	"E001": {
		Category: CategoryConfig,
		Message:  "Config file could not be read",
	},
	"E002": {
		Category: CategoryConfig,
		Message:  "Site title is empty",
		Detail:   "The document title is built as \"<title> - <route title>\" and needs a site title.",
	},
	"E003": {
		Category: CategoryConfig,
		Message:  "Unknown content source",
		Detail:   "content.source must be \"dir\" or \"s3\".",
	},
	"E004": {
		Category: CategoryConfig,
		Message:  "Invalid log level",
	},

	// Routes (E100-E199)
	"E101": {
		Category: CategoryRoute,
		Message:  "Route has no title",
	},
	"E102": {
		Category: CategoryRoute,
		Message:  "Route must set exactly one of page or content",
	},
	"E103": {
		Category: CategoryRoute,
		Message:  "Duplicate route path",
	},
	"E104": {
		Category: CategoryRoute,
		Message:  "Unknown built-in page",
	},
	"E105": {
		Category: CategoryRoute,
		Message:  "Route path must start with /",
	},

	// Views (E200-E299)
	"E201": {
		Category: CategoryView,
		Message:  "Required list is empty",
		Detail:   "The view cannot be constructed without at least one item.",
	},
	"E202": {
		Category: CategoryView,
		Message:  "Required field is empty",
	},
	"E203": {
		Category: CategoryView,
		Message:  "View has no renderer",
	},
	"E204": {
		Category: CategoryView,
		Message:  "Anchor button has no href",
		Detail:   "Set Href, or use As: \"button\" for a native button.",
	},
	"E205": {
		Category: CategoryView,
		Message:  "Video has no sources",
	},

	// Content (E300-E399)
	"E301": {
		Category: CategoryContent,
		Message:  "Content not found",
	},
	"E302": {
		Category: CategoryContent,
		Message:  "Invalid content key",
		Detail:   "Content keys are slash-separated relative paths without \"..\" segments.",
	},

	// Transport (E400-E499)
	"E401": {
		Category: CategoryTransport,
		Message:  "Malformed client message",
	},
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (Template, bool) {
	t, ok := registry[code]
	return t, ok
}
