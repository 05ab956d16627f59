package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// DefaultClientScript is the path of the embedded navigation client.
const DefaultClientScript = "/_outlet/client.js"

// PageData contains everything needed to render the document shell.
type PageData struct {
	// Title is the document title.
	Title string

	// Lang is the language attribute for the html element.
	// Defaults to "en".
	Lang string

	// OutletID is the id of the outlet container. Defaults to "app".
	OutletID string

	// OutletHTML is the already-rendered outlet content.
	OutletHTML string

	// Path is the location the outlet was rendered for; the client uses
	// it to open its live connection.
	Path string

	// StyleSheets contains paths to external stylesheets.
	StyleSheets []string

	// ClientScript is the path to the navigation client.
	// Defaults to DefaultClientScript.
	ClientScript string
}

// RenderPage writes a complete HTML document for data.
func RenderPage(w io.Writer, data PageData) error {
	if data.Lang == "" {
		data.Lang = "en"
	}
	if data.OutletID == "" {
		data.OutletID = "app"
	}
	if data.ClientScript == "" {
		data.ClientScript = DefaultClientScript
	}

	boot, err := json.Marshal(map[string]string{
		"path":   data.Path,
		"outlet": data.OutletID,
	})
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n<head>\n", escapeAttr(data.Lang)); err != nil {
		return err
	}
	fmt.Fprintf(w, "<meta charset=\"utf-8\">\n")
	fmt.Fprintf(w, "<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	fmt.Fprintf(w, "<title>%s</title>\n", escapeHTML(data.Title))
	for _, href := range data.StyleSheets {
		fmt.Fprintf(w, "<link rel=\"stylesheet\" href=\"%s\">\n", escapeAttr(href))
	}
	fmt.Fprintf(w, "</head>\n<body>\n")
	fmt.Fprintf(w, "<div id=\"%s\">%s</div>\n", escapeAttr(data.OutletID), data.OutletHTML)
	fmt.Fprintf(w, "<script id=\"outlet-boot\" type=\"application/json\">%s</script>\n", boot)
	_, err = fmt.Fprintf(w, "<script src=\"%s\" defer></script>\n</body>\n</html>\n", escapeAttr(data.ClientScript))
	return err
}
