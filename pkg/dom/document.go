package dom

// Document is a minimal document: a title and a body element.
type Document struct {
	Title string
	Body  *Node
}

// NewDocument creates a document with an empty body.
func NewDocument() *Document {
	return &Document{Body: NewElement("body")}
}

// ElementByID returns the first element in the body with the given id.
func (d *Document) ElementByID(id string) *Node {
	return d.Body.Find(func(n *Node) bool {
		return n.Kind == KindElement && n.ID() == id
	})
}

// Outlet returns the element with the given id, creating it as the last
// child of the body when missing.
func (d *Document) Outlet(id string) *Node {
	if el := d.ElementByID(id); el != nil {
		return el
	}
	el := NewElement("div")
	el.SetID(id)
	d.Body.AppendChild(el)
	return el
}
