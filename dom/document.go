package dom

import (
	"github.com/scrimui/scrim/geom"
)

// Document owns a render tree and the viewport it is displayed in. The root
// element plays the role of the host container overlays attach to.
type Document struct {
	root     *Element
	viewport geom.Size
}

// NewDocument creates a document with a "body" root element measured to the
// full viewport.
func NewDocument(viewport geom.Size) *Document {
	doc := &Document{viewport: viewport}
	doc.root = newElement(doc, "body")
	doc.root.SetMeasured(geom.Rect{Width: viewport.Width, Height: viewport.Height})
	return doc
}

// Root returns the host element overlays attach to.
func (d *Document) Root() *Element {
	return d.root
}

// Viewport returns the current viewport size.
func (d *Document) Viewport() geom.Size {
	return d.viewport
}

// SetViewport updates the viewport size and the root element's measurement.
// Already-positioned overlays are not moved; owners re-run positioning.
func (d *Document) SetViewport(viewport geom.Size) {
	d.viewport = viewport
	d.root.SetMeasured(geom.Rect{Width: viewport.Width, Height: viewport.Height})
}

// ViewportRect returns the viewport as a rectangle at the origin.
func (d *Document) ViewportRect() geom.Rect {
	return geom.Rect{Width: d.viewport.Width, Height: d.viewport.Height}
}

// CreateElement creates a detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	return newElement(d, tag)
}

// CreateText creates a detached text node owned by this document.
func (d *Document) CreateText(data string) *Node {
	return &Node{nodeType: TextNode, ownerDoc: d, textData: data}
}

// GetElementByID returns the first element in tree order with the given id,
// or nil.
func (d *Document) GetElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	return findByID(d.root.AsNode(), id)
}

func findByID(n *Node, id string) *Element {
	if el := n.AsElement(); el != nil && el.ID() == id {
		return el
	}
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if el := findByID(child, id); el != nil {
			return el
		}
	}
	return nil
}

// ElementFromPoint returns the deepest measured element containing the
// point, preferring later siblings (which stack above earlier ones), or nil
// when the point hits nothing but the root.
func (d *Document) ElementFromPoint(p geom.Point) *Element {
	hit := hitTest(d.root, p)
	if hit == d.root {
		return nil
	}
	return hit
}

func hitTest(el *Element, p geom.Point) *Element {
	children := el.Children()
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		if _, ok := child.Measured(); !ok {
			continue
		}
		if child.BoundingRect().Contains(p) {
			return hitTest(child, p)
		}
	}
	return el
}
