package dom

import (
	"strings"

	"golang.org/x/net/html/atom"

	"github.com/scrimui/scrim/geom"
)

// Element is an element node. It shares memory with its Node: the two views
// convert freely via AsNode and AsElement.
type Element Node

// Attr is one element attribute. Attributes keep insertion order so that
// serialization is deterministic.
type Attr struct {
	Name  string
	Value string
}

// elementData holds the element-specific state of a node.
type elementData struct {
	tagName string // canonical lowercase
	tagAtom atom.Atom

	attrs     []Attr
	classList *TokenList
	style     *StyleDeclaration
	events    *eventTarget

	measured    geom.Rect
	hasMeasured bool
}

func newElement(doc *Document, tag string) *Element {
	tagName := strings.ToLower(tag)
	tagAtom := atom.Lookup([]byte(tagName))
	if tagAtom != 0 {
		tagName = tagAtom.String()
	}
	n := &Node{
		nodeType: ElementNode,
		ownerDoc: doc,
		elementData: &elementData{
			tagName: tagName,
			tagAtom: tagAtom,
			style:   newStyleDeclaration(),
			events:  newEventTarget(),
		},
	}
	el := n.AsElement()
	n.elementData.classList = newTokenList(el, "class")
	return el
}

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// TagName returns the canonical lowercase tag name.
func (e *Element) TagName() string {
	return e.AsNode().elementData.tagName
}

// TagAtom returns the interned atom for the tag, or 0 for tags outside the
// HTML atom table.
func (e *Element) TagAtom() atom.Atom {
	return e.AsNode().elementData.tagAtom
}

// Is reports whether the element's tag matches the given atom.
func (e *Element) Is(a atom.Atom) bool {
	return a != 0 && e.AsNode().elementData.tagAtom == a
}

// ID returns the element's id attribute.
func (e *Element) ID() string {
	return e.GetAttribute("id")
}

// SetID sets the element's id attribute.
func (e *Element) SetID(id string) {
	e.SetAttribute("id", id)
}

// GetAttribute returns the attribute value, or "" when absent. The style
// attribute reflects the inline style declaration.
func (e *Element) GetAttribute(name string) string {
	name = strings.ToLower(name)
	if name == "style" {
		return e.AsNode().elementData.style.CSSText()
	}
	for _, a := range e.AsNode().elementData.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	if name == "style" {
		return e.AsNode().elementData.style.Len() > 0
	}
	for _, a := range e.AsNode().elementData.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute, replacing any previous value in place so
// attribute order stays stable. Setting style parses the value into the
// inline style declaration.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	if name == "style" {
		e.AsNode().elementData.style.SetCSSText(value)
		return
	}
	data := e.AsNode().elementData
	for i, a := range data.attrs {
		if a.Name == name {
			data.attrs[i].Value = value
			return
		}
	}
	data.attrs = append(data.attrs, Attr{Name: name, Value: value})
}

// RemoveAttribute removes an attribute. Removing an absent attribute is a
// no-op.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	if name == "style" {
		e.AsNode().elementData.style.Clear()
		return
	}
	data := e.AsNode().elementData
	for i, a := range data.attrs {
		if a.Name == name {
			data.attrs = append(data.attrs[:i], data.attrs[i+1:]...)
			return
		}
	}
}

// Attributes returns a copy of the attribute list in insertion order.
func (e *Element) Attributes() []Attr {
	data := e.AsNode().elementData
	attrs := make([]Attr, len(data.attrs))
	copy(attrs, data.attrs)
	return attrs
}

// Classes returns the element's class token list, a live view over the
// class attribute.
func (e *Element) Classes() *TokenList {
	return e.AsNode().elementData.classList
}

// Style returns the element's inline style declaration.
func (e *Element) Style() *StyleDeclaration {
	return e.AsNode().elementData.style
}

// AppendChild adds a child node, detaching it from any previous parent.
func (e *Element) AppendChild(child *Node) *Node {
	return e.AsNode().AppendChild(child)
}

// AppendElement adds a child element and returns it.
func (e *Element) AppendElement(child *Element) *Element {
	e.AsNode().AppendChild(child.AsNode())
	return child
}

// Remove detaches the element from its parent, if any.
func (e *Element) Remove() {
	e.AsNode().Remove()
}

// Children returns a snapshot slice of the child elements.
func (e *Element) Children() []*Element {
	var children []*Element
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		if el := child.AsElement(); el != nil {
			children = append(children, el)
		}
	}
	return children
}

// FirstElementChild returns the first child element, or nil.
func (e *Element) FirstElementChild() *Element {
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		if el := child.AsElement(); el != nil {
			return el
		}
	}
	return nil
}

// TextContent returns the concatenated descendant text.
func (e *Element) TextContent() string {
	return e.AsNode().TextContent()
}

// SetTextContent replaces the element's children with a single text node.
func (e *Element) SetTextContent(data string) {
	e.AsNode().SetTextContent(data)
}

// SetMeasured records the element's viewport-relative border box as reported
// by the attachment layer.
func (e *Element) SetMeasured(r geom.Rect) {
	data := e.AsNode().elementData
	data.measured = r
	data.hasMeasured = true
}

// Measured returns the last reported geometry and whether any measurement
// has been reported at all.
func (e *Element) Measured() (geom.Rect, bool) {
	data := e.AsNode().elementData
	return data.measured, data.hasMeasured
}

// BoundingRect returns the last reported geometry, or a zero rect for an
// unmeasured element.
func (e *Element) BoundingRect() geom.Rect {
	return e.AsNode().elementData.measured
}

// Closest walks from the element up through its ancestors and returns the
// first element whose tag matches the given atom, or nil.
func (e *Element) Closest(a atom.Atom) *Element {
	for cur := e; cur != nil; cur = cur.AsNode().ParentElement() {
		if cur.Is(a) {
			return cur
		}
	}
	return nil
}
