// Package dom implements the retained render tree that overlays are built
// from. It is a deliberately small subset of the web DOM: element and text
// nodes in a linked tree, ordered attributes, inline styles, class lists,
// event dispatch with capture and bubble phases, and HTML serialization.
// Layout is external: whichever attachment layer displays the tree measures
// it and reports geometry back through Element.SetMeasured.
package dom

import (
	"errors"
	"strings"
)

// NodeType identifies the kind of a node.
type NodeType int

const (
	ElementNode NodeType = iota + 1
	TextNode
)

// ErrHierarchy is returned when an insertion would make a node a descendant
// of itself.
var ErrHierarchy = errors.New("dom: node cannot contain itself or an ancestor")

// Node is one node in the tree. Element-specific state lives behind
// elementData; text nodes carry their data inline.
type Node struct {
	nodeType NodeType
	ownerDoc *Document

	parentNode  *Node
	firstChild  *Node
	lastChild   *Node
	prevSibling *Node
	nextSibling *Node

	textData    string
	elementData *elementData
}

// NodeType returns the type of the node.
func (n *Node) NodeType() NodeType {
	return n.nodeType
}

// OwnerDocument returns the document the node was created by.
func (n *Node) OwnerDocument() *Document {
	return n.ownerDoc
}

// ParentNode returns the parent, or nil for a detached node.
func (n *Node) ParentNode() *Node {
	return n.parentNode
}

// ParentElement returns the parent as an element, or nil.
func (n *Node) ParentElement() *Element {
	if n.parentNode == nil {
		return nil
	}
	return n.parentNode.AsElement()
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	return n.firstChild
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	return n.lastChild
}

// PreviousSibling returns the previous sibling, or nil.
func (n *Node) PreviousSibling() *Node {
	return n.prevSibling
}

// NextSibling returns the next sibling, or nil.
func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// ChildNodes returns a snapshot slice of the children.
func (n *Node) ChildNodes() []*Node {
	var children []*Node
	for child := n.firstChild; child != nil; child = child.nextSibling {
		children = append(children, child)
	}
	return children
}

// AsElement returns the node as an element, or nil for non-element nodes.
func (n *Node) AsElement() *Element {
	if n.nodeType != ElementNode {
		return nil
	}
	return (*Element)(n)
}

// Contains reports whether other is n or a descendant of n.
func (n *Node) Contains(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parentNode {
		if cur == n {
			return true
		}
	}
	return false
}

// AppendChild adds a node to the end of this node's children, detaching it
// from any previous parent. For error handling, use AppendChildWithError.
func (n *Node) AppendChild(child *Node) *Node {
	result, _ := n.AppendChildWithError(child)
	return result
}

// AppendChildWithError adds a node to the end of this node's children.
// It returns ErrHierarchy if the insertion would create a cycle.
func (n *Node) AppendChildWithError(child *Node) (*Node, error) {
	return n.InsertBeforeWithError(child, nil)
}

// InsertBefore inserts newChild before refChild. A nil refChild appends.
// For error handling, use InsertBeforeWithError.
func (n *Node) InsertBefore(newChild, refChild *Node) *Node {
	result, _ := n.InsertBeforeWithError(newChild, refChild)
	return result
}

// InsertBeforeWithError inserts newChild before refChild. A nil refChild
// appends. It returns ErrHierarchy if newChild contains n, and ignores a
// refChild that is not a child of n by appending instead.
func (n *Node) InsertBeforeWithError(newChild, refChild *Node) (*Node, error) {
	if newChild == nil {
		return nil, nil
	}
	if newChild.Contains(n) {
		return nil, ErrHierarchy
	}
	if refChild != nil && refChild.parentNode != n {
		refChild = nil
	}

	newChild.detach()
	newChild.parentNode = n
	newChild.ownerDoc = n.ownerDoc

	if refChild == nil {
		newChild.prevSibling = n.lastChild
		if n.lastChild != nil {
			n.lastChild.nextSibling = newChild
		} else {
			n.firstChild = newChild
		}
		n.lastChild = newChild
		return newChild, nil
	}

	newChild.nextSibling = refChild
	newChild.prevSibling = refChild.prevSibling
	if refChild.prevSibling != nil {
		refChild.prevSibling.nextSibling = newChild
	} else {
		n.firstChild = newChild
	}
	refChild.prevSibling = newChild
	return newChild, nil
}

// RemoveChild detaches child from this node and returns it. It returns nil
// if child is not a child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	if child == nil || child.parentNode != n {
		return nil
	}
	child.detach()
	return child
}

// Remove detaches the node from its parent, if any.
func (n *Node) Remove() {
	n.detach()
}

// detach unlinks the node from its parent and siblings.
func (n *Node) detach() {
	if n.parentNode == nil {
		return
	}
	if n.prevSibling != nil {
		n.prevSibling.nextSibling = n.nextSibling
	} else {
		n.parentNode.firstChild = n.nextSibling
	}
	if n.nextSibling != nil {
		n.nextSibling.prevSibling = n.prevSibling
	} else {
		n.parentNode.lastChild = n.prevSibling
	}
	n.parentNode = nil
	n.prevSibling = nil
	n.nextSibling = nil
}

// Text returns the node's text data. It is empty for element nodes.
func (n *Node) Text() string {
	return n.textData
}

// SetText replaces the node's text data. It is a no-op on element nodes.
func (n *Node) SetText(data string) {
	if n.nodeType == TextNode {
		n.textData = data
	}
}

// TextContent returns the concatenated text of the node and its descendants.
func (n *Node) TextContent() string {
	if n.nodeType == TextNode {
		return n.textData
	}
	var sb strings.Builder
	n.collectText(&sb)
	return sb.String()
}

func (n *Node) collectText(sb *strings.Builder) {
	for child := n.firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == TextNode {
			sb.WriteString(child.textData)
		} else {
			child.collectText(sb)
		}
	}
}

// SetTextContent removes all children and replaces them with a single text
// node carrying the given data. Empty data just clears the children.
func (n *Node) SetTextContent(data string) {
	for n.firstChild != nil {
		n.RemoveChild(n.firstChild)
	}
	if data == "" || n.nodeType != ElementNode {
		return
	}
	text := &Node{nodeType: TextNode, ownerDoc: n.ownerDoc, textData: data}
	n.AppendChild(text)
}
