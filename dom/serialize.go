package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// OuterHTML serializes the element and its subtree.
func (e *Element) OuterHTML() string {
	var sb strings.Builder
	serializeNode(e.AsNode(), &sb)
	return sb.String()
}

// InnerHTML serializes the element's children.
func (e *Element) InnerHTML() string {
	var sb strings.Builder
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		serializeNode(child, &sb)
	}
	return sb.String()
}

// serializeNode serializes a node to HTML.
func serializeNode(n *Node, sb *strings.Builder) {
	switch n.nodeType {
	case TextNode:
		sb.WriteString(html.EscapeString(n.textData))
	case ElementNode:
		el := n.AsElement()
		tagName := el.TagName()

		sb.WriteString("<")
		sb.WriteString(tagName)

		for _, attr := range n.elementData.attrs {
			sb.WriteString(" ")
			sb.WriteString(attr.Name)
			sb.WriteString("=\"")
			sb.WriteString(html.EscapeString(attr.Value))
			sb.WriteString("\"")
		}

		// Inline style is stored in its declaration, not the attr list.
		if n.elementData.style.Len() > 0 {
			sb.WriteString(" style=\"")
			sb.WriteString(html.EscapeString(n.elementData.style.CSSText()))
			sb.WriteString("\"")
		}

		if isVoidElement(tagName) {
			sb.WriteString(">")
			return
		}

		sb.WriteString(">")

		for child := n.firstChild; child != nil; child = child.nextSibling {
			serializeNode(child, sb)
		}

		sb.WriteString("</")
		sb.WriteString(tagName)
		sb.WriteString(">")
	}
}

// isVoidElement returns true if the element is a void element.
func isVoidElement(tagName string) bool {
	switch tagName {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}
