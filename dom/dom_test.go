package dom

import (
	"strings"
	"testing"

	"golang.org/x/net/html/atom"

	"github.com/scrimui/scrim/geom"
)

func newTestDocument() *Document {
	return NewDocument(geom.Sz(800, 600))
}

func TestDocumentRoot(t *testing.T) {
	doc := newTestDocument()
	if doc.Root() == nil {
		t.Fatal("Expected a root element")
	}
	if doc.Root().TagName() != "body" {
		t.Errorf("Expected root tag body, got %q", doc.Root().TagName())
	}
	r := doc.Root().BoundingRect()
	if r.Width != 800 || r.Height != 600 {
		t.Errorf("Expected root measured 800x600, got %vx%v", r.Width, r.Height)
	}
}

func TestSetViewport(t *testing.T) {
	doc := newTestDocument()
	doc.SetViewport(geom.Sz(1024, 768))
	if doc.Viewport().Width != 1024 {
		t.Errorf("Expected viewport width 1024, got %v", doc.Viewport().Width)
	}
	if doc.Root().BoundingRect().Height != 768 {
		t.Errorf("Expected root re-measured to 768, got %v", doc.Root().BoundingRect().Height)
	}
}

func TestCreateElementCanonicalizesTag(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("DIV")
	if el.TagName() != "div" {
		t.Errorf("Expected tag div, got %q", el.TagName())
	}
	if !el.Is(atom.Div) {
		t.Error("Expected atom match for div")
	}
	if el.Is(atom.Span) {
		t.Error("Expected no atom match for span")
	}

	custom := doc.CreateElement("x-thing")
	if custom.TagAtom() != 0 {
		t.Errorf("Expected no atom for custom tag, got %v", custom.TagAtom())
	}
	if custom.TagName() != "x-thing" {
		t.Errorf("Expected custom tag preserved, got %q", custom.TagName())
	}
}

func TestAppendChildAndTraversal(t *testing.T) {
	doc := newTestDocument()
	parent := doc.CreateElement("div")
	a := doc.CreateElement("span")
	b := doc.CreateElement("span")

	parent.AppendChild(a.AsNode())
	parent.AppendChild(b.AsNode())

	if parent.AsNode().FirstChild() != a.AsNode() {
		t.Error("Expected a as first child")
	}
	if parent.AsNode().LastChild() != b.AsNode() {
		t.Error("Expected b as last child")
	}
	if a.AsNode().NextSibling() != b.AsNode() {
		t.Error("Expected b to follow a")
	}
	if b.AsNode().PreviousSibling() != a.AsNode() {
		t.Error("Expected a to precede b")
	}
	if a.AsNode().ParentElement() != parent {
		t.Error("Expected parent link on a")
	}
	if got := len(parent.Children()); got != 2 {
		t.Errorf("Expected 2 children, got %v", got)
	}
}

func TestAppendChildReparents(t *testing.T) {
	doc := newTestDocument()
	first := doc.CreateElement("div")
	second := doc.CreateElement("div")
	child := doc.CreateElement("span")

	first.AppendChild(child.AsNode())
	second.AppendChild(child.AsNode())

	if len(first.Children()) != 0 {
		t.Error("Expected child removed from first parent")
	}
	if child.AsNode().ParentElement() != second {
		t.Error("Expected child reparented to second")
	}
}

func TestInsertBefore(t *testing.T) {
	doc := newTestDocument()
	parent := doc.CreateElement("div")
	a := doc.CreateElement("i")
	c := doc.CreateElement("b")
	parent.AppendChild(a.AsNode())
	parent.AppendChild(c.AsNode())

	mid := doc.CreateElement("u")
	parent.AsNode().InsertBefore(mid.AsNode(), c.AsNode())

	children := parent.Children()
	if len(children) != 3 || children[1] != mid {
		t.Errorf("Expected mid inserted second, got %v children", len(children))
	}

	// A reference that is not a child degrades to append.
	stray := doc.CreateElement("s")
	outsider := doc.CreateElement("div")
	parent.AsNode().InsertBefore(stray.AsNode(), outsider.AsNode())
	if parent.AsNode().LastChild() != stray.AsNode() {
		t.Error("Expected stray appended when reference is not a child")
	}
}

func TestHierarchyViolation(t *testing.T) {
	doc := newTestDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("div")
	outer.AppendChild(inner.AsNode())

	if _, err := inner.AsNode().AppendChildWithError(outer.AsNode()); err != ErrHierarchy {
		t.Errorf("Expected ErrHierarchy appending an ancestor, got %v", err)
	}
	if _, err := outer.AsNode().AppendChildWithError(outer.AsNode()); err != ErrHierarchy {
		t.Errorf("Expected ErrHierarchy appending self, got %v", err)
	}
}

func TestRemoveChild(t *testing.T) {
	doc := newTestDocument()
	parent := doc.CreateElement("div")
	child := doc.CreateElement("span")
	parent.AppendChild(child.AsNode())

	removed := parent.AsNode().RemoveChild(child.AsNode())
	if removed != child.AsNode() {
		t.Error("Expected RemoveChild to return the detached node")
	}
	if child.AsNode().ParentNode() != nil {
		t.Error("Expected detached child to have no parent")
	}

	if parent.AsNode().RemoveChild(child.AsNode()) != nil {
		t.Error("Expected removing a non-child to return nil")
	}
}

func TestContains(t *testing.T) {
	doc := newTestDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("span")
	outer.AppendChild(inner.AsNode())

	if !outer.AsNode().Contains(inner.AsNode()) {
		t.Error("Expected outer to contain inner")
	}
	if !outer.AsNode().Contains(outer.AsNode()) {
		t.Error("Expected a node to contain itself")
	}
	if inner.AsNode().Contains(outer.AsNode()) {
		t.Error("Expected inner not to contain outer")
	}
}

func TestTextContent(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("p")
	el.AppendChild(doc.CreateText("Hello, "))
	strong := doc.CreateElement("strong")
	strong.SetTextContent("world")
	el.AppendChild(strong.AsNode())

	if got := el.TextContent(); got != "Hello, world" {
		t.Errorf("Expected concatenated text, got %q", got)
	}

	el.SetTextContent("replaced")
	if got := el.TextContent(); got != "replaced" {
		t.Errorf("Expected replaced text, got %q", got)
	}
	if len(el.AsNode().ChildNodes()) != 1 {
		t.Error("Expected SetTextContent to collapse children to one text node")
	}
}

func TestAttributes(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")

	el.SetAttribute("Role", "dialog")
	if got := el.GetAttribute("role"); got != "dialog" {
		t.Errorf("Expected lowercased attribute lookup, got %q", got)
	}
	if !el.HasAttribute("role") {
		t.Error("Expected HasAttribute true")
	}

	el.SetAttribute("aria-modal", "true")
	el.SetAttribute("role", "alertdialog")

	attrs := el.Attributes()
	if len(attrs) != 2 {
		t.Fatalf("Expected 2 attributes, got %v", len(attrs))
	}
	if attrs[0].Name != "role" || attrs[0].Value != "alertdialog" {
		t.Errorf("Expected in-place update to keep order, got %+v", attrs[0])
	}

	el.RemoveAttribute("role")
	if el.HasAttribute("role") {
		t.Error("Expected role removed")
	}
	el.RemoveAttribute("never-set")
}

func TestIDLookup(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")
	el.SetID("scrim-1")
	doc.Root().AppendChild(el.AsNode())

	if doc.GetElementByID("scrim-1") != el {
		t.Error("Expected lookup by id to find the element")
	}
	if doc.GetElementByID("missing") != nil {
		t.Error("Expected nil for unknown id")
	}
	if doc.GetElementByID("") != nil {
		t.Error("Expected nil for empty id")
	}
}

func TestClassList(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")
	classes := el.Classes()

	if err := classes.Add("scrim-modal", "scrim-modal-sheet"); err != nil {
		t.Fatalf("Expected Add to succeed, got %v", err)
	}
	if got := el.GetAttribute("class"); got != "scrim-modal scrim-modal-sheet" {
		t.Errorf("Expected class attribute synced, got %q", got)
	}
	if !classes.Contains("scrim-modal") {
		t.Error("Expected Contains true for added token")
	}

	// Duplicate add keeps a single occurrence.
	classes.Add("scrim-modal")
	if classes.Len() != 2 {
		t.Errorf("Expected 2 tokens after duplicate add, got %v", classes.Len())
	}

	if err := classes.Add(""); err != ErrEmptyToken {
		t.Errorf("Expected ErrEmptyToken, got %v", err)
	}
	if err := classes.Add("two words"); err == nil {
		t.Error("Expected error for token with whitespace")
	}

	classes.Remove("scrim-modal-sheet")
	if classes.Contains("scrim-modal-sheet") {
		t.Error("Expected token removed")
	}

	present, err := classes.Toggle("open")
	if err != nil || !present {
		t.Errorf("Expected toggle on, got present=%v err=%v", present, err)
	}
	present, _ = classes.Toggle("open")
	if present {
		t.Error("Expected toggle off")
	}
}

func TestClassListReadsExternalAttribute(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("class", "a b a")

	tokens := el.Classes().Values()
	if len(tokens) != 2 || tokens[0] != "a" || tokens[1] != "b" {
		t.Errorf("Expected deduplicated [a b], got %v", tokens)
	}
}

func TestMeasuredGeometry(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")

	if _, ok := el.Measured(); ok {
		t.Error("Expected fresh element to be unmeasured")
	}
	if r := el.BoundingRect(); r.Width != 0 || r.Height != 0 {
		t.Errorf("Expected zero rect for unmeasured element, got %+v", r)
	}

	el.SetMeasured(geom.Rect{X: 10, Y: 20, Width: 300, Height: 200})
	r, ok := el.Measured()
	if !ok {
		t.Fatal("Expected element measured after SetMeasured")
	}
	if r.X != 10 || r.Width != 300 {
		t.Errorf("Expected recorded geometry, got %+v", r)
	}
}

func TestElementFromPoint(t *testing.T) {
	doc := newTestDocument()
	panel := doc.CreateElement("div")
	panel.SetMeasured(geom.Rect{X: 100, Y: 100, Width: 400, Height: 300})
	button := doc.CreateElement("button")
	button.SetMeasured(geom.Rect{X: 120, Y: 120, Width: 80, Height: 30})
	panel.AppendChild(button.AsNode())
	doc.Root().AppendChild(panel.AsNode())

	if got := doc.ElementFromPoint(geom.Pt(130, 130)); got != button {
		t.Errorf("Expected hit on button, got %v", tagOf(got))
	}
	if got := doc.ElementFromPoint(geom.Pt(300, 250)); got != panel {
		t.Errorf("Expected hit on panel, got %v", tagOf(got))
	}
	if got := doc.ElementFromPoint(geom.Pt(5, 5)); got != nil {
		t.Errorf("Expected nil outside panels, got %v", tagOf(got))
	}
}

func TestElementFromPointPrefersLaterSiblings(t *testing.T) {
	doc := newTestDocument()
	under := doc.CreateElement("div")
	under.SetMeasured(geom.Rect{X: 0, Y: 0, Width: 800, Height: 600})
	over := doc.CreateElement("div")
	over.SetMeasured(geom.Rect{X: 0, Y: 0, Width: 800, Height: 600})
	doc.Root().AppendChild(under.AsNode())
	doc.Root().AppendChild(over.AsNode())

	if got := doc.ElementFromPoint(geom.Pt(400, 300)); got != over {
		t.Error("Expected the later sibling to win the hit test")
	}
}

func TestClosest(t *testing.T) {
	doc := newTestDocument()
	dialog := doc.CreateElement("dialog")
	section := doc.CreateElement("section")
	button := doc.CreateElement("button")
	dialog.AppendChild(section.AsNode())
	section.AppendChild(button.AsNode())

	if button.Closest(atom.Dialog) != dialog {
		t.Error("Expected Closest to find the dialog ancestor")
	}
	if button.Closest(atom.Button) != button {
		t.Error("Expected Closest to match the element itself")
	}
	if button.Closest(atom.Table) != nil {
		t.Error("Expected nil for an absent ancestor tag")
	}
}

func TestOuterHTML(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("role", "dialog")
	el.SetAttribute("aria-modal", "true")
	el.SetTextContent("a < b & c")

	want := `<div role="dialog" aria-modal="true">a &lt; b &amp; c</div>`
	if got := el.OuterHTML(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestOuterHTMLStyleAndClass(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")
	el.Classes().Add("scrim-backdrop")
	el.Style().SetProperty("zIndex", "1001")
	el.Style().SetProperty("max-height", "90%")

	got := el.OuterHTML()
	if !strings.Contains(got, `class="scrim-backdrop"`) {
		t.Errorf("Expected class attribute serialized, got %q", got)
	}
	if !strings.Contains(got, `style="z-index: 1001; max-height: 90%;"`) {
		t.Errorf("Expected normalized style serialized, got %q", got)
	}
}

func TestOuterHTMLVoidElement(t *testing.T) {
	doc := newTestDocument()
	hr := doc.CreateElement("hr")
	if got := hr.OuterHTML(); got != "<hr>" {
		t.Errorf("Expected void element without closing tag, got %q", got)
	}
}

func TestInnerHTML(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")
	child := doc.CreateElement("span")
	child.SetTextContent("hi")
	el.AppendChild(child.AsNode())
	el.AppendChild(doc.CreateText(" there"))

	if got := el.InnerHTML(); got != "<span>hi</span> there" {
		t.Errorf("Expected children serialized, got %q", got)
	}
}

func TestAttributeEscaping(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("data-label", `say "hi" & go`)

	got := el.OuterHTML()
	if !strings.Contains(got, `data-label="say &#34;hi&#34; &amp; go"`) {
		t.Errorf("Expected escaped attribute value, got %q", got)
	}
}

func tagOf(el *Element) string {
	if el == nil {
		return "<nil>"
	}
	return el.TagName()
}
