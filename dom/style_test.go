package dom

import (
	"testing"
)

func TestStyleSetAndGet(t *testing.T) {
	sd := newStyleDeclaration()
	sd.SetProperty("z-index", "1001")
	if got := sd.GetPropertyValue("z-index"); got != "1001" {
		t.Errorf("Expected 1001, got %q", got)
	}
	if got := sd.GetPropertyValue("missing"); got != "" {
		t.Errorf("Expected empty for missing property, got %q", got)
	}
}

func TestStyleCamelCaseNormalization(t *testing.T) {
	sd := newStyleDeclaration()
	sd.SetProperty("zIndex", "5")
	sd.SetProperty("maxHeight", "90%")

	if got := sd.GetPropertyValue("z-index"); got != "5" {
		t.Errorf("Expected camelCase write readable as kebab-case, got %q", got)
	}
	if got := sd.GetPropertyValue("maxHeight"); got != "90%" {
		t.Errorf("Expected camelCase read to normalize, got %q", got)
	}
	if got := sd.CSSText(); got != "z-index: 5; max-height: 90%;" {
		t.Errorf("Expected normalized text, got %q", got)
	}
}

func TestStyleDeclarationOrder(t *testing.T) {
	sd := newStyleDeclaration()
	sd.SetProperty("transform", "translateY(0)")
	sd.SetProperty("transition", "none")
	sd.SetProperty("transform", "translateY(12px)")

	if got := sd.CSSText(); got != "transform: translateY(12px); transition: none;" {
		t.Errorf("Expected update in place to keep order, got %q", got)
	}
}

func TestStyleRemoveProperty(t *testing.T) {
	sd := newStyleDeclaration()
	sd.SetProperty("opacity", "0")

	if got := sd.RemoveProperty("opacity"); got != "0" {
		t.Errorf("Expected removed value returned, got %q", got)
	}
	if sd.Len() != 0 {
		t.Errorf("Expected empty declaration, got %v properties", sd.Len())
	}
	if got := sd.RemoveProperty("opacity"); got != "" {
		t.Errorf("Expected empty for re-remove, got %q", got)
	}
}

func TestStyleEmptyValueRemoves(t *testing.T) {
	sd := newStyleDeclaration()
	sd.SetProperty("transition", "none")
	sd.SetProperty("transition", "")
	if sd.Len() != 0 {
		t.Error("Expected empty value to remove the property")
	}
}

func TestStyleSetCSSText(t *testing.T) {
	sd := newStyleDeclaration()
	sd.SetCSSText("z-index: 3; ; broken; max-height : 50% ")

	if sd.Len() != 2 {
		t.Fatalf("Expected 2 parsed properties, got %v", sd.Len())
	}
	if got := sd.GetPropertyValue("max-height"); got != "50%" {
		t.Errorf("Expected trimmed value, got %q", got)
	}

	sd.SetCSSText("")
	if sd.Len() != 0 {
		t.Error("Expected SetCSSText to replace previous declarations")
	}
}

func TestStyleAttributeRoundTrip(t *testing.T) {
	doc := newTestDocument()
	el := doc.CreateElement("div")
	el.SetAttribute("style", "z-index: 7; opacity: 0.5;")

	if got := el.Style().GetPropertyValue("z-index"); got != "7" {
		t.Errorf("Expected style attribute parsed, got %q", got)
	}
	if got := el.GetAttribute("style"); got != "z-index: 7; opacity: 0.5;" {
		t.Errorf("Expected style attribute reserialized, got %q", got)
	}
	if !el.HasAttribute("style") {
		t.Error("Expected HasAttribute style true while declarations exist")
	}

	el.RemoveAttribute("style")
	if el.HasAttribute("style") {
		t.Error("Expected style cleared")
	}
}
