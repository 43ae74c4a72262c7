package dom

import (
	"strings"
)

// StyleDeclaration is an element's inline style: an ordered set of CSS
// property declarations. Property names accept both camelCase and
// kebab-case and are stored normalized to kebab-case.
type StyleDeclaration struct {
	declarations  map[string]string
	propertyOrder []string
}

func newStyleDeclaration() *StyleDeclaration {
	return &StyleDeclaration{declarations: make(map[string]string)}
}

// Len returns the number of declared properties.
func (sd *StyleDeclaration) Len() int {
	return len(sd.propertyOrder)
}

// SetProperty declares a property. An empty value removes it.
func (sd *StyleDeclaration) SetProperty(property, value string) {
	property = normalizePropertyName(property)
	if property == "" {
		return
	}
	if value == "" {
		sd.RemoveProperty(property)
		return
	}
	if _, exists := sd.declarations[property]; !exists {
		sd.propertyOrder = append(sd.propertyOrder, property)
	}
	sd.declarations[property] = strings.TrimSpace(value)
}

// GetPropertyValue returns the declared value, or "" when absent.
func (sd *StyleDeclaration) GetPropertyValue(property string) string {
	return sd.declarations[normalizePropertyName(property)]
}

// RemoveProperty removes a property and returns its previous value.
func (sd *StyleDeclaration) RemoveProperty(property string) string {
	property = normalizePropertyName(property)
	value, exists := sd.declarations[property]
	if !exists {
		return ""
	}
	delete(sd.declarations, property)
	for i, p := range sd.propertyOrder {
		if p == property {
			sd.propertyOrder = append(sd.propertyOrder[:i], sd.propertyOrder[i+1:]...)
			break
		}
	}
	return value
}

// Clear removes every declaration.
func (sd *StyleDeclaration) Clear() {
	sd.declarations = make(map[string]string)
	sd.propertyOrder = nil
}

// CSSText serializes the declarations in declaration order.
func (sd *StyleDeclaration) CSSText() string {
	if len(sd.propertyOrder) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, property := range sd.propertyOrder {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(property)
		sb.WriteString(": ")
		sb.WriteString(sd.declarations[property])
		sb.WriteString(";")
	}
	return sb.String()
}

// SetCSSText replaces all declarations by parsing a style attribute value.
// Malformed segments are skipped.
func (sd *StyleDeclaration) SetCSSText(cssText string) {
	sd.Clear()
	for _, decl := range strings.Split(cssText, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		idx := strings.Index(decl, ":")
		if idx <= 0 {
			continue
		}
		property := strings.TrimSpace(decl[:idx])
		value := strings.TrimSpace(decl[idx+1:])
		if property == "" || value == "" {
			continue
		}
		sd.SetProperty(property, value)
	}
}

// normalizePropertyName lowercases kebab-case names and converts camelCase
// names (zIndex, maxHeight) to kebab-case.
func normalizePropertyName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	var result strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				result.WriteByte('-')
			}
			result.WriteByte(byte(r - 'A' + 'a'))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
