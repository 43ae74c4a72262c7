package dom

import (
	"errors"
	"fmt"
	"strings"
)

// Validation failures for token list operations.
var (
	ErrEmptyToken   = errors.New("dom: token must not be empty")
	ErrInvalidToken = errors.New("dom: token must not contain whitespace")
)

// validateToken checks that a token is usable in a space-separated list.
func validateToken(token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if strings.ContainsAny(token, " \t\n\r\f") {
		return fmt.Errorf("%w: %q", ErrInvalidToken, token)
	}
	return nil
}

// TokenList is a set of space-separated tokens stored in an element
// attribute. It is a live view: reads and writes go through the attribute,
// so serialization and direct attribute access always agree.
type TokenList struct {
	element  *Element
	attrName string
}

func newTokenList(element *Element, attrName string) *TokenList {
	return &TokenList{element: element, attrName: attrName}
}

// tokens returns the current tokens, deduplicated, preserving order.
func (tl *TokenList) tokens() []string {
	value := tl.element.GetAttribute(tl.attrName)
	if value == "" {
		return nil
	}
	fields := strings.Fields(value)
	seen := make(map[string]bool, len(fields))
	result := make([]string, 0, len(fields))
	for _, token := range fields {
		if !seen[token] {
			seen[token] = true
			result = append(result, token)
		}
	}
	return result
}

func (tl *TokenList) setTokens(tokens []string) {
	if len(tokens) > 0 {
		tl.element.SetAttribute(tl.attrName, strings.Join(tokens, " "))
		return
	}
	if tl.element.HasAttribute(tl.attrName) {
		tl.element.SetAttribute(tl.attrName, "")
	}
}

// Len returns the number of tokens.
func (tl *TokenList) Len() int {
	return len(tl.tokens())
}

// Contains reports whether the token is present. Invalid tokens are never
// present.
func (tl *TokenList) Contains(token string) bool {
	if validateToken(token) != nil {
		return false
	}
	for _, t := range tl.tokens() {
		if t == token {
			return true
		}
	}
	return false
}

// Add appends tokens not already present. It validates every token before
// changing anything.
func (tl *TokenList) Add(tokens ...string) error {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return err
		}
	}
	current := tl.tokens()
	for _, token := range tokens {
		found := false
		for _, t := range current {
			if t == token {
				found = true
				break
			}
		}
		if !found {
			current = append(current, token)
		}
	}
	tl.setTokens(current)
	return nil
}

// Remove removes the given tokens. It validates every token before changing
// anything.
func (tl *TokenList) Remove(tokens ...string) error {
	for _, token := range tokens {
		if err := validateToken(token); err != nil {
			return err
		}
	}
	toRemove := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		toRemove[token] = true
	}
	var result []string
	for _, t := range tl.tokens() {
		if !toRemove[t] {
			result = append(result, t)
		}
	}
	tl.setTokens(result)
	return nil
}

// Toggle flips the presence of a token and reports whether it is present
// after the operation.
func (tl *TokenList) Toggle(token string) (bool, error) {
	if err := validateToken(token); err != nil {
		return false, err
	}
	if tl.Contains(token) {
		tl.Remove(token)
		return false, nil
	}
	tl.Add(token)
	return true, nil
}

// Values returns the tokens in order.
func (tl *TokenList) Values() []string {
	return tl.tokens()
}

// String returns the underlying attribute value.
func (tl *TokenList) String() string {
	return tl.element.GetAttribute(tl.attrName)
}
