package host

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodeElement is an Element backed by a parsed HTML node.
type NodeElement struct {
	node *html.Node
}

// FromNode wraps an HTML node in an element handle.
// The node may be nil; the resulting handle reports itself invalid.
func FromNode(n *html.Node) *NodeElement {
	return &NodeElement{node: n}
}

// Node exposes the underlying HTML node. Callers share ownership with the
// surrounding tree; the handle never detaches or frees it.
func (e *NodeElement) Node() *html.Node {
	if e == nil {
		return nil
	}
	return e.node
}

// Tag returns the element's tag name, or "" for invalid handles.
func (e *NodeElement) Tag() string {
	if !e.Valid() {
		return ""
	}
	return e.node.Data
}

// Attr returns the named attribute and whether it is present.
func (e *NodeElement) Attr(name string) (string, bool) {
	if !e.Valid() {
		return "", false
	}
	for _, a := range e.node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr writes the named attribute, replacing any existing value.
func (e *NodeElement) SetAttr(name, value string) {
	if !e.Valid() {
		return
	}
	for i, a := range e.node.Attr {
		if a.Key == name {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: name, Val: value})
}

// Valid reports whether the handle refers to an element node.
func (e *NodeElement) Valid() bool {
	return e != nil && e.node != nil && e.node.Type == html.ElementNode
}

// ParseFragment parses an HTML fragment in a body context and returns a
// handle for every top-level element node.
func ParseFragment(fragment string) ([]*NodeElement, error) {
	body := &html.Node{
		Type:     html.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fragment: %w", err)
	}
	elements := make([]*NodeElement, 0, len(nodes))
	for _, n := range nodes {
		if n.Type == html.ElementNode {
			elements = append(elements, FromNode(n))
		}
	}
	return elements, nil
}

// First parses an HTML fragment and returns a handle to its first element.
func First(fragment string) (*NodeElement, error) {
	elements, err := ParseFragment(fragment)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("fragment contains no element: %q", fragment)
	}
	return elements[0], nil
}
