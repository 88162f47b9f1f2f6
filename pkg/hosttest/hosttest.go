// Package hosttest provides host element fixtures for widget tests.
package hosttest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/go-drift/anchor/pkg/host"
)

// NewElement builds a detached host element with the given tag and
// attributes. When no id attribute is given, a generated one is assigned so
// fixtures stay distinguishable in failure output.
func NewElement(tag string, attrs map[string]string) *host.NodeElement {
	node := &html.Node{
		Type: html.ElementNode,
		Data: tag,
	}
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		node.Attr = append(node.Attr, html.Attribute{Key: key, Val: attrs[key]})
	}
	el := host.FromNode(node)
	if host.ID(el) == "" {
		el.SetAttr("id", "test-"+uuid.NewString())
	}
	return el
}

// WithOptions JSON-encodes cfg into the element's reserved configuration
// attribute and returns the element.
func WithOptions(el *host.NodeElement, cfg map[string]any) *host.NodeElement {
	data, err := json.Marshal(cfg)
	if err != nil {
		panic(fmt.Sprintf("hosttest: unencodable options: %v", err))
	}
	host.SetDataset(el, host.OptionsAttr, string(data))
	return el
}

// WithEncodedOptions URL-encodes cfg before attaching it, for exercising
// the decode path.
func WithEncodedOptions(el *host.NodeElement, cfg map[string]any) *host.NodeElement {
	data, err := json.Marshal(cfg)
	if err != nil {
		panic(fmt.Sprintf("hosttest: unencodable options: %v", err))
	}
	host.SetDataset(el, host.OptionsAttr, url.PathEscape(string(data)))
	return el
}

// WithRawOptions attaches the attribute text verbatim, for malformed
// configuration tests.
func WithRawOptions(el *host.NodeElement, raw string) *host.NodeElement {
	host.SetDataset(el, host.OptionsAttr, raw)
	return el
}

// Invalid returns an element handle that fails validation.
func Invalid() host.Element {
	return host.FromNode(nil)
}
