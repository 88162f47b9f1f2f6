// Package main provides optdump, a small inspection tool that lists the
// element-attached widget configuration found in an HTML file. Attributes
// are decoded exactly the way widget.Mount decodes them, so the output is
// what a widget bound to each element would see from the element source.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-drift/anchor/pkg/host"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: optdump [flags] <file.html>\n\n")
		fmt.Fprintf(os.Stderr, "Lists every element carrying a data-options attribute.\n\n")
		flag.PrintDefaults()
	}
	pretty := flag.Bool("pretty", false, "indent decoded configuration")
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), *pretty); err != nil {
		fmt.Fprintf(os.Stderr, "optdump: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, pretty bool) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	doc, err := html.Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	walk(doc, func(n *html.Node) {
		el := host.FromNode(n)
		raw, ok := host.Dataset(el, host.OptionsAttr)
		if !ok {
			return
		}
		fmt.Printf("%s\n", describe(el))
		report(raw, pretty)
	})
	return nil
}

// walk visits every element node in document order.
func walk(n *html.Node, visit func(*html.Node)) {
	if n.Type == html.ElementNode {
		visit(n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

// describe renders an element as tag#id.
func describe(el *host.NodeElement) string {
	if id := host.ID(el); id != "" {
		return el.Tag() + "#" + id
	}
	return el.Tag()
}

// report decodes one attribute value the way widget.Mount does:
// URL-decode keeping the raw text on failure, then parse as JSON.
func report(raw string, pretty bool) {
	text, err := url.PathUnescape(raw)
	if err != nil {
		fmt.Printf("  decode failed (%v), using raw text\n", err)
		text = raw
	}

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		fmt.Printf("  unparsable: %v\n", err)
		return
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		fmt.Printf("  ignored: not a JSON object (%T)\n", parsed)
		return
	}

	if pretty {
		out, _ := json.MarshalIndent(obj, "  ", "  ")
		fmt.Printf("  %s\n", out)
		return
	}
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", key, obj[key]))
	}
	fmt.Printf("  %s\n", strings.Join(pairs, " "))
}
