package htmldom

import (
	"errors"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/dmitrymomot/formvalidate/pkg/form"
)

// Document is a parsed HTML document that can be queried and modified in
// place. It implements form.Document.
type Document struct {
	root *html.Node
}

// Parse reads a complete HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, errors.Join(ErrParseDocument, err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document held in a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Query returns the elements matching a CSS selector group, in document
// order. An invalid selector matches nothing.
func (d *Document) Query(selector string) []form.Element {
	return wrap(d.Elements(selector))
}

// Elements is Query with the concrete element type.
func (d *Document) Elements(selector string) []*Element {
	return queryAll(d.root, selector)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return errors.Join(ErrRenderDocument, err)
	}
	return nil
}

// String returns the document as HTML.
func (d *Document) String() string {
	var b strings.Builder
	_ = html.Render(&b, d.root)
	return b.String()
}

// queryAll matches descendants of n only; n itself is never part of the result.
func queryAll(n *html.Node, selector string) []*Element {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	nodes := cascadia.QueryAll(n, sel)
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Element, len(nodes))
	for i, node := range nodes {
		out[i] = &Element{node: node}
	}
	return out
}

func wrap(els []*Element) []form.Element {
	if len(els) == 0 {
		return nil
	}
	out := make([]form.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out
}
