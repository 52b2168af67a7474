package form_test

import (
	"strings"

	"github.com/dmitrymomot/formvalidate/pkg/form"
)

// fakeElement is an in-memory form.Element. Children marked resettable are
// returned by Find(form.ResettableFields).
type fakeElement struct {
	name       string
	value      string
	border     string
	content    strings.Builder
	resettable bool
	children   []*fakeElement
	borderSets int
}

func field(name, value string) *fakeElement {
	return &fakeElement{name: name, value: value, resettable: true}
}

func (e *fakeElement) Value() string              { return e.value }
func (e *fakeElement) Name() string               { return e.name }
func (e *fakeElement) AppendHTML(fragment string) { e.content.WriteString(fragment) }
func (e *fakeElement) Clear()                     { e.content.Reset() }
func (e *fakeElement) HTML() string               { return e.content.String() }

func (e *fakeElement) SetBorderColor(color string) {
	e.border = color
	e.borderSets++
}

func (e *fakeElement) Find(selector string) []form.Element {
	if selector != form.ResettableFields {
		return nil
	}
	var found []form.Element
	for _, c := range e.children {
		if c.resettable {
			found = append(found, c)
		}
		found = append(found, c.Find(selector)...)
	}
	return found
}

type fakeDocument struct {
	elements map[string][]*fakeElement
	queries  []string
}

func newDocument() *fakeDocument {
	return &fakeDocument{elements: make(map[string][]*fakeElement)}
}

func (d *fakeDocument) add(selector string, el *fakeElement) *fakeElement {
	d.elements[selector] = append(d.elements[selector], el)
	return el
}

func (d *fakeDocument) Query(selector string) []form.Element {
	d.queries = append(d.queries, selector)
	var out []form.Element
	for _, el := range d.elements[selector] {
		out = append(out, el)
	}
	return out
}

func targets(els ...*fakeElement) []form.Element {
	out := make([]form.Element, 0, len(els))
	for _, el := range els {
		out = append(out, el)
	}
	return out
}
