package htmldom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/dmitrymomot/formvalidate/pkg/form"
	"github.com/dmitrymomot/formvalidate/pkg/sanitizer"
)

// Element is an element node of a Document. It implements form.Element.
type Element struct {
	node *html.Node
}

// Tag returns the lower-case tag name.
func (e *Element) Tag() string {
	return e.node.Data
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets or adds an attribute.
func (e *Element) SetAttr(key, val string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = val
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
}

// Name returns the name attribute, or "" when it is absent.
func (e *Element) Name() string {
	name, _ := e.Attr("name")
	return name
}

// Value returns the current value of a form control:
//
//	input     the value attribute ("on" for checkboxes and radios without one)
//	textarea  its text content
//	select    the value of the selected option, else of the first option
//	option    the value attribute, else its text with whitespace collapsed
//
// Other elements have no value.
func (e *Element) Value() string {
	switch e.node.DataAtom {
	case atom.Input:
		if v, ok := e.Attr("value"); ok {
			return v
		}
		switch t, _ := e.Attr("type"); strings.ToLower(t) {
		case "checkbox", "radio":
			return "on"
		}
		return ""
	case atom.Textarea:
		return e.Text()
	case atom.Select:
		return e.selectValue()
	case atom.Option:
		if v, ok := e.Attr("value"); ok {
			return v
		}
		return sanitizer.RemoveExtraWhitespace(e.Text())
	}
	return ""
}

// selectValue follows the browser rules: the last selected option wins; a
// single-row select with nothing selected shows its first enabled option; a
// multiple or multi-row select with nothing selected has no value. Values of
// several selected options in a multiple select are joined with commas.
func (e *Element) selectValue() string {
	options := e.Elements("option")

	var selected []*Element
	for _, o := range options {
		if _, ok := o.Attr("selected"); ok {
			selected = append(selected, o)
		}
	}

	if _, multiple := e.Attr("multiple"); multiple {
		values := make([]string, len(selected))
		for i, o := range selected {
			values[i] = o.Value()
		}
		return strings.Join(values, ",")
	}
	if len(selected) > 0 {
		return selected[len(selected)-1].Value()
	}
	if e.displaySize() > 1 {
		return ""
	}
	for _, o := range options {
		if !o.disabled() {
			return o.Value()
		}
	}
	return ""
}

func (e *Element) displaySize() int {
	v, ok := e.Attr("size")
	if !ok {
		return 1
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// disabled reports whether an option is disabled itself or through its
// optgroup.
func (e *Element) disabled() bool {
	if _, ok := e.Attr("disabled"); ok {
		return true
	}
	if p := e.node.Parent; p != nil && p.DataAtom == atom.Optgroup {
		for _, a := range p.Attr {
			if a.Namespace == "" && a.Key == "disabled" {
				return true
			}
		}
	}
	return false
}

// Text returns the concatenated text content of the element.
func (e *Element) Text() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

// HTML returns the rendered inner HTML of the element.
func (e *Element) HTML() string {
	var b strings.Builder
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		_ = html.Render(&b, c)
	}
	return b.String()
}

// AppendHTML parses fragment in the context of the element and appends the
// resulting nodes as its last children. Unparseable input is dropped.
func (e *Element) AppendHTML(fragment string) {
	nodes, err := html.ParseFragment(strings.NewReader(fragment), e.node)
	if err != nil {
		return
	}
	for _, n := range nodes {
		e.node.AppendChild(n)
	}
}

// Clear removes all children of the element.
func (e *Element) Clear() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

// Find returns the descendants matching selector, in document order.
func (e *Element) Find(selector string) []form.Element {
	return wrap(e.Elements(selector))
}

// Elements is Find with the concrete element type.
func (e *Element) Elements(selector string) []*Element {
	return queryAll(e.node, selector)
}

// SetBorderColor sets the inline border to "1px solid <color>". Other
// declarations in the style attribute are kept.
func (e *Element) SetBorderColor(color string) {
	style, _ := e.Attr("style")
	e.SetAttr("style", setBorder(style, "1px solid "+color))
}

// BorderColor returns the color set by SetBorderColor, or "" when the
// element has no such inline border.
func (e *Element) BorderColor() string {
	style, _ := e.Attr("style")
	border, ok := declaration(style, "border")
	if !ok {
		return ""
	}
	color, ok := strings.CutPrefix(border, "1px solid ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(color)
}

// Node returns the underlying parse tree node. Two Elements refer to the same
// element when their nodes are equal.
func (e *Element) Node() *html.Node {
	return e.node
}
