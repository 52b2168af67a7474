package htmldom

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// borderProperties are dropped when the border shorthand is written, the
// same way a browser resets longhands when a shorthand is assigned.
var borderProperties = map[string]bool{
	"border":       true,
	"border-width": true,
	"border-style": true,
	"border-color": true,
}

// parseStyle parses the declarations of an inline style attribute. A style
// that does not parse yields no declarations.
func parseStyle(style string) []*css.Declaration {
	if strings.TrimSpace(style) == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return nil
	}
	for _, d := range decls {
		d.Property = strings.ToLower(strings.TrimSpace(d.Property))
	}
	return decls
}

func formatStyle(decls []*css.Declaration) string {
	parts := make([]string, len(decls))
	for i, d := range decls {
		parts[i] = d.StringWithImportant(true)
	}
	return strings.Join(parts, " ")
}

// setBorder replaces the border declarations of style with a single border
// shorthand. The shorthand takes the place of the first replaced declaration.
func setBorder(style, value string) string {
	border := &css.Declaration{Property: "border", Value: value}

	decls := parseStyle(style)
	out := make([]*css.Declaration, 0, len(decls)+1)
	placed := false
	for _, d := range decls {
		if !borderProperties[d.Property] {
			out = append(out, d)
			continue
		}
		if !placed {
			out = append(out, border)
			placed = true
		}
	}
	if !placed {
		out = append(out, border)
	}
	return formatStyle(out)
}

// declaration returns the value of the last declaration of prop.
func declaration(style, prop string) (string, bool) {
	var (
		value string
		found bool
	)
	for _, d := range parseStyle(style) {
		if d.Property == prop {
			value, found = d.Value, true
		}
	}
	return value, found
}
