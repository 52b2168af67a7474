package sanitizer

import (
	"html"
	"regexp"
	"strings"
	"unicode"
)

var (
	tagRegex        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// IsSpace reports whether r is whitespace as browsers define it for
// String.prototype.trim: Unicode space separators, line terminators and the
// byte order mark. Unlike unicode.IsSpace, U+0085 (NEL) is not whitespace.
func IsSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimFunc(s, IsSpace)
}

// TrimLeft removes leading whitespace from a string.
func TrimLeft(s string) string {
	return strings.TrimLeftFunc(s, IsSpace)
}

// ReplaceFirst replaces only the first occurrence of old with new.
// The replacement is literal; no pattern expansion is performed.
func ReplaceFirst(s, old, new string) string {
	return strings.Replace(s, old, new, 1)
}

// RemoveExtraWhitespace normalizes whitespace by replacing multiple consecutive
// whitespace characters with a single space and trimming.
func RemoveExtraWhitespace(s string) string {
	return Trim(whitespaceRegex.ReplaceAllString(s, " "))
}

// StripHTML removes HTML tags and unescapes HTML entities.
func StripHTML(s string) string {
	return html.UnescapeString(tagRegex.ReplaceAllString(s, ""))
}

// PlainText turns a markup fragment into a single line of text.
// Line-break tags become spaces before the remaining tags are stripped.
func PlainText(s string) string {
	s = breakRegex.ReplaceAllString(s, " ")
	return RemoveExtraWhitespace(StripHTML(s))
}

var breakRegex = regexp.MustCompile(`(?i)<br\s*/?>`)

// Lines splits a markup fragment at line-break tags and returns the plain
// text of every non-empty line.
func Lines(s string) []string {
	var lines []string
	for _, part := range breakRegex.Split(s, -1) {
		if text := PlainText(part); text != "" {
			lines = append(lines, text)
		}
	}
	return lines
}
