package validator

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/dmitrymomot/formvalidate/pkg/sanitizer"
)

const infinity = "Infinity"

// ParseFloatPrefix parses the longest leading decimal literal of s, the way
// browsers implement parseFloat. Leading whitespace is skipped and anything
// after the literal is ignored, so "12abc" yields 12. The literal may carry a
// sign, a fraction, an exponent, or be "Infinity". ok is false (and the value
// NaN) when s has no numeric prefix at all.
func ParseFloatPrefix(s string) (value float64, ok bool) {
	s = sanitizer.TrimLeft(s)

	n := numericPrefixLen(s)
	if n == 0 {
		return math.NaN(), false
	}

	prefix := s[:n]
	unsigned := strings.TrimLeft(prefix, "+-")
	if unsigned == infinity {
		if prefix[0] == '-' {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	f, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return f, true
}

// numericPrefixLen returns the byte length of the decimal literal at the start
// of s, or 0 if there is none.
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if strings.HasPrefix(s[i:], infinity) {
		return i + len(infinity)
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}

	// Exponent only counts when at least one digit follows.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		exp := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsNumeric reports whether value reads as a number after the first decimal
// comma is turned into a point. Only the first comma is converted, and the
// parse is the permissive prefix parse of ParseFloatPrefix.
func IsNumeric(value string) bool {
	_, ok := ParseFloatPrefix(sanitizer.ReplaceFirst(value, ",", "."))
	return ok
}

// LooseNumber validates value with IsNumeric.
func LooseNumber(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsNumeric(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a number",
			Code:    "validation.numeric",
		},
	}
}
