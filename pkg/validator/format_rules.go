package validator

import "strings"

// IsEmailShaped performs the loose e-mail check used by HTML forms of this
// kind: the value must contain an "@" and a ".", and the last "@" must come
// before the first ".". It is not an RFC 5322 check: "a@b@c.d" passes and
// "first.last@example.com" fails.
func IsEmailShaped(value string) bool {
	at := strings.LastIndex(value, "@")
	dot := strings.Index(value, ".")
	return at != -1 && dot != -1 && at < dot
}

// LooseEmail validates value with IsEmailShaped.
func LooseEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsEmailShaped(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be an e-mail address",
			Code:    "validation.email",
		},
	}
}
