package validator

import "github.com/dmitrymomot/formvalidate/pkg/sanitizer"

// IsFilled reports whether value has any non-whitespace character.
// Whitespace follows the browser definition, see sanitizer.Trim.
func IsFilled(value string) bool {
	return sanitizer.Trim(value) != ""
}

// Required validates that a string is not empty after trimming whitespace.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsFilled(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: ErrFieldRequired.Error(),
			Code:    "validation.required",
		},
	}
}
