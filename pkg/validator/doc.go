// Package validator provides the value-level checks behind form validation,
// packaged as small Rule values that pair a boolean Check with error metadata.
//
// Four loose rules are provided, each with a plain predicate for callers that
// only need a yes/no answer:
//
//	Required / IsFilled         not blank after browser whitespace trimming
//	LooseEmail / IsEmailShaped  contains "@" and ".", last "@" before first "."
//	LooseNumber / IsNumeric     decimal comma allowed, permissive prefix parse
//	DateShape / IsDateShaped    one of six day-first or year-first layouts
//
// The checks are deliberately loose. They match what users of existing forms
// already see accepted or rejected, so "12abc" is a number, "a@b@c.d" is an
// e-mail address and "31/02/2024" is a date.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Required("name", name),
//	    validator.LooseEmail("email", email),
//	    validator.DateShape("birthday", birthday),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        fmt.Println(field, verrs.Get(field))
//	    }
//	}
//
// ValidationErrors implements error and matches ErrValidationFailed with
// errors.Is. Apply evaluates every rule; it never stops at the first failure.
package validator
