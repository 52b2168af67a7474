package validator

import "regexp"

// Day, month and year fragments of the accepted date shapes. Four-digit years
// must start with 19, 10, 29 or 20; two-digit years are unrestricted. Day and
// month are not range checked beyond their digit classes.
const (
	dayPattern   = `[0-3]?[0-9]`
	monthPattern = `[01]?[0-9]`
	yearPattern  = `([12][90][0-9][0-9]|[0-9][0-9])`
)

// datePatterns lists the six accepted shapes: day first and year first, each
// with "/", "-" or "." as separator (the same separator on both sides).
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^` + dayPattern + `/` + monthPattern + `/` + yearPattern + `$`),
	regexp.MustCompile(`^` + dayPattern + `-` + monthPattern + `-` + yearPattern + `$`),
	regexp.MustCompile(`^` + dayPattern + `\.` + monthPattern + `\.` + yearPattern + `$`),
	regexp.MustCompile(`^` + yearPattern + `/` + monthPattern + `/` + dayPattern + `$`),
	regexp.MustCompile(`^` + yearPattern + `-` + monthPattern + `-` + dayPattern + `$`),
	regexp.MustCompile(`^` + yearPattern + `\.` + monthPattern + `\.` + dayPattern + `$`),
}

// IsDateShaped reports whether value looks like a date in one of the
// DD/MM/YYYY, DD/MM/YY, YYYY/MM/DD or YY/MM/DD layouts with "/", "-" or "."
// separators. It checks shape only: "31/02/2024" and "2024/13/01" pass.
func IsDateShaped(value string) bool {
	for _, re := range datePatterns {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// DateShape validates value with IsDateShaped.
func DateShape(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return IsDateShaped(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a date",
			Code:    "validation.date",
		},
	}
}
