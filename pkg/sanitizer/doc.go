// Package sanitizer provides the small string helpers the form validator and its
// renderers share: browser-compatible whitespace trimming, literal
// first-occurrence replacement and markup stripping for plain-text output.
//
// Browsers trim a slightly different set of characters than strings.TrimSpace:
// the byte order mark (U+FEFF) counts as whitespace while NEL (U+0085) does not.
// Trim and TrimLeft follow the browser definition so that a value rejected as
// blank in the page is rejected here too.
//
//	sanitizer.Trim("\uFEFF  jane ")           // "jane"
//	sanitizer.ReplaceFirst("1,5,0", ",", ".")      // "1.5,0"
//	sanitizer.PlainText("Field <strong>x</strong><br />") // "Field x"
//
// All helpers are stateless and safe for concurrent use.
package sanitizer
