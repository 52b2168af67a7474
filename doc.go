// Package formvalidate validates HTML form fields the way a browser form
// plugin would: failing fields get a colored border and messages are appended
// to an alert box.
//
// The module is organized as:
//
//	pkg/form       the rule engine and configuration resolver
//	pkg/validator  the loose required, e-mail, numeric and date rules
//	pkg/htmldom    form.Document over parsed HTML
//	pkg/termview   terminal reports
//	pkg/config     environment-based configuration loading
//	pkg/logger     slog logger construction
//	pkg/sanitizer  browser-compatible string helpers
//
// The formvalidate command in cmd/formvalidate runs YAML validation plans
// against HTML files.
package formvalidate
