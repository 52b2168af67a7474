// Package form validates form fields and reports failures the way a browser
// form would: failing fields get an alert-colored border and a message is
// appended to an alert box on the page.
//
// The package does not know about any particular UI toolkit. Fields and the
// alert box are reached through the Element and Document interfaces; see
// package htmldom for an implementation over parsed HTML.
//
// # Kinds
//
// Each call runs one Kind against a collection of target elements:
//
//	KindReset     restore borders of fields inside the targets, empty the alert box
//	KindRequired  value must not be blank (default)
//	KindEmail     value must contain "@" and ".", last "@" before first "."
//	KindNumeric   value must start with a number; "3,14" is accepted
//	KindDate      value must look like DD/MM/YYYY, YYYY-MM-DD and similar
//
// Every target is checked, so every failure is reported. Messages accumulate
// in the alert box until the next reset. A kind outside this list does
// nothing and produces no verdict.
//
// # Configuration
//
// Per-call options are merged onto the validator's defaults:
//
//	v := form.New(doc, form.WithLogger(log))
//	v.Reset(doc.Query("form"))
//	ok := v.Required(doc.Query("#name, #email"))
//	ok = v.Email(doc.Query("#email"), form.WithAlertColor("#c00")) && ok
//
// DefaultConfig holds the built-in defaults. Config carries env tags, so
// alternative defaults can be loaded with package config and installed with
// WithDefaults. Messages contain one placeholder ({isreq}, {ismail}, {isnum},
// {isdate}) that is replaced by the field's name attribute.
package form
