package form

// ResettableFields selects the descendants whose borders a reset restores.
const ResettableFields = `input[type="text" i], input[type="password" i], textarea, select`

// Element is a node of the page being validated: a form field, a container
// of fields, or an alert box. Implementations wrap whatever UI toolkit or
// document model hosts the form.
type Element interface {
	// Value returns the current text value of a field.
	Value() string
	// Name returns the name attribute, or "" when it is absent.
	Name() string
	// SetBorderColor sets the visual valid/invalid indicator.
	SetBorderColor(color string)
	// AppendHTML appends a markup fragment to the element's content.
	AppendHTML(fragment string)
	// Clear removes all of the element's content.
	Clear()
	// Find returns the descendants matching a CSS selector, in document
	// order. The element itself is never included.
	Find(selector string) []Element
}

// Document resolves CSS selectors to elements. The validator uses it to
// locate the alert box.
type Document interface {
	Query(selector string) []Element
}
