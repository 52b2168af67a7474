package htmldom

import "errors"

var (
	ErrParseDocument  = errors.New("htmldom: failed to parse document")
	ErrRenderDocument = errors.New("htmldom: failed to render document")
)
