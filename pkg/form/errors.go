package form

import "errors"

// ErrUnknownKind is returned by ParseKind for names that match no kind.
var ErrUnknownKind = errors.New("unknown validation kind")
