package form

import (
	"fmt"
	"strings"
)

// Kind selects the behaviour of one validation call.
type Kind string

const (
	// KindReset restores field borders and empties the alert box.
	KindReset Kind = "reset"
	// KindRequired rejects blank values.
	KindRequired Kind = "isreq"
	// KindEmail rejects values that are not shaped like an e-mail address.
	KindEmail Kind = "ismail"
	// KindNumeric rejects values that do not start with a number.
	KindNumeric Kind = "isnum"
	// KindDate rejects values that are not shaped like a date.
	KindDate Kind = "isdate"
)

var kindAliases = map[string]Kind{
	"reset":    KindReset,
	"isreq":    KindRequired,
	"required": KindRequired,
	"ismail":   KindEmail,
	"email":    KindEmail,
	"isnum":    KindNumeric,
	"numeric":  KindNumeric,
	"number":   KindNumeric,
	"isdate":   KindDate,
	"date":     KindDate,
}

// Kinds returns every known kind, reset first.
func Kinds() []Kind {
	return []Kind{KindReset, KindRequired, KindEmail, KindNumeric, KindDate}
}

// ParseKind maps a kind name or one of its aliases (required, email,
// numeric, number, date) to a Kind. Matching ignores case and surrounding
// spaces.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// IsKnown reports whether k is one of the five defined kinds.
// Validating with an unknown kind is a no-op.
func (k Kind) IsKnown() bool {
	switch k {
	case KindReset, KindRequired, KindEmail, KindNumeric, KindDate:
		return true
	}
	return false
}

func (k Kind) String() string {
	return string(k)
}
