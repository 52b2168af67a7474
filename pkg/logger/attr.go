package logger

import (
	"log/slog"
	"strconv"
)

// Attribute helpers return an empty Attr for missing values, so calls like
// log.Debug("msg", logger.Error(err)) need no nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component names the part of the program emitting the record.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Field names the form field a record is about.
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Kind is the validation rule kind.
func Kind(kind string) slog.Attr {
	if kind == "" {
		return slog.Attr{}
	}
	return slog.String("kind", kind)
}

// Selector is a CSS selector used to pick elements.
func Selector(sel string) slog.Attr {
	if sel == "" {
		return slog.Attr{}
	}
	return slog.String("selector", sel)
}

// Count is a number of processed items.
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Valid records a validation verdict.
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}
