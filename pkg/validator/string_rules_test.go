package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formvalidate/pkg/validator"
)

func TestRequired(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{"empty string fails", "", false},
		{"spaces only fail", "   ", false},
		{"tabs and newlines fail", "\t\r\n", false},
		{"non-breaking space fails", "\u00A0", false},
		{"padded value passes", " x ", true},
		{"plain value passes", "Jane", true},
		{"zero passes", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.IsFilled(tt.value))

			rule := validator.Required("name", tt.value)
			assert.Equal(t, tt.want, rule.Check())
			assert.Equal(t, "name", rule.Error.Field)
			assert.Equal(t, "field is required", rule.Error.Message)
		})
	}
}
