package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidate/pkg/form"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input string
		want  form.Kind
	}{
		{"reset", form.KindReset},
		{"isreq", form.KindRequired},
		{"required", form.KindRequired},
		{"ismail", form.KindEmail},
		{" Email ", form.KindEmail},
		{"isnum", form.KindNumeric},
		{"number", form.KindNumeric},
		{"NUMERIC", form.KindNumeric},
		{"isdate", form.KindDate},
		{"date", form.KindDate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := form.ParseKind(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := form.ParseKind("isphone")
		assert.ErrorIs(t, err, form.ErrUnknownKind)
		assert.Contains(t, err.Error(), `"isphone"`)
	})
}

func TestKind_IsKnown(t *testing.T) {
	for _, k := range form.Kinds() {
		assert.True(t, k.IsKnown(), k.String())
	}
	assert.False(t, form.Kind("").IsKnown())
	assert.False(t, form.Kind("required").IsKnown())
}
