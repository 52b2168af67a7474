package plan_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidate/internal/plan"
	"github.com/dmitrymomot/formvalidate/pkg/form"
)

const samplePlan = `
steps:
  - select: "#signup"
    type: reset
  - select: "[name=name], [name=email]"
  - select: "[name=email]"
    type: email
    alert_color: "#c00"
    email_message: "Bad {ismail}"
`

func TestLoad(t *testing.T) {
	p, err := plan.Load(t.Context(), strings.NewReader(samplePlan))
	require.NoError(t, err)
	require.Len(t, p.Steps, 3)

	assert.Equal(t, "#signup", p.Steps[0].Select)
	require.NotNil(t, p.Steps[0].Kind)
	assert.Equal(t, form.KindReset, *p.Steps[0].Kind)

	assert.Nil(t, p.Steps[1].Kind)
	assert.Nil(t, p.Steps[1].AlertColor)

	require.NotNil(t, p.Steps[2].AlertColor)
	assert.Equal(t, "#c00", *p.Steps[2].AlertColor)
	require.NotNil(t, p.Steps[2].EmailMessage)
	assert.Equal(t, "Bad {ismail}", *p.Steps[2].EmailMessage)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"empty document", "", plan.ErrEmptyPlan},
		{"no steps", "steps: []", plan.ErrEmptyPlan},
		{"missing selector", "steps:\n  - type: isreq\n", plan.ErrInvalidStep},
		{"unknown key", "steps:\n  - select: a\n    colour: red\n", plan.ErrDecodePlan},
		{"malformed", "steps: [", plan.ErrDecodePlan},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := plan.Load(t.Context(), strings.NewReader(tt.input))
			assert.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("read error", func(t *testing.T) {
		_, err := plan.Load(t.Context(), iotest.ErrReader(errors.New("boom")))
		assert.ErrorIs(t, err, plan.ErrReadPlan)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		_, err := plan.Load(ctx, strings.NewReader(samplePlan))
		assert.ErrorIs(t, err, plan.ErrReadPlan)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(samplePlan), 0o600))

	p, err := plan.LoadFile(t.Context(), path)
	require.NoError(t, err)
	assert.Len(t, p.Steps, 3)

	_, err = plan.LoadFile(t.Context(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, plan.ErrReadPlan)
}
