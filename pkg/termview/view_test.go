package termview_test

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formvalidate/pkg/termview"
)

func TestReport_Messages(t *testing.T) {
	r := termview.Report{Alert: "Field <strong>name</strong> is required.<br/>Field <strong>age</strong> needs to be a number.<br/>"}
	assert.Equal(t, []string{
		"Field name is required.",
		"Field age needs to be a number.",
	}, r.Messages())
	assert.Empty(t, termview.Report{}.Messages())
}

func TestView_Render(t *testing.T) {
	var buf bytes.Buffer
	v := termview.New(&buf, termview.WithWidth(30))

	out := v.Render(termview.Report{
		Title: "signup.html",
		Fields: []termview.Field{
			{Name: "name", Value: "", Border: "#f00", Invalid: true},
			{Name: "age", Value: "42", Border: "#999"},
			{Value: "x"},
		},
		Alert: "Field <strong>name</strong> is required.<br/>",
	})

	assert.Contains(t, out, "signup.html")
	assert.Contains(t, out, "✗ name")
	assert.Contains(t, out, "✓ age")
	assert.Contains(t, out, `"42"`)
	assert.Contains(t, out, "(unnamed)")
	assert.Contains(t, out, "• Field name is required.")
	assert.Contains(t, out, "✗ invalid")
	assert.Contains(t, out, "3 field(s) checked")
	assert.Contains(t, out, "╭")
	assert.NotContains(t, out, "<strong>")
}

func TestView_Write(t *testing.T) {
	var buf bytes.Buffer
	v := termview.New(&buf)

	require.NoError(t, v.Write(termview.Report{Valid: true}))
	assert.Contains(t, buf.String(), "✓ valid")
	assert.Contains(t, buf.String(), "0 field(s) checked")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestView_AlertColor(t *testing.T) {
	report := termview.Report{
		Alert:      "Field <strong>name</strong> is required.<br/>",
		AlertColor: "#c00",
	}

	var buf bytes.Buffer
	out := termview.New(&buf, termview.WithColorProfile(termenv.TrueColor)).Render(report)
	assert.Contains(t, out, "38;2;204;0;0")
	assert.NotContains(t, out, "38;2;255;0;0")

	report.AlertColor = ""
	out = termview.New(&buf, termview.WithColorProfile(termenv.TrueColor)).Render(report)
	assert.Contains(t, out, "38;2;255;0;0")
}
