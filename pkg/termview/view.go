package termview

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/dmitrymomot/formvalidate/pkg/sanitizer"
)

const (
	iconValid   = "✓"
	iconInvalid = "✗"
)

const (
	DefaultAlertColor = "#f00"
	validColor        = "#0a0"
)

// Field is one checked form field as it ended up on the page.
type Field struct {
	Name  string
	Value string
	// Border is the field's border color after validation.
	Border  string
	Invalid bool
}

// Report is the outcome of validating a page.
type Report struct {
	Title  string
	Fields []Field
	// Alert is the alert box content as markup.
	Alert string
	// AlertColor colors the messages and a failed verdict. Defaults to
	// DefaultAlertColor.
	AlertColor string
	Valid      bool
}

// Messages returns the alert box messages as plain text, one per line.
func (r Report) Messages() []string {
	return sanitizer.Lines(r.Alert)
}

// View renders reports for a terminal. Colors are only emitted when the
// output supports them.
type View struct {
	out      io.Writer
	renderer *lipgloss.Renderer
	width    int
}

// Option configures a View.
type Option func(*View)

// WithWidth sets the width of field boxes. Values below 20 are ignored.
func WithWidth(width int) Option {
	return func(v *View) {
		if width >= 20 {
			v.width = width
		}
	}
}

// WithColorProfile overrides the color profile detected from the output.
func WithColorProfile(p termenv.Profile) Option {
	return func(v *View) {
		v.renderer.SetColorProfile(p)
	}
}

// New creates a view writing to out.
func New(out io.Writer, opts ...Option) *View {
	v := &View{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		width:    48,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Render returns the report as a string.
func (v *View) Render(r Report) string {
	titleStyle := v.renderer.NewStyle().Bold(true)
	mutedStyle := v.renderer.NewStyle().Faint(true)

	blocks := make([]string, 0, len(r.Fields)+3)
	if r.Title != "" {
		blocks = append(blocks, titleStyle.Render(r.Title))
	}
	for _, f := range r.Fields {
		blocks = append(blocks, v.field(f))
	}

	alertColor := lipgloss.Color(r.AlertColor)
	if r.AlertColor == "" {
		alertColor = lipgloss.Color(DefaultAlertColor)
	}

	if msgs := r.Messages(); len(msgs) > 0 {
		alertStyle := v.renderer.NewStyle().Foreground(alertColor)
		lines := make([]string, len(msgs))
		for i, m := range msgs {
			lines[i] = alertStyle.Render("• " + m)
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	verdict := v.renderer.NewStyle().Bold(true).Foreground(lipgloss.Color(validColor)).Render(iconValid + " valid")
	if !r.Valid {
		verdict = v.renderer.NewStyle().Bold(true).Foreground(alertColor).Render(iconInvalid + " invalid")
	}
	blocks = append(blocks, verdict, mutedStyle.Render(fmt.Sprintf("%d field(s) checked", len(r.Fields))))

	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func (v *View) field(f Field) string {
	name := f.Name
	if name == "" {
		name = "(unnamed)"
	}
	icon := iconValid
	if f.Invalid {
		icon = iconInvalid
	}

	box := v.renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(v.width)
	if f.Border != "" {
		box = box.BorderForeground(lipgloss.Color(f.Border))
	}

	label := v.renderer.NewStyle().Bold(true).Render(icon + " " + name)
	value := v.renderer.NewStyle().Faint(true).Render(fmt.Sprintf("%q", f.Value))

	return box.Render(lipgloss.JoinVertical(lipgloss.Left, label, value))
}

// Write renders the report followed by a newline.
func (v *View) Write(r Report) error {
	_, err := fmt.Fprintln(v.out, v.Render(r))
	return err
}
