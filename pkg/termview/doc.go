// Package termview prints validation reports to a terminal with lipgloss.
//
// Each field is drawn in a rounded box whose border takes the color the
// validator gave the field, followed by the alert messages as plain text and
// the overall verdict.
package termview
