// SPDX-License-Identifier: MIT
// Package: topolab/menu
//
// styles.go - lipgloss styles bound to the session's output.

package menu

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorTeal    = lipgloss.Color("#20B9B4")
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#2C4A54")
)

type styles struct {
	title   lipgloss.Style
	heading lipgloss.Style
	prompt  lipgloss.Style
	ok      lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

// newStyles builds styles on a renderer for out, so colour is only emitted
// when out is a terminal.
func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		title:   r.NewStyle().Bold(true).Foreground(colorTeal),
		heading: r.NewStyle().Bold(true),
		prompt:  r.NewStyle().Foreground(colorTeal),
		ok:      r.NewStyle().Foreground(colorSuccess),
		warn:    r.NewStyle().Foreground(colorWarning),
		err:     r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}
