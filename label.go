package main

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// termLabel is a handle label drawn on the line above the slider.
type termLabel struct {
	active bool
	text   string
}

func (l *termLabel) Active() bool          { return l.active }
func (l *termLabel) SetActive(active bool) { l.active = active }
func (l *termLabel) SetText(text string)   { l.text = text }

func (l *termLabel) visibleText() string {
	if l == nil || !l.active {
		return ""
	}
	return l.text
}

// labelLine places the start label so it ends on the start handle column and
// the end label so it begins on the end handle column, pushing the end label
// right when the two would overlap.
func labelLine(width, startCol, endCol int, startText, endText string) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder

	pos := 0
	if startText != "" {
		sw := ansi.StringWidth(startText)
		left := max(0, startCol+1-sw)
		b.WriteString(strings.Repeat(" ", left))
		b.WriteString(startText)
		pos = left + sw
	}

	if endText != "" {
		ew := ansi.StringWidth(endText)
		gap := 0
		if pos > 0 {
			gap = pos + 1
		}
		at := max(endCol, gap)
		if at+ew > width {
			at = max(width-ew, gap, 0)
		}
		b.WriteString(strings.Repeat(" ", at-pos))
		b.WriteString(endText)
	}

	return ansi.Truncate(b.String(), width, "…")
}
