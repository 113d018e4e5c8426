package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/andareed/siftly-datazoom/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	minColumnWidth = 6
	missingCell    = "-"
)

func (m *model) gutterWidth() int {
	return len(fmt.Sprintf("%d", m.data.len())) + 1
}

// columnWidths shares the viewport width evenly between the CSV columns.
func (m *model) columnWidths() []int {
	cols := len(m.data.header)
	widths := make([]int, cols)
	if cols == 0 {
		return widths
	}
	avail := max(0, m.viewport.Width-m.gutterWidth())
	each := max(minColumnWidth, avail/cols)
	for i := range widths {
		widths[i] = each
	}
	return widths
}

func fitCell(text string, width int) string {
	text = truncate.StringWithTail(text, uint(width), "…")
	if pad := width - ansi.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	return text
}

func (m *model) headerView() string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", m.gutterWidth()))
	for i, w := range m.columnWidths() {
		name := cleanColumnName(m.data.header[i])
		if i == m.data.valueColumn {
			name = "*" + name
		}
		b.WriteString(cellStyle.Render(fitCell(name, max(0, w-2))))
	}
	return headerStyle.Render(ansi.Truncate(b.String(), m.viewport.Width+2, ""))
}

// renderTable lays out the rows the applied window selects. Filter modes that
// drop rows show only the window, Empty blanks the plotted column outside it
// and None keeps every row but dims the ones outside.
func (m *model) renderTable() string {
	logging.Debug("renderTable called")
	s := m.data
	lo, hi := s.windowRows(m.ui.appliedStart, m.ui.appliedEnd)
	from, to := 0, s.len()
	switch m.zoom.FilterMode {
	case datazoom.Filter, datazoom.WeakFilter:
		from, to = lo, hi
	}

	widths := m.columnWidths()
	gutter := m.gutterWidth()
	var b strings.Builder
	for i := from; i < to; i++ {
		inside := i >= lo && i < hi
		b.WriteString(m.renderRow(i, inside, gutter, widths))
		if i < to-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *model) renderRow(i int, inside bool, gutter int, widths []int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%*d ", gutter-1, i+1))
	for c, w := range widths {
		text := m.data.cell(i, c)
		if !inside && c == m.data.valueColumn && m.zoom.FilterMode == datazoom.Empty {
			text = missingCell
		}
		b.WriteString(" " + fitCell(text, max(0, w-2)) + " ")
	}
	style := rowTextStyle
	if !inside {
		style = rowOutsideStyle
	}
	return style.Render(b.String())
}

func (m *model) sliderLabelView(width int) string {
	startCol, endCol := handleColumns(m.zoom, width)
	line := labelLine(width, startCol, endCol, m.startLabel.visibleText(), m.endLabel.visibleText())
	return labelStyle.Render(line)
}

// footerView renders the status line and the key legend.
func (m *model) footerView(width int) string {
	status := noticeText(m.ui.noticeMsg, m.ui.noticeType)
	if status == "" {
		status = m.data.windowStatusLabel(m.ui.appliedStart, m.ui.appliedEnd)
	}

	badges := []string{fmt.Sprintf("step %.1f%%", m.ui.panStep), m.zoom.FilterMode.String()}
	if m.zoom.IsDragging {
		badges = append(badges, "drag "+m.zoom.DragTarget().String())
	}
	right := strings.Join(badges, " · ")
	if m.zoom.ZoomLock {
		right = lockBadge + " " + right
	}

	name := filepath.Base(m.InitialPath)
	left := ansi.Truncate(fmt.Sprintf(" %s  %s ", name, status), max(0, width-lipgloss.Width(right)-1), "…")
	gap := max(0, width-lipgloss.Width(left)-lipgloss.Width(right))
	statusLine := statusStyle.Render(left + strings.Repeat(" ", gap) + right)

	legend := "(? help · ←/→ pan · shift+←/→ extend · +/- zoom · z lock · r reset · y copy · x export · q quit)"
	if logging.IsDebugMode() {
		legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d slider=%d@%d,%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.ui.sliderCols, m.ui.sliderOriginX, m.ui.sliderOriginY)
	}
	return statusLine + "\n" + legendStyle.Render(ansi.Truncate(legend, width, "…"))
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return lipgloss.Place(
			m.terminalWidth, m.terminalHeight,
			lipgloss.Center, lipgloss.Center,
			m.activeDialog.View(),
			lipgloss.WithWhitespaceChars(" "),
			lipgloss.WithWhitespaceBackground(lipgloss.Color("236")),
		)
	}

	bordered := m.zones.Mark(m.tableID, tableStyle.Render(m.viewport.View()))
	contentW := lipgloss.Width(bordered)

	parts := []string{m.headerView(), bordered}
	if m.sliderVisible() {
		parts = append(parts,
			m.sliderLabelView(contentW),
			m.zones.Mark(m.sliderID, sliderView(m.zoom, m.data, contentW)),
		)
	}
	parts = append(parts, m.footerView(contentW))
	return m.zones.Scan(appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)))
}
