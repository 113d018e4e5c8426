package main

import (
	"math"
	"strings"

	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/charmbracelet/lipgloss"
)

const (
	// sliderRows is the number of terminal lines the slider occupies: the
	// data shadow line and the handle line.
	sliderRows = 2
	// cellPixelWidth converts terminal columns into the control's pixel
	// space so the handle grab zone stays about one cell wide.
	cellPixelWidth = 8
	panStepMin     = 0.5
	panStepMax     = 25.0
)

var shadowLevels = []rune("▁▂▃▄▅▆▇█")

// sliderGeometry returns the control's layout for a slider width in cells.
func sliderGeometry(cols int) (startX, width float64) {
	return 0, float64(cols * cellPixelWidth)
}

// layoutPoint converts a mouse cell, relative to the slider's top-left
// corner, into the control's layout space. Rows count down from the top of
// the slider, layout Y counts up from Bottom.
func layoutPoint(dz *datazoom.DataZoom, col, row int) datazoom.Point {
	x := (float64(col) + 0.5) * cellPixelWidth
	y := dz.Bottom + (float64(sliderRows-row)-0.5)/sliderRows*dz.Height
	return datazoom.Pt(x, y)
}

// handleColumns are the columns the start and end handles are drawn in.
func handleColumns(dz *datazoom.DataZoom, cols int) (int, int) {
	if cols <= 0 {
		return 0, 0
	}
	startX, width := sliderGeometry(cols)
	selStart, selEnd := dz.SelectionSpan(startX, width)
	startCol := int(math.Floor(selStart / cellPixelWidth))
	endCol := int(math.Ceil(selEnd/cellPixelWidth)) - 1
	startCol = min(max(startCol, 0), cols-1)
	endCol = min(max(endCol, startCol), cols-1)
	return startCol, endCol
}

// shadowLine is a sparkline of the series squeezed into cols buckets.
func shadowLine(s *series, cols int) []rune {
	line := []rune(strings.Repeat(" ", max(cols, 0)))
	n := s.len()
	if n == 0 || cols <= 0 {
		return line
	}

	sums := make([]float64, cols)
	counts := make([]int, cols)
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := 0; i < n; i++ {
		if !s.hasValue[i] {
			continue
		}
		bucket := min(i*cols/n, cols-1)
		sums[bucket] += s.values[i]
		counts[bucket]++
	}
	for c := range sums {
		if counts[c] == 0 {
			continue
		}
		mean := sums[c] / float64(counts[c])
		sums[c] = mean
		lo = math.Min(lo, mean)
		hi = math.Max(hi, mean)
	}

	for c := range line {
		if counts[c] == 0 {
			continue
		}
		level := len(shadowLevels) - 1
		if hi > lo {
			level = int((sums[c] - lo) / (hi - lo) * float64(len(shadowLevels)-1))
		}
		line[c] = shadowLevels[level]
	}
	return line
}

// sliderView renders the slider: the data shadow (or an empty band) above a
// handle line with the selection tinted in the control's background colour.
func sliderView(dz *datazoom.DataZoom, s *series, cols int) string {
	if cols <= 0 {
		return ""
	}
	startCol, endCol := handleColumns(dz, cols)
	selected := lipgloss.NewStyle().Background(lipgloss.Color(dz.BackgroundColor.Hex()))

	var top []rune
	if dz.ShowDataShadow {
		top = shadowLine(s, cols)
	} else {
		top = []rune(strings.Repeat(" ", cols))
	}

	bottom := make([]rune, cols)
	for c := range bottom {
		switch {
		case c == startCol:
			bottom[c] = '['
		case c == endCol:
			bottom[c] = ']'
		case c > startCol && c < endCol:
			bottom[c] = '━'
		default:
			bottom[c] = '─'
		}
	}
	if startCol == endCol {
		bottom[startCol] = '|'
	}

	render := func(line []rune) string {
		var b strings.Builder
		b.WriteString(sliderTrackStyle.Render(string(line[:startCol])))
		b.WriteString(selected.Render(string(line[startCol : endCol+1])))
		b.WriteString(sliderTrackStyle.Render(string(line[endCol+1:])))
		return b.String()
	}

	return render(top) + "\n" + render(bottom)
}
