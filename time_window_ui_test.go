package main

import (
	"strings"
	"testing"

	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestLayoutPoint(t *testing.T) {
	dz := datazoom.Default()

	top := layoutPoint(dz, 0, 0)
	require.InDelta(t, 4, top.X, 0)
	require.InDelta(t, 47.5, top.Y, 0)

	handles := layoutPoint(dz, 3, 1)
	require.InDelta(t, 28, handles.X, 0)
	require.InDelta(t, 22.5, handles.Y, 0)

	startX, width := sliderGeometry(10)
	require.True(t, dz.ContainsPoint(top, startX, width))
	require.True(t, dz.ContainsPoint(handles, startX, width))
	require.False(t, dz.ContainsPoint(layoutPoint(dz, 3, -1), startX, width))
	require.False(t, dz.ContainsPoint(layoutPoint(dz, 3, 2), startX, width))
}

func TestHandleColumns(t *testing.T) {
	dz := datazoom.Default()
	startCol, endCol := handleColumns(dz, 10)
	require.Equal(t, 3, startCol)
	require.Equal(t, 6, endCol)

	dz.SetWindow(0, 100)
	startCol, endCol = handleColumns(dz, 10)
	require.Equal(t, 0, startCol)
	require.Equal(t, 9, endCol)

	dz.SetWindow(50, 50)
	startCol, endCol = handleColumns(dz, 10)
	require.Equal(t, 5, startCol)
	require.Equal(t, 5, endCol)

	startCol, endCol = handleColumns(dz, 0)
	require.Zero(t, startCol)
	require.Zero(t, endCol)
}

func TestSliderView(t *testing.T) {
	s := sampleSeries(t)
	dz := datazoom.Default()

	lines := strings.Split(ansi.Strip(sliderView(dz, s, 10)), "\n")
	require.Len(t, lines, sliderRows)
	require.Equal(t, "───[━━]───", lines[1])

	shadow := []rune(lines[0])
	require.Len(t, shadow, 10)
	require.Equal(t, '▁', shadow[0])
	require.Equal(t, '█', shadow[9])

	dz.ShowDataShadow = false
	lines = strings.Split(ansi.Strip(sliderView(dz, s, 10)), "\n")
	require.Empty(t, strings.TrimSpace(lines[0]))

	dz.SetWindow(50, 50)
	lines = strings.Split(ansi.Strip(sliderView(dz, s, 10)), "\n")
	require.Equal(t, "─────|────", lines[1])

	require.Empty(t, sliderView(dz, s, 0))
}

func TestShadowLineSkipsMissingValues(t *testing.T) {
	s, err := newSeries([][]string{{"v"}, {"1"}, {""}, {"1"}}, "", "v")
	require.NoError(t, err)

	line := shadowLine(s, 3)
	require.Equal(t, '█', line[0])
	require.Equal(t, ' ', line[1])
	require.Equal(t, '█', line[2])
}

func TestLabelLine(t *testing.T) {
	require.Equal(t, "    ab      cd", labelLine(20, 5, 12, "ab", "cd"))
	// the end label is pushed past the start label
	require.Equal(t, "   abc de", labelLine(20, 5, 6, "abc", "de"))
	require.Equal(t, "   xy", labelLine(10, 0, 3, "", "xy"))
	// and pulled back inside the right edge
	require.Equal(t, "  a   long", labelLine(10, 2, 9, "a", "long"))
	require.Empty(t, labelLine(0, 0, 0, "a", "b"))
	require.Equal(t, "ab", labelLine(10, 0, 5, "ab", ""))
}

func TestTermLabel(t *testing.T) {
	var missing *termLabel
	require.Empty(t, missing.visibleText())

	l := &termLabel{}
	l.SetText("00:03")
	require.Empty(t, l.visibleText())
	l.SetActive(true)
	require.True(t, l.Active())
	require.Equal(t, "00:03", l.visibleText())
}
