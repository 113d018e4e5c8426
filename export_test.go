package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func TestRenderChart(t *testing.T) {
	s := sampleSeries(t)
	plain, err := newSeries([][]string{{"v"}, {"1"}, {"4"}, {"2"}, {"8"}}, "", "v")
	require.NoError(t, err)

	for _, mode := range []datazoom.FilterMode{datazoom.Filter, datazoom.WeakFilter, datazoom.Empty, datazoom.None} {
		t.Run(mode.String(), func(t *testing.T) {
			dz := datazoom.Default()
			dz.FilterMode = mode

			var timed bytes.Buffer
			require.NoError(t, renderChart(&timed, s, dz))
			require.True(t, bytes.HasPrefix(timed.Bytes(), pngMagic))

			dz.SetWindow(0, 100)
			var rows bytes.Buffer
			require.NoError(t, renderChart(&rows, plain, dz))
			require.True(t, bytes.HasPrefix(rows.Bytes(), pngMagic))
		})
	}
}

func TestRenderChartNeedsTwoPoints(t *testing.T) {
	s := sampleSeries(t)
	dz := datazoom.Default()
	dz.FilterMode = datazoom.Filter
	dz.SetWindow(0, 5)

	var buf bytes.Buffer
	require.ErrorIs(t, renderChart(&buf, s, dz), errTooFewPoints)

	dz.FilterMode = datazoom.Empty
	require.ErrorIs(t, renderChart(&buf, s, dz), errTooFewPoints)
}

func TestExportChartFile(t *testing.T) {
	s := sampleSeries(t)
	dz := datazoom.Default()
	dir := t.TempDir()

	out := filepath.Join(dir, "cpu.png")
	require.NoError(t, exportChartFile(out, s, dz))
	body, err := os.ReadFile(out)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(body, pngMagic))

	dz.FilterMode = datazoom.Filter
	dz.SetWindow(0, 1)
	failed := filepath.Join(dir, "empty.png")
	require.ErrorIs(t, exportChartFile(failed, s, dz), errTooFewPoints)
	require.NoFileExists(t, failed)
}

func TestDefaultExportName(t *testing.T) {
	require.Equal(t, "metrics-window.png", defaultExportName("/tmp/metrics.csv"))
	require.Equal(t, "datazoom-window.png", defaultExportName(""))
	require.Equal(t, "/tmp", exportDir("/tmp/metrics.csv"))
}
