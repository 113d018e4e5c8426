package datazoom_test

import (
	"math"
	"testing"

	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireWindow(t *testing.T, dz *datazoom.DataZoom, start, end float64) {
	t.Helper()
	require.InDelta(t, start, dz.Start, 1e-9, "start")
	require.InDelta(t, end, dz.End, 1e-9, "end")
}

func TestSetWindowNormalizes(t *testing.T) {
	dz := datazoom.Default()

	dz.SetWindow(70, 30)
	requireWindow(t, dz, 30, 70)

	dz.SetWindow(-10, 140)
	requireWindow(t, dz, 0, 100)

	dz.SetWindow(math.NaN(), 20)
	requireWindow(t, dz, 0, 20)
	require.NoError(t, dz.Validate())
}

func TestPan(t *testing.T) {
	dz := datazoom.Default()

	dz.Pan(10)
	requireWindow(t, dz, 40, 80)

	dz.Pan(50)
	requireWindow(t, dz, 60, 100)

	dz.Pan(-90)
	requireWindow(t, dz, 0, 40)

	dz.SetWindow(0, 100)
	dz.Pan(5)
	requireWindow(t, dz, 0, 100)
}

func TestMoveEdges(t *testing.T) {
	dz := datazoom.Default()

	dz.MoveStart(10)
	requireWindow(t, dz, 10, 70)

	dz.MoveStart(90)
	requireWindow(t, dz, 70, 70)

	dz.MoveEnd(120)
	requireWindow(t, dz, 70, 100)

	dz.MoveEnd(20)
	requireWindow(t, dz, 70, 70)
}

func TestZoomLockTranslates(t *testing.T) {
	dz := datazoom.Default()
	dz.ZoomLock = true

	dz.MoveStart(40)
	requireWindow(t, dz, 40, 80)

	dz.MoveEnd(100)
	requireWindow(t, dz, 60, 100)

	dz.MoveStart(-30)
	requireWindow(t, dz, 0, 40)

	dz.Zoom(3, 20)
	requireWindow(t, dz, 0, 40)
}

func TestZoom(t *testing.T) {
	dz := datazoom.Default()
	dz.SetWindow(20, 60)

	// Sensitivity 10: one step in keeps 90% of the span around the anchor.
	dz.Zoom(1, 40)
	requireWindow(t, dz, 22, 58)

	dz.Zoom(-1, 40)
	requireWindow(t, dz, 20, 60)

	dz.Zoom(-100, 40)
	requireWindow(t, dz, 0, 100)

	dz.Zoom(1000, 50)
	assert.InDelta(t, datazoom.MinSpan, dz.Span(), 1e-9)
	assert.InDelta(t, 50, (dz.Start+dz.End)/2, 1e-9)
}

func TestZoomSensitivityClamped(t *testing.T) {
	dz := datazoom.Default()
	dz.SetWindow(0, 100)
	dz.ScrollSensitivity = 80

	dz.Zoom(1, 0)
	// Clamped to 20.
	requireWindow(t, dz, 0, 80)
}

func TestZoomKeepsWindowOnAxis(t *testing.T) {
	dz := datazoom.Default()
	dz.SetWindow(80, 100)
	dz.Zoom(-2, 100)
	assert.InDelta(t, 100, dz.End, 1e-9)
	assert.GreaterOrEqual(t, dz.Start, 0.0)
	assert.Greater(t, dz.Span(), 20.0)
}

func TestOnChange(t *testing.T) {
	dz := datazoom.Default()
	var got [][2]float64
	dz.OnChange = func(start, end float64) {
		got = append(got, [2]float64{start, end})
	}

	dz.Pan(10)
	dz.Reset()
	require.Equal(t, [][2]float64{{40, 80}, {30, 70}}, got)
}

func TestIndexRange(t *testing.T) {
	dz := datazoom.Default()

	lo, hi := dz.IndexRange(10)
	require.Equal(t, 3, lo)
	require.Equal(t, 7, hi)

	dz.SetWindow(0, 100)
	lo, hi = dz.IndexRange(10)
	require.Equal(t, 0, lo)
	require.Equal(t, 10, hi)

	lo, hi = dz.IndexRange(0)
	require.Equal(t, 0, lo)
	require.Equal(t, 0, hi)

	dz.Start, dz.End = 75, 25
	lo, hi = dz.IndexRange(4)
	require.Equal(t, 1, lo)
	require.Equal(t, 3, hi)
	require.True(t, dz.InWindow(2, 4))
	require.False(t, dz.InWindow(3, 4))
}

func TestApply(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	dz := datazoom.Default()

	dz.FilterMode = datazoom.None
	require.Equal(t, values, dz.Apply(values))

	dz.FilterMode = datazoom.Filter
	require.Equal(t, []float64{4, 5, 6, 7}, dz.Apply(values))

	dz.FilterMode = datazoom.WeakFilter
	require.Equal(t, []float64{4, 5, 6, 7}, dz.Apply(values))

	dz.FilterMode = datazoom.Empty
	out := dz.Apply(values)
	require.Len(t, out, len(values))
	for i, v := range out {
		if i >= 3 && i < 7 {
			require.InDelta(t, values[i], v, 0)
			continue
		}
		require.True(t, math.IsNaN(v), "index %d", i)
	}
	require.InDelta(t, 1, values[0], 0)
}
