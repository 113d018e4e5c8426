package datazoom

import "math"

// IndexRange maps the window onto n evenly spaced data points and returns the
// half-open index range [lo, hi) it covers.
func (dz *DataZoom) IndexRange(n int) (int, int) {
	return IndexRange(dz.Start, dz.End, n)
}

// IndexRange is the window-independent form of DataZoom.IndexRange, for
// callers that hold on to a window snapshot.
func IndexRange(start, end float64, n int) (int, int) {
	if n <= 0 {
		return 0, 0
	}
	start, end = clampPercent(start), clampPercent(end)
	if start > end {
		start, end = end, start
	}
	lo := int(math.Floor(float64(n) * start / 100))
	hi := int(math.Ceil(float64(n) * end / 100))
	lo = min(max(lo, 0), n)
	hi = min(max(hi, lo), n)
	return lo, hi
}

// InWindow reports whether point i of n falls inside the window.
func (dz *DataZoom) InWindow(i, n int) bool {
	lo, hi := dz.IndexRange(n)
	return i >= lo && i < hi
}

// Apply returns what an axis should plot from values under FilterMode.
// Values hold one dimension, so Filter and WeakFilter give the same result.
// The input is never modified.
func (dz *DataZoom) Apply(values []float64) []float64 {
	lo, hi := dz.IndexRange(len(values))
	switch dz.FilterMode {
	case Filter, WeakFilter:
		return values[lo:hi:hi]
	case Empty:
		out := make([]float64, len(values))
		for i, v := range values {
			if i < lo || i >= hi {
				v = math.NaN()
			}
			out[i] = v
		}
		return out
	default:
		return values
	}
}
