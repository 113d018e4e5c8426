package datazoom

import "math"

// MinSpan is the narrowest window, in percent, that Zoom will produce.
const MinSpan = 1

// Window returns a snapshot of the current bounds.
func (dz *DataZoom) Window() (float64, float64) {
	return dz.Start, dz.End
}

// Span is the window width in percent. It is negative for an inverted window.
func (dz *DataZoom) Span() float64 {
	return dz.End - dz.Start
}

// SetWindow clamps both bounds to [0,100] and swaps them when inverted.
func (dz *DataZoom) SetWindow(start, end float64) {
	dz.setWindow(start, end)
	dz.changed()
}

func (dz *DataZoom) setWindow(start, end float64) {
	start, end = clampPercent(start), clampPercent(end)
	if start > end {
		start, end = end, start
	}
	dz.Start, dz.End = start, end
}

// Reset restores the stock 30-70 window.
func (dz *DataZoom) Reset() {
	dz.SetWindow(DefaultStart, DefaultEnd)
}

// Pan moves the window by delta percent without changing its size. The
// window stops at either end of the axis.
func (dz *DataZoom) Pan(delta float64) {
	dz.setWindow(dz.Start, dz.End)
	dz.panFrom(dz.Start, dz.End, delta)
	dz.changed()
}

func (dz *DataZoom) panFrom(start, end, delta float64) {
	span := end - start
	if span >= 100 {
		dz.Start, dz.End = 0, 100
		return
	}
	next := start + delta
	if next < 0 {
		next = 0
	}
	if next+span > 100 {
		next = 100 - span
	}
	dz.Start, dz.End = next, next+span
}

// MoveStart puts the start edge at v without letting it pass the end edge.
// With ZoomLock the whole window follows instead.
func (dz *DataZoom) MoveStart(v float64) {
	dz.moveStartFrom(dz.Start, dz.End, v)
	dz.changed()
}

func (dz *DataZoom) moveStartFrom(start, end, v float64) {
	dz.setWindow(start, end)
	if dz.ZoomLock {
		dz.panFrom(dz.Start, dz.End, v-dz.Start)
		return
	}
	v = clampPercent(v)
	if v > dz.End {
		v = dz.End
	}
	dz.Start = v
}

// MoveEnd is the mirror of MoveStart.
func (dz *DataZoom) MoveEnd(v float64) {
	dz.moveEndFrom(dz.Start, dz.End, v)
	dz.changed()
}

func (dz *DataZoom) moveEndFrom(start, end, v float64) {
	dz.setWindow(start, end)
	if dz.ZoomLock {
		dz.panFrom(dz.Start, dz.End, v-dz.End)
		return
	}
	v = clampPercent(v)
	if v < dz.Start {
		v = dz.Start
	}
	dz.End = v
}

// Zoom scales the window around anchor, a position in percent. Positive
// steps zoom in. Each step changes the span by ScrollSensitivity percent.
// A locked window does not zoom.
func (dz *DataZoom) Zoom(steps, anchor float64) {
	if dz.ZoomLock || steps == 0 {
		return
	}
	dz.setWindow(dz.Start, dz.End)

	sensitivity := math.Max(MinScrollSensitivity, math.Min(MaxScrollSensitivity, dz.ScrollSensitivity))
	span := dz.End - dz.Start
	nextSpan := span * math.Pow(1-sensitivity/100, steps)
	nextSpan = math.Max(MinSpan, math.Min(100, nextSpan))

	anchor = clampPercent(anchor)
	ratio := 0.5
	if span > 0 {
		ratio = math.Max(0, math.Min(1, (anchor-dz.Start)/span))
	}

	start := anchor - ratio*nextSpan
	end := start + nextSpan
	if start < 0 {
		end -= start
		start = 0
	}
	if end > 100 {
		start -= end - 100
		end = 100
	}
	dz.Start, dz.End = math.Max(0, start), end
	dz.changed()
}

// changed syncs the labels and reports the window, unless a drag is running
// with Realtime off, in which case the report waits for EndDrag.
func (dz *DataZoom) changed() {
	dz.syncLabelText()
	if dz.IsDragging && !dz.Realtime {
		dz.drag.pending = true
		return
	}
	if dz.OnChange != nil {
		dz.OnChange(dz.Start, dz.End)
	}
}

func clampPercent(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
