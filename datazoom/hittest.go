package datazoom

import "math"

// HandleTolerance is the half width, in pixels, of the grab zone around each
// window edge. It does not scale with the control.
const HandleTolerance = 10

// Hit names the part of the control a pointer is over.
type Hit int

const (
	HitNone Hit = iota
	HitControl
	HitSelection
	HitStartHandle
	HitEndHandle
)

func (h Hit) String() string {
	switch h {
	case HitControl:
		return "control"
	case HitSelection:
		return "selection"
	case HitStartHandle:
		return "start"
	case HitEndHandle:
		return "end"
	default:
		return "none"
	}
}

// SelectionSpan returns the pixel positions of the window edges for a control
// laid out from startX over width.
func (dz *DataZoom) SelectionSpan(startX, width float64) (float64, float64) {
	return startX + width*dz.Start/100, startX + width*dz.End/100
}

func (dz *DataZoom) band(xMin, xMax float64) Rect {
	return RectFromMinMax(xMin, dz.Bottom, xMax, dz.Bottom+dz.Height)
}

// ContainsPoint reports whether pos is anywhere over the control.
func (dz *DataZoom) ContainsPoint(pos Point, startX, width float64) bool {
	return dz.band(startX, startX+width).Contains(pos)
}

// ContainsSelection reports whether pos is over the selected window. An
// inverted window selects nothing.
func (dz *DataZoom) ContainsSelection(pos Point, startX, width float64) bool {
	selStart, selEnd := dz.SelectionSpan(startX, width)
	return dz.band(selStart, selEnd).Contains(pos)
}

// OnStartHandle reports whether pos is within the grab zone of the start edge.
func (dz *DataZoom) OnStartHandle(pos Point, startX, width float64) bool {
	selStart, _ := dz.SelectionSpan(startX, width)
	return dz.band(selStart-HandleTolerance, selStart+HandleTolerance).Contains(pos)
}

// OnEndHandle reports whether pos is within the grab zone of the end edge.
func (dz *DataZoom) OnEndHandle(pos Point, startX, width float64) bool {
	_, selEnd := dz.SelectionSpan(startX, width)
	return dz.band(selEnd-HandleTolerance, selEnd+HandleTolerance).Contains(pos)
}

// HitTest resolves the overlapping predicates into one target. Handles beat
// the selection and the selection beats the bare control. When both handle
// zones claim pos the nearer edge wins; on a tie the edge that can still move
// away from the other one wins.
func (dz *DataZoom) HitTest(pos Point, startX, width float64) Hit {
	onStart := dz.OnStartHandle(pos, startX, width)
	onEnd := dz.OnEndHandle(pos, startX, width)
	switch {
	case onStart && onEnd:
		selStart, selEnd := dz.SelectionSpan(startX, width)
		ds := math.Abs(pos.X - selStart)
		de := math.Abs(pos.X - selEnd)
		switch {
		case ds < de:
			return HitStartHandle
		case de < ds:
			return HitEndHandle
		case dz.Start <= 0:
			return HitEndHandle
		default:
			return HitStartHandle
		}
	case onStart:
		return HitStartHandle
	case onEnd:
		return HitEndHandle
	case dz.ContainsSelection(pos, startX, width):
		return HitSelection
	case dz.ContainsPoint(pos, startX, width):
		return HitControl
	}
	return HitNone
}
