package datazoom

type dragState struct {
	target Hit
	origin Point
	start  float64
	end    float64
	width  float64
	// pending is set when a change was held back because Realtime is off.
	pending bool
	// recentred marks a press on the bare control that already moved the window.
	recentred bool
}

// BeginDrag starts a drag at pos and returns what was grabbed. Pressing the
// bare control recentres the window on the pointer and grabs the selection.
// HitNone means nothing was grabbed and no drag is in progress.
func (dz *DataZoom) BeginDrag(pos Point, startX, width float64) Hit {
	if dz.IsDragging {
		dz.EndDrag()
	}
	hit := dz.HitTest(pos, startX, width)
	if hit == HitNone {
		return HitNone
	}

	dz.setWindow(dz.Start, dz.End)
	recentred := false
	if hit == HitControl {
		pct := (pos.X - startX) / width * 100
		dz.panFrom(dz.Start, dz.End, pct-(dz.End-dz.Start)/2-dz.Start)
		hit = HitSelection
		recentred = true
	}

	dz.IsDragging = true
	dz.drag = dragState{
		target:    hit,
		origin:    pos,
		start:     dz.Start,
		end:       dz.End,
		width:     width,
		recentred: recentred,
	}
	dz.SetLabelActive(true)
	if recentred {
		dz.changed()
	} else {
		dz.syncLabelText()
	}
	return hit
}

// DragTarget is what the running drag holds, HitNone when idle.
func (dz *DataZoom) DragTarget() Hit {
	if !dz.IsDragging {
		return HitNone
	}
	return dz.drag.target
}

// DragTo applies the horizontal distance from the press position to the
// window as it was when the drag began.
func (dz *DataZoom) DragTo(pos Point) {
	if !dz.IsDragging || dz.drag.width == 0 {
		return
	}
	d := dz.drag
	delta := (pos.X - d.origin.X) / d.width * 100
	switch d.target {
	case HitStartHandle:
		dz.moveStartFrom(d.start, d.end, d.start+delta)
	case HitEndHandle:
		dz.moveEndFrom(d.start, d.end, d.end+delta)
	case HitSelection:
		dz.panFrom(d.start, d.end, delta)
	default:
		return
	}
	dz.changed()
}

// EndDrag finishes the drag. A change held back while dragging is reported
// now, and the labels are hidden unless ShowDetail is set.
func (dz *DataZoom) EndDrag() {
	if !dz.IsDragging {
		return
	}
	pending := dz.drag.pending
	dz.IsDragging = false
	dz.drag = dragState{}
	if pending && dz.OnChange != nil {
		dz.OnChange(dz.Start, dz.End)
	}
	if !dz.ShowDetail {
		dz.SetLabelActive(false)
	}
}

// CancelDrag puts the window back where the drag found it.
func (dz *DataZoom) CancelDrag() {
	if !dz.IsDragging {
		return
	}
	d := dz.drag
	dz.IsDragging = false
	dz.drag = dragState{}
	dz.Start, dz.End = d.start, d.end
	if dz.Realtime || d.recentred {
		dz.changed()
	} else {
		dz.syncLabelText()
	}
	if !dz.ShowDetail {
		dz.SetLabelActive(false)
	}
}
