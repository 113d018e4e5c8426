package datazoom

// LabelSink is a text element the renderer owns and lets the control drive.
type LabelSink interface {
	Active() bool
	SetActive(active bool)
	SetText(text string)
}

// SetLabelActive shows or hides both labels, touching a label only when its
// state actually changes.
func (dz *DataZoom) SetLabelActive(flag bool) {
	if dz.StartLabel != nil && dz.StartLabel.Active() != flag {
		dz.StartLabel.SetActive(flag)
	}
	if dz.EndLabel != nil && dz.EndLabel.Active() != flag {
		dz.EndLabel.SetActive(flag)
	}
}

func (dz *DataZoom) SetStartLabelText(text string) {
	if dz.StartLabel != nil {
		dz.StartLabel.SetText(text)
	}
}

func (dz *DataZoom) SetEndLabelText(text string) {
	if dz.EndLabel != nil {
		dz.EndLabel.SetText(text)
	}
}

func (dz *DataZoom) syncLabelText() {
	if dz.Labeler == nil {
		return
	}
	dz.SetStartLabelText(dz.Labeler(dz.Start))
	dz.SetEndLabelText(dz.Labeler(dz.End))
}
