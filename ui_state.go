package main

type uiState struct {
	noticeMsg  string
	noticeType noticeKind
	noticeSeq  int
	// panStep is the keyboard step in percent of the axis.
	panStep float64
	// applied is the window the table was last built from. It trails the
	// live window while a drag is held back by realtime being off.
	appliedStart float64
	appliedEnd   float64
	// sliderOrigin is the slider's top-left cell as last seen by the zone
	// manager, kept so a drag can continue outside the zone.
	sliderOriginX int
	sliderOriginY int
	sliderCols    int
}
