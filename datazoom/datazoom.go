// Package datazoom models the zoom window control that sits on a chart axis:
// a [start,end] window in percent of the data extent, the hit tests used to
// pick a drag target and the state changes a drag applies to the window.
package datazoom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type InteractionMode int

const (
	// Inside zooms by dragging or scrolling within the plot area itself.
	Inside InteractionMode = iota
	// Slider draws a separate bar with a selection and two handles.
	Slider
)

func (m InteractionMode) String() string {
	switch m {
	case Inside:
		return "inside"
	case Slider:
		return "slider"
	default:
		return fmt.Sprintf("InteractionMode(%d)", int(m))
	}
}

// FilterMode controls how points outside the window affect the data handed
// to the axes.
type FilterMode int

const (
	// Filter drops an item when any of its dimensions is outside the window.
	Filter FilterMode = iota
	// WeakFilter drops an item only when all of its dimensions are outside
	// the window on the same side.
	WeakFilter
	// Empty keeps the item but blanks its value.
	Empty
	// None does not filter.
	None
)

func (f FilterMode) String() string {
	switch f {
	case Filter:
		return "filter"
	case WeakFilter:
		return "weakfilter"
	case Empty:
		return "empty"
	case None:
		return "none"
	default:
		return fmt.Sprintf("FilterMode(%d)", int(f))
	}
}

type Orient int

const (
	Horizontal Orient = iota
	Vertical
)

func (o Orient) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// RangeMode says how Start and End are expressed. Only percent exists today.
type RangeMode int

const (
	Percent RangeMode = iota
)

func (r RangeMode) String() string {
	return "percent"
}

const (
	DefaultStart             = 30
	DefaultEnd               = 70
	DefaultHeight            = 50
	DefaultBottom            = 10
	DefaultScrollSensitivity = 10
	MinScrollSensitivity     = 1
	MaxScrollSensitivity     = 20
)

var (
	ErrStartRange       = errors.New("start outside [0,100]")
	ErrEndRange         = errors.New("end outside [0,100]")
	ErrInvertedWindow   = errors.New("start is after end")
	ErrSensitivityRange = errors.New("scroll sensitivity outside [1,20]")
	ErrNegativeHeight   = errors.New("height is negative")
	ErrUnknownValue     = errors.New("unknown value")
)

// DataZoom is one zoom control bound to an axis pair. The renderer reads it
// every frame, the interaction layer mutates it through the methods in
// window.go and drag.go.
type DataZoom struct {
	Show       bool
	Type       InteractionMode
	FilterMode FilterMode
	Orient     Orient
	XAxisIndex int
	YAxisIndex int

	ShowDataShadow bool
	// ShowDetail keeps the handle labels visible after a drag ends.
	ShowDetail bool
	// ZoomLock fixes the window size; resizing turns into panning.
	ZoomLock bool
	// Realtime reports window changes while dragging instead of on release.
	Realtime bool

	BackgroundColor colorful.Color
	Height          float64
	Bottom          float64

	RangeMode         RangeMode
	Start             float64
	End               float64
	ScrollSensitivity float64

	IsDragging bool

	// Labels are owned by the renderer. Either may be nil.
	StartLabel LabelSink
	EndLabel   LabelSink

	// OnChange receives the window whenever the axes should be recomputed.
	OnChange func(start, end float64)
	// Labeler formats a window edge for the handle labels. Nil leaves the
	// label text untouched.
	Labeler func(pct float64) string

	drag dragState
}

// Default returns the control with the stock configuration.
func Default() *DataZoom {
	return &DataZoom{
		Type:              Slider,
		FilterMode:        None,
		Orient:            Horizontal,
		ShowDataShadow:    true,
		Realtime:          true,
		BackgroundColor:   colorful.Color{R: 0.27, G: 0.27, B: 0.27},
		Height:            DefaultHeight,
		Bottom:            DefaultBottom,
		RangeMode:         Percent,
		Start:             DefaultStart,
		End:               DefaultEnd,
		ScrollSensitivity: DefaultScrollSensitivity,
	}
}

// Validate reports every configuration problem at once. It does not fix
// anything; SetWindow does that for the window.
func (dz *DataZoom) Validate() error {
	var errs []error
	if dz.Start < 0 || dz.Start > 100 {
		errs = append(errs, ErrStartRange)
	}
	if dz.End < 0 || dz.End > 100 {
		errs = append(errs, ErrEndRange)
	}
	if dz.Start > dz.End {
		errs = append(errs, ErrInvertedWindow)
	}
	if dz.ScrollSensitivity < MinScrollSensitivity || dz.ScrollSensitivity > MaxScrollSensitivity {
		errs = append(errs, ErrSensitivityRange)
	}
	if dz.Height < 0 {
		errs = append(errs, ErrNegativeHeight)
	}
	return errors.Join(errs...)
}

func ParseInteractionMode(s string) (InteractionMode, error) {
	switch normalize(s) {
	case "inside":
		return Inside, nil
	case "slider", "":
		return Slider, nil
	}
	return Slider, fmt.Errorf("interaction mode %q: %w", s, ErrUnknownValue)
}

func ParseFilterMode(s string) (FilterMode, error) {
	switch normalize(s) {
	case "filter":
		return Filter, nil
	case "weakfilter":
		return WeakFilter, nil
	case "empty":
		return Empty, nil
	case "none", "":
		return None, nil
	}
	return None, fmt.Errorf("filter mode %q: %w", s, ErrUnknownValue)
}

func ParseOrient(s string) (Orient, error) {
	switch normalize(s) {
	case "horizontal", "":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("orient %q: %w", s, ErrUnknownValue)
}

func ParseRangeMode(s string) (RangeMode, error) {
	switch normalize(s) {
	case "percent", "":
		return Percent, nil
	}
	return Percent, fmt.Errorf("range mode %q: %w", s, ErrUnknownValue)
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "_", "")
	return strings.ReplaceAll(s, "-", "")
}
