package config

import (
	"errors"
	"path"

	"github.com/adrg/xdg"
	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	errConfigRead   = errors.New("failed to read config file")
	errConfigDecode = errors.New("failed to decode config")
	errInvalidColor = errors.New("invalid background color")
)

const (
	ConfigDirName     = "siftly-datazoom"
	DefaultConfigName = "sfzoom"
	EnvPrefix         = "sfzoom"
	DefaultPanStep    = 5.0
)

type Config struct {
	DataZoom DataZoom `mapstructure:"datazoom"`
	// TimeColumn names the x axis column. Matching is case-insensitive.
	TimeColumn string `mapstructure:"time_column"`
	// ValueColumn names the plotted column. Empty picks the first numeric one.
	ValueColumn string `mapstructure:"value_column"`
	// Sheet is the workbook sheet read from .xlsx input. Empty reads the
	// first sheet.
	Sheet string `mapstructure:"sheet"`
	// PanStep is how far, in percent, one arrow key moves the window.
	PanStep float64 `mapstructure:"pan_step"`
}

// DataZoom mirrors datazoom.DataZoom with config friendly field types.
type DataZoom struct {
	Show              bool    `mapstructure:"show"`
	Type              string  `mapstructure:"type"`
	FilterMode        string  `mapstructure:"filter_mode"`
	Orient            string  `mapstructure:"orient"`
	XAxisIndex        int     `mapstructure:"x_axis_index"`
	YAxisIndex        int     `mapstructure:"y_axis_index"`
	ShowDataShadow    bool    `mapstructure:"show_data_shadow"`
	ShowDetail        bool    `mapstructure:"show_detail"`
	ZoomLock          bool    `mapstructure:"zoom_lock"`
	Realtime          bool    `mapstructure:"realtime"`
	BackgroundColor   string  `mapstructure:"background_color"`
	Height            float64 `mapstructure:"height"`
	Bottom            float64 `mapstructure:"bottom"`
	RangeMode         string  `mapstructure:"range_mode"`
	Start             float64 `mapstructure:"start"`
	End               float64 `mapstructure:"end"`
	ScrollSensitivity float64 `mapstructure:"scroll_sensitivity"`
}

// Build turns the settings into a control. The window goes through
// SetWindow, so an inverted or out of range pair is corrected rather than
// rejected.
func (c DataZoom) Build() (*datazoom.DataZoom, error) {
	var errs []error

	dz := datazoom.Default()
	dz.Show = c.Show
	dz.XAxisIndex = c.XAxisIndex
	dz.YAxisIndex = c.YAxisIndex
	dz.ShowDataShadow = c.ShowDataShadow
	dz.ShowDetail = c.ShowDetail
	dz.ZoomLock = c.ZoomLock
	dz.Realtime = c.Realtime
	dz.Height = c.Height
	dz.Bottom = c.Bottom
	dz.ScrollSensitivity = c.ScrollSensitivity

	var err error
	if dz.Type, err = datazoom.ParseInteractionMode(c.Type); err != nil {
		errs = append(errs, err)
	}
	if dz.FilterMode, err = datazoom.ParseFilterMode(c.FilterMode); err != nil {
		errs = append(errs, err)
	}
	if dz.Orient, err = datazoom.ParseOrient(c.Orient); err != nil {
		errs = append(errs, err)
	}
	if dz.RangeMode, err = datazoom.ParseRangeMode(c.RangeMode); err != nil {
		errs = append(errs, err)
	}
	if c.BackgroundColor != "" {
		color, errColor := colorful.Hex(c.BackgroundColor)
		if errColor != nil {
			errs = append(errs, errors.Join(errColor, errInvalidColor))
		} else {
			dz.BackgroundColor = color
		}
	}

	dz.SetWindow(c.Start, c.End)
	if errValidate := dz.Validate(); errValidate != nil {
		errs = append(errs, errValidate)
	}

	if len(errs) > 0 {
		return nil, errors.Join(append(errs, errConfigDecode)...)
	}

	return dz, nil
}

// Dir is the directory searched for the config file under $XDG_CONFIG_HOME.
func Dir() string {
	return path.Join(xdg.ConfigHome, ConfigDirName)
}
