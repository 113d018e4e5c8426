package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/andareed/siftly-datazoom/datazoom"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	chartWidth  = 1280
	chartHeight = 480
)

var errTooFewPoints = errors.New("window holds fewer than two plottable points")

// renderChart draws the plotted column as the zoom window leaves it: Filter
// and WeakFilter plot only the window, Empty keeps the full axis with gaps
// outside it and None plots everything.
func renderChart(w io.Writer, s *series, dz *datazoom.DataZoom) error {
	values := dz.Apply(s.values)
	offset := 0
	switch dz.FilterMode {
	case datazoom.Filter, datazoom.WeakFilter:
		offset, _ = dz.IndexRange(s.len())
	}

	useTimes := s.hasTimeBounds
	var (
		xs []float64
		ts []time.Time
		ys []float64
	)
	for j, v := range values {
		i := offset + j
		if !s.hasValue[i] || math.IsNaN(v) {
			continue
		}
		if useTimes {
			if !s.rowHasTimes[i] {
				continue
			}
			ts = append(ts, s.rowTimes[i])
		} else {
			xs = append(xs, float64(i+1))
		}
		ys = append(ys, v)
	}
	if len(ys) < 2 {
		return errTooFewPoints
	}

	stroke := chart.Style{
		StrokeColor: drawing.ColorFromHex(strings.TrimPrefix(dz.BackgroundColor.Hex(), "#")),
		StrokeWidth: 2,
	}
	name := cleanColumnName(s.valueName())

	graph := chart.Chart{
		Title:      fmt.Sprintf("%s %.1f%% - %.1f%% (%s)", name, dz.Start, dz.End, dz.FilterMode),
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      chart.YAxis{Name: name},
	}

	if useTimes {
		graph.XAxis = chart.XAxis{
			Name:           cleanColumnName(s.header[s.timeColumnIndex]),
			ValueFormatter: chart.TimeValueFormatterWithFormat(timeInputLayout),
		}
		if dz.FilterMode == datazoom.Empty {
			graph.XAxis.Range = &chart.ContinuousRange{
				Min: chart.TimeToFloat64(s.timeMin),
				Max: chart.TimeToFloat64(s.timeMax),
			}
		}
		graph.Series = []chart.Series{chart.TimeSeries{Name: name, XValues: ts, YValues: ys, Style: stroke}}
	} else {
		graph.XAxis = chart.XAxis{Name: "row"}
		if dz.FilterMode == datazoom.Empty {
			graph.XAxis.Range = &chart.ContinuousRange{Min: 1, Max: float64(s.len())}
		}
		graph.Series = []chart.Series{chart.ContinuousSeries{Name: name, XValues: xs, YValues: ys, Style: stroke}}
	}

	return graph.Render(chart.PNG, w)
}

func exportChartFile(path string, s *series, dz *datazoom.DataZoom) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	if err := renderChart(f, s, dz); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("render chart: %w", err)
	}
	return f.Close()
}
