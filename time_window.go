package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	timeInputLayout = "2006-01-02 15:04:05"
	logTimeLayout   = "Mon Jan 02 15:04:05 MST 2006"
)

var timestampLayouts = []string{logTimeLayout, timeInputLayout, time.RFC3339}

func (s *series) computeTimeBounds() {
	s.rowTimes = make([]time.Time, len(s.rows))
	s.rowHasTimes = make([]bool, len(s.rows))

	if s.timeColumnIndex < 0 {
		s.hasTimeBounds = false
		return
	}

	hasAny := false
	var minTime time.Time
	var maxTime time.Time

	for i, row := range s.rows {
		if s.timeColumnIndex >= len(row) {
			continue
		}
		ts, ok := parseLogTimestamp(row[s.timeColumnIndex])
		if !ok {
			continue
		}
		s.rowTimes[i] = ts
		s.rowHasTimes[i] = true
		if !hasAny {
			minTime = ts
			maxTime = ts
			hasAny = true
			continue
		}
		if ts.Before(minTime) {
			minTime = ts
		}
		if ts.After(maxTime) {
			maxTime = ts
		}
	}

	s.hasTimeBounds = hasAny
	if hasAny {
		s.timeMin = minTime
		s.timeMax = maxTime
	}
}

func cleanColumnName(name string) string {
	name = strings.TrimSpace(name)
	return strings.TrimPrefix(name, "\ufeff")
}

func findColumnIndex(cols []string, want string) int {
	if want == "" {
		return -1
	}
	for i := range cols {
		if strings.EqualFold(cleanColumnName(cols[i]), want) {
			return i
		}
	}
	return -1
}

// parseLogTimestamp accepts the host log layout, optionally followed by a
// ":<suffix>", as well as plain and RFC3339 timestamps.
func parseLogTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, true
		}
	}
	if idx := strings.LastIndex(raw, ":"); idx != -1 {
		ts, err := time.Parse(logTimeLayout, strings.TrimSpace(raw[:idx]))
		if err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// rowAt maps a window edge in percent to the row sitting under it.
func (s *series) rowAt(pct float64) int {
	n := s.len()
	if n == 0 {
		return -1
	}
	idx := int(math.Floor(float64(n) * pct / 100))
	return min(max(idx, 0), n-1)
}

// labelFor is the handle label text: where the edge sits on the x axis and
// the value found there.
func (s *series) labelFor(pct float64) string {
	row := s.rowAt(pct)
	if row < 0 {
		return ""
	}

	where := "#" + humanize.Comma(int64(row+1))
	if s.rowHasTimes[row] {
		where = s.rowTimes[row].Format(timeInputLayout)
	}
	if !s.hasValue[row] {
		return where
	}
	return fmt.Sprintf("%s %s", where, humanize.FormatFloat("#,###.##", s.values[row]))
}

// windowStatusLabel describes a window for the footer and the clipboard.
func (s *series) windowStatusLabel(start, end float64) string {
	if s.len() == 0 {
		return fmt.Sprintf("Window: %.1f%% - %.1f%%", start, end)
	}
	lo, hi := s.windowRows(start, end)
	label := fmt.Sprintf("Window: %.1f%% - %.1f%% rows %s-%s of %s",
		start, end, humanize.Comma(int64(lo+1)), humanize.Comma(int64(hi)), humanize.Comma(int64(s.len())))
	if s.hasTimeBounds && hi > lo {
		first, last := s.rowTimes[lo], s.rowTimes[hi-1]
		if s.rowHasTimes[lo] && s.rowHasTimes[hi-1] {
			label += fmt.Sprintf(" (%s - %s)", first.Format(timeInputLayout), last.Format(timeInputLayout))
		}
	}
	return label
}
