package main

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/andareed/siftly-datazoom/config"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// sampleRecords is ten one-minute rows with cpu running 1..10.
func sampleRecords() [][]string {
	records := [][]string{{"\ufefftime", "cpu", "host"}}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		records = append(records, []string{
			base.Add(time.Duration(i) * time.Minute).Format(timeInputLayout),
			fmt.Sprintf("%d", i+1),
			"web-01",
		})
	}
	return records
}

func sampleSeries(t *testing.T) *series {
	t.Helper()
	s, err := newSeries(sampleRecords(), "time", "")
	require.NoError(t, err)
	return s
}

func TestNewSeries(t *testing.T) {
	s := sampleSeries(t)
	require.Equal(t, 10, s.len())
	require.Equal(t, 0, s.timeColumnIndex)
	require.Equal(t, 1, s.valueColumn)
	require.Equal(t, "cpu", s.valueName())
	require.True(t, s.hasTimeBounds)
	require.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), s.timeMin)
	require.Equal(t, time.Date(2024, 1, 1, 0, 9, 0, 0, time.UTC), s.timeMax)
	require.InDelta(t, 10, s.values[9], 0)
	require.Empty(t, s.cell(0, 7))
	require.Empty(t, s.cell(42, 0))
}

func TestNewSeriesErrors(t *testing.T) {
	_, err := newSeries([][]string{{"time", "cpu"}}, "time", "")
	require.ErrorIs(t, err, errEmptyCSV)

	_, err = newSeries([][]string{{"name"}, {"alpha"}}, "time", "")
	require.ErrorIs(t, err, errNoValueColumn)

	_, err = newSeries(sampleRecords(), "time", "memory")
	require.ErrorIs(t, err, errNoValueColumn)
}

func TestNamedValueColumn(t *testing.T) {
	records := [][]string{
		{"time", "cpu", "bytes"},
		{"2024-01-01 00:00:00", "1", "1,024"},
		{"2024-01-01 00:01:00", "2", "n/a"},
	}
	s, err := newSeries(records, "TIME", "Bytes")
	require.NoError(t, err)
	require.Equal(t, 2, s.valueColumn)
	require.True(t, s.hasValue[0])
	require.InDelta(t, 1024, s.values[0], 0)
	require.False(t, s.hasValue[1])
}

func TestSeriesWithoutTimeColumn(t *testing.T) {
	s, err := newSeries([][]string{{"n", "v"}, {"a", "3"}, {"b", "4"}}, "time", "")
	require.NoError(t, err)
	require.False(t, s.hasTimeBounds)
	require.Equal(t, 1, s.valueColumn)
	require.Equal(t, "#1 3.00", s.labelFor(0))
	require.Equal(t, "#2 4.00", s.labelFor(100))
}

func TestLoadSeriesFromCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metrics.csv")
	body := "time,cpu\n2024-01-01 00:00:00,1\n2024-01-01 00:01:00,2,extra\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	s, err := loadSeriesFromCSVFile(path, "time", "")
	require.NoError(t, err)
	require.Equal(t, path, s.path)
	require.Equal(t, 2, s.len())

	_, err = loadSeriesFromCSVFile(filepath.Join(t.TempDir(), "missing.csv"), "time", "")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLogTimestamp(t *testing.T) {
	want := time.Date(2024, 3, 5, 10, 20, 30, 0, time.UTC)
	for _, raw := range []string{
		"Tue Mar 05 10:20:30 UTC 2024",
		"Tue Mar 05 10:20:30 UTC 2024:web-01",
		"2024-03-05 10:20:30",
		"2024-03-05T10:20:30Z",
	} {
		ts, ok := parseLogTimestamp(raw)
		require.True(t, ok, raw)
		require.True(t, want.Equal(ts), raw)
	}

	for _, raw := range []string{"", "   ", "yesterday", "12:00"} {
		_, ok := parseLogTimestamp(raw)
		require.False(t, ok, raw)
	}
}

func TestLabelFor(t *testing.T) {
	s := sampleSeries(t)
	require.Equal(t, "2024-01-01 00:03:00 4.00", s.labelFor(30))
	require.Equal(t, "2024-01-01 00:00:00 1.00", s.labelFor(0))
	require.Equal(t, "2024-01-01 00:09:00 10.00", s.labelFor(100))
	require.Equal(t, 0, s.rowAt(-5))
}

func TestWindowStatusLabel(t *testing.T) {
	s := sampleSeries(t)
	require.Equal(t,
		"Window: 30.0% - 70.0% rows 4-7 of 10 (2024-01-01 00:03:00 - 2024-01-01 00:06:00)",
		s.windowStatusLabel(30, 70))

	lo, hi := s.windowRows(70, 30)
	require.Equal(t, 3, lo)
	require.Equal(t, 7, hi)
}

func writeWorkbook(t *testing.T, sheet string) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for i, row := range sampleRecords() {
		for j, v := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	path := filepath.Join(t.TempDir(), "metrics.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadSeriesFromXLSXFile(t *testing.T) {
	path := writeWorkbook(t, "Sheet1")
	s, err := loadSeriesFromFile(path, config.Config{TimeColumn: "time"})
	require.NoError(t, err)
	require.Equal(t, 10, s.len())
	require.Equal(t, "cpu", s.valueName())
	require.True(t, s.hasTimeBounds)

	named := writeWorkbook(t, "metrics")
	s, err = loadSeriesFromXLSXFile(named, "metrics", "time", "cpu")
	require.NoError(t, err)
	require.InDelta(t, 4, s.values[3], 0)

	_, err = loadSeriesFromXLSXFile(named, "missing", "time", "")
	require.ErrorIs(t, err, errNoSheet)
}

func TestLoadSeriesUnsupportedExtension(t *testing.T) {
	_, err := loadSeriesFromFile("metrics.json", config.Config{})
	require.ErrorContains(t, err, "unsupported file extension")
}
