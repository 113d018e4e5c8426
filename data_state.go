package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/andareed/siftly-datazoom/config"
	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/xuri/excelize/v2"
)

var (
	errEmptyCSV      = errors.New("csv has no data rows")
	errNoValueColumn = errors.New("no numeric column found")
	errNoSheet       = errors.New("workbook has no such sheet")
)

// series is the loaded CSV with its x axis (row order, timestamps when a
// time column exists) and the plotted value column.
type series struct {
	path            string
	header          []string
	rows            [][]string
	timeColumnIndex int
	valueColumn     int
	rowTimes        []time.Time
	rowHasTimes     []bool
	values          []float64
	hasValue        []bool
	timeMin         time.Time
	timeMax         time.Time
	hasTimeBounds   bool
}

// loadSeriesFromFile picks the reader from the file extension.
func loadSeriesFromFile(path string, cfg config.Config) (*series, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return loadSeriesFromCSVFile(path, cfg.TimeColumn, cfg.ValueColumn)
	case ".xlsx":
		return loadSeriesFromXLSXFile(path, cfg.Sheet, cfg.TimeColumn, cfg.ValueColumn)
	default:
		return nil, fmt.Errorf("unsupported file extension %q (want .csv or .xlsx)", ext)
	}
}

// loadSeriesFromXLSXFile reads one sheet of a workbook, the first one when
// sheet is empty.
func loadSeriesFromXLSXFile(path, sheet, timeColumn, valueColumn string) (*series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook %q: %w", path, errNoSheet)
		}
		sheet = sheets[0]
	}
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("workbook %q sheet %q: %w", path, sheet, errNoSheet)
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("error reading sheet %q: %w", sheet, err)
	}
	s, err := newSeries(records, timeColumn, valueColumn)
	if err != nil {
		return nil, fmt.Errorf("workbook %q: %w", path, err)
	}
	s.path = path
	return s, nil
}

func loadSeriesFromCSVFile(path, timeColumn, valueColumn string) (*series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	s, err := newSeries(records, timeColumn, valueColumn)
	if err != nil {
		return nil, fmt.Errorf("CSV %q: %w", path, err)
	}
	s.path = path
	return s, nil
}

func newSeries(records [][]string, timeColumn, valueColumn string) (*series, error) {
	if len(records) < 2 {
		return nil, errEmptyCSV
	}

	s := &series{
		header: records[0],
		rows:   records[1:],
	}
	s.timeColumnIndex = findColumnIndex(s.header, timeColumn)
	s.computeTimeBounds()

	if valueColumn != "" {
		s.valueColumn = findColumnIndex(s.header, valueColumn)
		if s.valueColumn < 0 {
			return nil, fmt.Errorf("value column %q: %w", valueColumn, errNoValueColumn)
		}
	} else {
		s.valueColumn = s.firstNumericColumn()
		if s.valueColumn < 0 {
			return nil, errNoValueColumn
		}
	}
	s.parseValues()

	return s, nil
}

func (s *series) len() int {
	return len(s.rows)
}

func (s *series) cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(s.rows) || col >= len(s.rows[row]) {
		return ""
	}
	return s.rows[row][col]
}

// windowRows is the half-open row range a window snapshot covers.
func (s *series) windowRows(start, end float64) (int, int) {
	return datazoom.IndexRange(start, end, s.len())
}

func (s *series) valueName() string {
	if s.valueColumn < 0 || s.valueColumn >= len(s.header) {
		return "value"
	}
	return cleanColumnName(s.header[s.valueColumn])
}

func (s *series) firstNumericColumn() int {
	for col := range s.header {
		if col == s.timeColumnIndex {
			continue
		}
		for row := range s.rows {
			raw := strings.TrimSpace(s.cell(row, col))
			if raw == "" {
				continue
			}
			if _, ok := parseValue(raw); ok {
				return col
			}
			break
		}
	}
	return -1
}

func (s *series) parseValues() {
	s.values = make([]float64, len(s.rows))
	s.hasValue = make([]bool, len(s.rows))
	for i := range s.rows {
		v, ok := parseValue(s.cell(i, s.valueColumn))
		s.values[i] = v
		s.hasValue[i] = ok
	}
}

func parseValue(raw string) (float64, bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
