package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-datazoom/clipboard"
	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/andareed/siftly-datazoom/dialogs"
	"github.com/andareed/siftly-datazoom/logging"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	dz := m.zoom
	step := m.ui.panStep

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, Keys.CancelDrag):
		if dz.IsDragging {
			dz.CancelDrag()
			return m, m.startNotice("Drag cancelled", noticeInfo)
		}
	case key.Matches(msg, Keys.PanLeft):
		dz.Pan(-step)
	case key.Matches(msg, Keys.PanRight):
		dz.Pan(step)
	case key.Matches(msg, Keys.GrowStart):
		dz.MoveStart(dz.Start - step)
	case key.Matches(msg, Keys.GrowEnd):
		dz.MoveEnd(dz.End + step)
	case key.Matches(msg, Keys.ZoomIn):
		return m, m.zoomBy(1)
	case key.Matches(msg, Keys.ZoomOut):
		return m, m.zoomBy(-1)
	case key.Matches(msg, Keys.StepDown):
		m.adjustPanStep(false)
	case key.Matches(msg, Keys.StepUp):
		m.adjustPanStep(true)
	case key.Matches(msg, Keys.ToggleLock):
		dz.ZoomLock = !dz.ZoomLock
		if dz.ZoomLock {
			return m, m.startNotice("Zoom locked", noticeInfo)
		}
		return m, m.startNotice("Zoom unlocked", noticeInfo)
	case key.Matches(msg, Keys.Reset):
		dz.Reset()
	case key.Matches(msg, Keys.RowDown):
		m.viewport.SetYOffset(m.viewport.YOffset + 1)
	case key.Matches(msg, Keys.RowUp):
		m.viewport.SetYOffset(m.viewport.YOffset - 1)
	case key.Matches(msg, Keys.PageDown):
		m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height)
	case key.Matches(msg, Keys.PageUp):
		m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height)
	case key.Matches(msg, Keys.CopyWindow):
		return m, m.copyWindow()
	case key.Matches(msg, Keys.Export):
		m.activeDialog = dialogs.NewExportDialog(defaultExportName(m.InitialPath), exportDir(m.InitialPath))
	case key.Matches(msg, Keys.OpenHelp):
		m.activeDialog = dialogs.NewHelpDialog(Keys.Legend())
	}
	return m, nil
}

func (m *model) zoomBy(steps float64) tea.Cmd {
	if m.zoom.ZoomLock {
		return m.startNotice("Zoom is locked", noticeWarn)
	}
	m.zoom.Zoom(steps, (m.zoom.Start+m.zoom.End)/2)
	return nil
}

func (m *model) adjustPanStep(increase bool) {
	step := m.ui.panStep
	if increase {
		step *= 2
	} else {
		step /= 2
	}
	m.ui.panStep = min(max(step, panStepMin), panStepMax)
}

func (m *model) copyWindow() tea.Cmd {
	text := m.data.windowStatusLabel(m.ui.appliedStart, m.ui.appliedEnd)
	if err := clipboard.Copy(text); err != nil {
		logging.Warnf("copy window: %v", err)
		return m.startNotice("Copy failed", noticeError)
	}
	return m.startNotice("Copied window", noticeSuccess)
}

// trackSlider refreshes the slider's screen position from the last scan.
func (m *model) trackSlider() {
	z := m.zones.Get(m.sliderID)
	if z == nil || z.IsZero() {
		return
	}
	m.ui.sliderOriginX, m.ui.sliderOriginY = z.StartX, z.StartY
	m.ui.sliderCols = z.EndX - z.StartX + 1
}

func (m *model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.zoom.Show {
		return m, nil
	}
	m.trackSlider()
	if m.ui.sliderCols <= 0 {
		return m, nil
	}

	dz := m.zoom
	pos := layoutPoint(dz, msg.X-m.ui.sliderOriginX, msg.Y-m.ui.sliderOriginY)
	startX, width := sliderGeometry(m.ui.sliderCols)

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		m.handleWheel(msg, pos, startX, width)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !m.sliderVisible() {
			return m, nil
		}
		hit := dz.BeginDrag(pos, startX, width)
		logging.Debugf("mouse press at %d,%d hit=%s", msg.X, msg.Y, hit)
	case msg.Action == tea.MouseActionMotion:
		if dz.IsDragging {
			dz.DragTo(pos)
		}
	case msg.Action == tea.MouseActionRelease:
		if dz.IsDragging {
			dz.DragTo(pos)
			dz.EndDrag()
		}
	}
	return m, nil
}

// handleWheel zooms around the pointer on the slider, or around the window
// centre when the wheel turns over the table in inside mode.
func (m *model) handleWheel(msg tea.MouseMsg, pos datazoom.Point, startX, width float64) {
	dz := m.zoom
	steps := 1.0
	if msg.Button == tea.MouseButtonWheelDown {
		steps = -1
	}

	switch dz.Type {
	case datazoom.Slider:
		if !m.sliderVisible() || !dz.ContainsPoint(pos, startX, width) {
			return
		}
		dz.Zoom(steps, (pos.X-startX)/width*100)
	case datazoom.Inside:
		if z := m.zones.Get(m.tableID); z == nil || !z.InBounds(msg) {
			return
		}
		dz.Zoom(steps, (dz.Start+dz.End)/2)
	}
}

func defaultExportName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" || name == "." {
		name = "datazoom"
	}
	return name + "-window.png"
}

func exportDir(path string) string {
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
		return "."
	}
	return filepath.Dir(path)
}

func (m *model) exportChartCmd(path string) tea.Cmd {
	snapshot := datazoom.Default()
	snapshot.FilterMode = m.zoom.FilterMode
	snapshot.BackgroundColor = m.zoom.BackgroundColor
	snapshot.SetWindow(m.ui.appliedStart, m.ui.appliedEnd)
	data := m.data

	return func() tea.Msg {
		if err := exportChartFile(path, data, snapshot); err != nil {
			return dialogs.ExportErrorMsg{Err: fmt.Errorf("export %s: %w", path, err)}
		}
		return dialogs.ExportOKMsg{Path: path}
	}
}
