package main

import (
	"github.com/andareed/siftly-datazoom/config"
	"github.com/andareed/siftly-datazoom/datazoom"
	"github.com/andareed/siftly-datazoom/dialogs"
	"github.com/andareed/siftly-datazoom/logging"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

type configReloadedMsg struct {
	cfg config.Config
}

type model struct {
	InitialPath string

	cfg  config.Config
	zoom *datazoom.DataZoom
	data *series

	zones    *zone.Manager
	sliderID string
	tableID  string

	viewport       viewport.Model
	ready          bool
	terminalWidth  int
	terminalHeight int

	ui           uiState
	activeDialog dialogs.Dialog

	startLabel *termLabel
	endLabel   *termLabel
}

func newModel(cfg config.Config, dz *datazoom.DataZoom, data *series, zones *zone.Manager) *model {
	prefix := zones.NewPrefix()
	m := &model{
		cfg:        cfg,
		data:       data,
		zones:      zones,
		sliderID:   prefix + "slider",
		tableID:    prefix + "table",
		startLabel: &termLabel{},
		endLabel:   &termLabel{},
	}
	m.ui.panStep = clampPanStep(cfg.PanStep)
	m.attachZoom(dz)
	return m
}

// attachZoom wires the control's labels and change notifications into the
// model and builds the table from its window.
func (m *model) attachZoom(dz *datazoom.DataZoom) {
	if m.zoom != nil {
		m.zoom.CancelDrag()
		m.zoom.OnChange = nil
	}
	if dz.Orient == datazoom.Vertical {
		logging.Warnf("datazoom: vertical orientation is drawn horizontally in the terminal")
	}

	dz.StartLabel = m.startLabel
	dz.EndLabel = m.endLabel
	dz.Labeler = m.data.labelFor
	dz.OnChange = m.applyWindow
	m.zoom = dz

	m.startLabel.SetText(m.data.labelFor(dz.Start))
	m.endLabel.SetText(m.data.labelFor(dz.End))
	dz.SetLabelActive(dz.ShowDetail)
	m.applyWindow(dz.Start, dz.End)
}

// applyWindow is the axis side of the control: it rebuilds the table for a
// window reported through OnChange.
func (m *model) applyWindow(start, end float64) {
	m.ui.appliedStart, m.ui.appliedEnd = start, end
	logging.Debugf("applyWindow start=%.2f end=%.2f filter=%s", start, end, m.zoom.FilterMode)
	if m.ready {
		m.viewport.SetContent(m.renderTable())
	}
}

func (m *model) sliderVisible() bool {
	return m.zoom.Show && m.zoom.Type == datazoom.Slider
}

func (m *model) Init() tea.Cmd {
	logging.Infof("sfzoom: Initialised with %d rows", m.data.len())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.activeDialog, cmd = m.activeDialog.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil
	case configReloadedMsg:
		return m, m.reloadConfig(msg.cfg)
	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, m.exportChartCmd(msg.Path)
	case dialogs.ExportCanceledMsg:
		m.activeDialog = nil
		return m, nil
	case dialogs.ExportOKMsg:
		return m, m.startNotice("Chart written to "+msg.Path, noticeSuccess)
	case dialogs.ExportErrorMsg:
		logging.Warnf("export failed: %v", msg.Err)
		return m, m.startNotice("Export failed: "+msg.Err.Error(), noticeError)
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) resize(width, height int) {
	m.terminalWidth, m.terminalHeight = width, height

	// header, table border and footer
	chrome := 1 + 2 + 2
	if m.sliderVisible() {
		chrome += 1 + sliderRows
	}
	m.viewport = viewport.New(max(1, width-4), max(1, height-chrome))
	m.ui.sliderCols = max(1, width-2)
	m.ready = true
	m.viewport.SetContent(m.renderTable())
}

func (m *model) reloadConfig(cfg config.Config) tea.Cmd {
	dz, err := cfg.DataZoom.Build()
	if err != nil {
		logging.Warnf("config reload rejected: %v", err)
		return m.startNotice("Config reload rejected", noticeWarn)
	}
	m.cfg = cfg
	m.ui.panStep = clampPanStep(cfg.PanStep)
	m.attachZoom(dz)
	if m.ready {
		m.resize(m.terminalWidth, m.terminalHeight)
	}
	return m.startNotice("Config reloaded", noticeInfo)
}

func clampPanStep(step float64) float64 {
	if step <= 0 {
		return config.DefaultPanStep
	}
	return min(max(step, panStepMin), panStepMax)
}
