package dialogs

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestExportResolvePath(t *testing.T) {
	d := NewExportDialog("cpu-window.png", "/data")
	require.Equal(t, filepath.Join("/data", "cpu-window.png"), d.resolvePath())

	d.input.SetValue("chart")
	require.Equal(t, filepath.Join("/data", "chart.png"), d.resolvePath())

	d.input.SetValue("out/chart.PNG")
	require.Equal(t, "out/chart.PNG", d.resolvePath())

	d.input.SetValue("   ")
	require.Equal(t, filepath.Join("/data", "cpu-window.png"), d.resolvePath())
}

func TestExportConfirm(t *testing.T) {
	d := NewExportDialog("cpu-window.png", "/data")
	_, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, ExportConfirmedMsg{Path: filepath.Join("/data", "cpu-window.png")}, cmd())
	require.False(t, d.IsVisible())

	// hidden dialogs ignore input
	_, cmd = d.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
}

func TestHelpCloses(t *testing.T) {
	h := NewHelpDialog(nil)
	require.True(t, h.IsVisible())
	h.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	require.True(t, h.IsVisible())
	h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, h.IsVisible())
}
