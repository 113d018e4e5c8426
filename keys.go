package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit       key.Binding
	PanLeft    key.Binding
	PanRight   key.Binding
	GrowStart  key.Binding
	GrowEnd    key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	StepDown   key.Binding
	StepUp     key.Binding
	ToggleLock key.Binding
	Reset      key.Binding
	CancelDrag key.Binding
	RowDown    key.Binding
	RowUp      key.Binding
	PageDown   key.Binding
	PageUp     key.Binding
	CopyWindow key.Binding
	Export     key.Binding
	OpenHelp   key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "move window left"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "move window right"),
	),
	GrowStart: key.NewBinding(
		key.WithKeys("shift+left", "H"),
		key.WithHelp("shift+←/H", "extend start"),
	),
	GrowEnd: key.NewBinding(
		key.WithKeys("shift+right", "L"),
		key.WithHelp("shift+→/L", "extend end"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	StepDown: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "halve step"),
	),
	StepUp: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "double step"),
	),
	ToggleLock: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "toggle zoom lock"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset window"),
	),
	CancelDrag: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel drag"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	CopyWindow: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy window to clipboard"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export chart"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.PanLeft,
		k.PanRight,
		k.GrowStart,
		k.GrowEnd,
		k.ZoomIn,
		k.ZoomOut,
		k.StepDown,
		k.StepUp,
		k.ToggleLock,
		k.Reset,
		k.CancelDrag,
		k.RowDown,
		k.RowUp,
		k.PageDown,
		k.PageUp,
		k.CopyWindow,
		k.Export,
	}
}
