package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/thenoetrevino/syllabus/internal/config"
)

// KeyMap holds the bindings of the track browser
type KeyMap struct {
	PrevStep key.Binding
	NextStep key.Binding
	NewBoard key.Binding
	Undo     key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// NewKeyMap builds the bindings from the configured key mappings. The arrow
// keys and ctrl+c always work in addition to the configured keys.
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		PrevStep: key.NewBinding(
			key.WithKeys(km.PrevStep, "left"),
			key.WithHelp(km.PrevStep+"/←", "previous step"),
		),
		NextStep: key.NewBinding(
			key.WithKeys(km.NextStep, "right"),
			key.WithHelp(km.NextStep+"/→", "next step"),
		),
		NewBoard: key.NewBinding(
			key.WithKeys(km.NewBoard),
			key.WithHelp(km.NewBoard, "create board for step"),
		),
		Undo: key.NewBinding(
			key.WithKeys(km.Undo),
			key.WithHelp(km.Undo, "undo last board change"),
		),
		Refresh: key.NewBinding(
			key.WithKeys(km.Refresh),
			key.WithHelp(km.Refresh, "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevStep, k.NextStep, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevStep, k.NextStep},
		{k.NewBoard, k.Undo, k.Refresh},
		{k.Help, k.Quit},
	}
}
