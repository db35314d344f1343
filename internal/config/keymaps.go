package config

// KeyMappings defines the configurable key bindings of the track browser
type KeyMappings struct {
	// Navigation
	PrevStep string `yaml:"prev_step"`
	NextStep string `yaml:"next_step"`

	// Boards
	NewBoard string `yaml:"new_board"`
	Undo     string `yaml:"undo"`
	Refresh  string `yaml:"refresh"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevStep: "h",
		NextStep: "l",
		NewBoard: "n",
		Undo:     "u",
		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.PrevStep == "" {
		k.PrevStep = defaults.PrevStep
	}
	if k.NextStep == "" {
		k.NextStep = defaults.NextStep
	}
	if k.NewBoard == "" {
		k.NewBoard = defaults.NewBoard
	}
	if k.Undo == "" {
		k.Undo = defaults.Undo
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
