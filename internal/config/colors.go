package config

// ColorScheme defines the colors used by the board renderer and browser
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent       string `yaml:"accent"`        // titles, current step
	ColumnBorder string `yaml:"column_border"` // semester columns
	Subject      string `yaml:"subject"`       // subject lines
	Subtle       string `yaml:"subtle"`        // muted text, empty columns
	Warning      string `yaml:"warning"`       // prerequisite warnings
	Error        string `yaml:"error"`
}

// DefaultColorScheme returns the default color scheme (purple theme)
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Preset:       "default",
		Accent:       "#874BFD",
		ColumnBorder: "#5F87D7",
		Subject:      "#D0D0D0",
		Subtle:       "#585858",
		Warning:      "#FFD700",
		Error:        "#FF0000",
	}
}

// MonochromeColorScheme returns a black and white color scheme
func MonochromeColorScheme() ColorScheme {
	return ColorScheme{
		Preset:       "monochrome",
		Accent:       "#FFFFFF",
		ColumnBorder: "#808080",
		Subject:      "#D0D0D0",
		Subtle:       "#585858",
		Warning:      "#FFFFFF",
		Error:        "#FFFFFF",
	}
}

func presetScheme(name string) ColorScheme {
	if name == "monochrome" {
		return MonochromeColorScheme()
	}
	return DefaultColorScheme()
}

// ApplyDefaults fills in missing colors from the selected preset
func (c *ColorScheme) ApplyDefaults() {
	preset := presetScheme(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fill(preset)
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	override := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	override(&c.Accent, other.Accent)
	override(&c.ColumnBorder, other.ColumnBorder)
	override(&c.Subject, other.Subject)
	override(&c.Subtle, other.Subtle)
	override(&c.Warning, other.Warning)
	override(&c.Error, other.Error)
}

func (c *ColorScheme) fill(base ColorScheme) {
	fill := func(dst *string, src string) {
		if *dst == "" {
			*dst = src
		}
	}
	fill(&c.Accent, base.Accent)
	fill(&c.ColumnBorder, base.ColumnBorder)
	fill(&c.Subject, base.Subject)
	fill(&c.Subtle, base.Subtle)
	fill(&c.Warning, base.Warning)
	fill(&c.Error, base.Error)
}
