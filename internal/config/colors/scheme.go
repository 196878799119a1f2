// Package colors holds the colour presets for tables, notices and forms
package colors

import "dario.cat/mergo"

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "wave")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // add forms and success notices
	Paid   string `yaml:"paid"`   // paid invoices
	Unpaid string `yaml:"unpaid"` // unpaid invoices

	// Table colors
	HeaderFg string `yaml:"header_fg"`
	Border   string `yaml:"border"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "wave":
		return Wave()
	case "dragon":
		return Dragon()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// Presets lists the names GetPreset understands
func Presets() []string {
	return []string{"default", "monochrome", "wave", "dragon", "lotus"}
}

// ApplyDefaults fills in missing color values using the preset as base.
// Values already set are kept.
func (c *ColorScheme) ApplyDefaults() error {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	return mergo.Merge(c, *preset)
}

// MergeFrom overrides colors with every non-empty value in other
func (c *ColorScheme) MergeFrom(other ColorScheme) error {
	return mergo.Merge(c, other, mergo.WithOverride)
}
