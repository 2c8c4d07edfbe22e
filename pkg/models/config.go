package models

// DefaultSpacerLines is the filler height used when no valid value is configured.
const DefaultSpacerLines = 40

// Config holds the user settings consumed by navigation and spacing.
// It is read fresh for every command.
type Config struct {
	IncludeSubslides bool        `yaml:"include_subslides" json:"include_subslides"`
	SkipTypes        []SlideType `yaml:"skip_types" json:"skip_types"`
	ShowStatus       bool        `yaml:"show_status" json:"show_status"`
	SpacerLines      int         `yaml:"spacer_lines" json:"spacer_lines"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		IncludeSubslides: true,
		SkipTypes:        []SlideType{},
		ShowStatus:       true,
		SpacerLines:      DefaultSpacerLines,
	}
}

// Skips reports whether t is excluded by SkipTypes.
func (c Config) Skips(t SlideType) bool {
	for _, s := range c.SkipTypes {
		if s == t {
			return true
		}
	}
	return false
}

// FillerLines returns SpacerLines, falling back to the default for values below one.
func (c Config) FillerLines() int {
	if c.SpacerLines < 1 {
		return DefaultSpacerLines
	}
	return c.SpacerLines
}

// ViewState is the spacer-view state of one open document.
type ViewState struct {
	SpacerActive    bool `json:"spacer_active"`
	PendingReinsert bool `json:"pending_reinsert"`
}
