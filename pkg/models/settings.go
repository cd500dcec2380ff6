package models

import "time"

// Settings represents the application configuration
type Settings struct {
	Editor EditorSettings `yaml:"editor" mapstructure:"editor"`
	Save   SaveSettings   `yaml:"save" mapstructure:"save"`
	Log    LogSettings    `yaml:"log" mapstructure:"log"`
}

// EditorSettings controls the nested column editors
type EditorSettings struct {
	MinHeight       int  `yaml:"min_height" mapstructure:"min_height"`
	ShowLineNumbers bool `yaml:"show_line_numbers" mapstructure:"show_line_numbers"`
	ReadOnly        bool `yaml:"read_only" mapstructure:"read_only"`
}

// SaveSettings controls how column content is drained on save
type SaveSettings struct {
	// DrainTimeout bounds each column's save; zero waits forever.
	DrainTimeout time.Duration `yaml:"drain_timeout" mapstructure:"drain_timeout"`
}

// LogSettings controls the diagnostic log
type LogSettings struct {
	Path  string `yaml:"path" mapstructure:"path"`
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Editor: EditorSettings{
			MinHeight:       6,
			ShowLineNumbers: false,
			ReadOnly:        false,
		},
		Save: SaveSettings{
			DrainTimeout: 0,
		},
		Log: LogSettings{
			Path:  "",
			Level: "info",
		},
	}
}
