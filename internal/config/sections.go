package config

import "time"

// Section accessor methods return snapshot structs. Mutating the returned
// struct does not modify the underlying configuration. Use Config.Set()
// to update configuration values.

// ScrollConfig provides type-safe access to scroll animation settings.
type ScrollConfig struct {
	// Enabled turns smooth scrolling on or off.
	Enabled bool

	// Duration is the default animation duration.
	Duration time.Duration

	// Easing is the default easing curve name.
	Easing string

	// MoveCursor moves the cursor along with the viewport by default.
	MoveCursor bool

	// HookScript is the path of an optional Lua hook script.
	HookScript string
}

// LoggingConfig provides type-safe access to logging settings.
type LoggingConfig struct {
	// Level is the minimum log level ("debug", "info", "warn", "error").
	Level string
}

// Scroll returns the scroll settings snapshot.
func (c *Config) Scroll() ScrollConfig {
	return ScrollConfig{
		Enabled:    c.Bool("scroll.enabled"),
		Duration:   c.Duration("scroll.durationSeconds"),
		Easing:     c.String("scroll.easing"),
		MoveCursor: c.Bool("scroll.moveCursor"),
		HookScript: c.String("scroll.hookScript"),
	}
}

// Logging returns the logging settings snapshot.
func (c *Config) Logging() LoggingConfig {
	return LoggingConfig{
		Level: c.String("logging.level"),
	}
}

// defaultSettings returns the built-in settings registry.
func defaultSettings() []Setting {
	return []Setting{
		{
			Path:        "scroll.enabled",
			Type:        TypeBool,
			Default:     true,
			Description: "Animate scrolling instead of jumping.",
		},
		{
			Path:        "scroll.durationSeconds",
			Type:        TypeFloat,
			Default:     0.25,
			Description: "Total duration of one scroll animation in seconds.",
		},
		{
			Path:        "scroll.easing",
			Type:        TypeString,
			Default:     "cubic",
			Description: "Easing curve: linear, quadratic, cubic or sine.",
		},
		{
			Path:        "scroll.moveCursor",
			Type:        TypeBool,
			Default:     true,
			Description: "Move the cursor together with the viewport.",
		},
		{
			Path:        "scroll.hookScript",
			Type:        TypeString,
			Default:     "",
			Description: "Path of a Lua script providing pre_scroll/post_scroll hooks.",
		},
		{
			Path:        "logging.level",
			Type:        TypeString,
			Default:     "info",
			Description: "Minimum log level: debug, info, warn or error.",
		},
	}
}
