package config

const (
	defaultPrecision         = 6
	maxPrecision             = 12
	defaultLogLevel          = "warn"
	defaultLogFormat         = "console"
	defaultHistoryEnabled    = true
	defaultHistoryPath       = "~/.local/share/unitshift/history.db"
	defaultHistoryMaxEntries = 500
	defaultColorMode         = ColorAuto
)

// Colour modes accepted by display.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Format: Format{
			Precision: defaultPrecision,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		History: History{
			Enabled:    defaultHistoryEnabled,
			Path:       defaultHistoryPath,
			MaxEntries: defaultHistoryMaxEntries,
		},
		Display: Display{
			Color: defaultColorMode,
		},
	}
}
