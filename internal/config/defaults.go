package config

const (
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
	defaultConsoleColor = ColorAuto
	defaultConfigPath   = "~/.config/subbom/config.toml"
	projectConfigName   = "subbom.toml"
	envLogLevel         = "SUBBOM_LOG_LEVEL"
)

// Console color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults. The log level
// is left empty so normalize can consult the environment first.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
		},
		Console: Console{
			Color: defaultConsoleColor,
		},
	}
}
