package config

import (
	"github.com/bnema/prefkit/internal/domain/entity"
)

// Config is the prefkit configuration file.
type Config struct {
	Breakpoints BreakpointsConfig `mapstructure:"breakpoints" toml:"breakpoints" json:"breakpoints" jsonschema:"description=Viewport size class thresholds in pixels"`
	Signals     SignalsConfig     `mapstructure:"signals" toml:"signals" json:"signals" jsonschema:"description=Overrides for the OS signals preferences follow"`
	Database    DatabaseConfig    `mapstructure:"database" toml:"database" json:"database"`
	Logging     LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
}

// BreakpointsConfig holds the size class thresholds.
type BreakpointsConfig struct {
	SM int `mapstructure:"sm" toml:"sm" json:"sm" jsonschema:"minimum=128,default=576"`
	MD int `mapstructure:"md" toml:"md" json:"md" jsonschema:"default=768"`
	LG int `mapstructure:"lg" toml:"lg" json:"lg" jsonschema:"default=992"`
	XL int `mapstructure:"xl" toml:"xl" json:"xl" jsonschema:"default=1200"`
	// Fallback is reported when no viewport is available.
	Fallback string `mapstructure:"fallback" toml:"fallback" json:"fallback" jsonschema:"enum=mini,enum=sm,enum=md,enum=lg,enum=xl,default=lg"`
}

// Thresholds converts the section to domain thresholds.
func (b BreakpointsConfig) Thresholds() entity.Thresholds {
	return entity.Thresholds{SM: b.SM, MD: b.MD, LG: b.LG, XL: b.XL}
}

// FallbackClass parses Fallback. Normalised configs always parse.
func (b BreakpointsConfig) FallbackClass() (entity.SizeClass, error) {
	return entity.ParseSizeClass(b.Fallback)
}

// Color scheme override values.
const (
	ColorSchemeDefault     = "default"
	ColorSchemePreferDark  = "prefer-dark"
	ColorSchemePreferLight = "prefer-light"
)

// SignalsConfig overrides what the OS reports.
type SignalsConfig struct {
	// ColorScheme replaces desktop detection unless "default".
	ColorScheme string `mapstructure:"color_scheme" toml:"color_scheme" json:"color_scheme" jsonschema:"enum=default,enum=prefer-dark,enum=prefer-light,default=default"`
	// Languages replaces the POSIX locale environment when non-empty.
	Languages []string `mapstructure:"languages" toml:"languages" json:"languages" jsonschema:"description=Preferred languages as BCP 47 tags or POSIX locale names"`
	// CellWidth is the pixel width of one terminal column.
	CellWidth int `mapstructure:"cell_width" toml:"cell_width" json:"cell_width" jsonschema:"minimum=1,default=8"`
}

// DatabaseConfig locates the preference database.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path" jsonschema:"description=SQLite file; defaults to $XDG_DATA_HOME/prefkit/prefkit.db"`
	// Ephemeral keeps preferences in memory for the lifetime of the process.
	Ephemeral bool `mapstructure:"ephemeral" toml:"ephemeral" json:"ephemeral"`
}

// LoggingConfig configures zerolog.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
}
