package config

import (
	"github.com/bnema/prefkit/internal/domain/entity"
)

const (
	defaultCellWidth = 8 // pixels per terminal column
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
)

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	t := entity.DefaultThresholds()
	return &Config{
		Breakpoints: BreakpointsConfig{
			SM:       t.SM,
			MD:       t.MD,
			LG:       t.LG,
			XL:       t.XL,
			Fallback: entity.SizeLarge.String(),
		},
		Signals: SignalsConfig{
			ColorScheme: ColorSchemeDefault,
			Languages:   []string{},
			CellWidth:   defaultCellWidth,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
