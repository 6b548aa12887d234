package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/prefkit/internal/domain/entity"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{
			name:    "non-monotonic thresholds",
			mutate:  func(c *Config) { c.Breakpoints.SM, c.Breakpoints.MD = 600, 500 },
			wantErr: "breakpoints",
		},
		{
			name:    "sm below minimum",
			mutate:  func(c *Config) { c.Breakpoints.SM = 100 },
			wantErr: "breakpoints",
		},
		{
			name:    "bad fallback",
			mutate:  func(c *Config) { c.Breakpoints.Fallback = "huge" },
			wantErr: "breakpoints.fallback",
		},
		{
			name:    "bad color scheme",
			mutate:  func(c *Config) { c.Signals.ColorScheme = "sepia" },
			wantErr: "signals.color_scheme",
		},
		{
			name:    "missing database path",
			mutate:  func(c *Config) { c.Database.Path = "" },
			wantErr: "database.path",
		},
		{
			name: "ephemeral without path",
			mutate: func(c *Config) {
				c.Database.Path = ""
				c.Database.Ephemeral = true
			},
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Database.Path = "/tmp/prefkit.db"
			tt.mutate(cfg)

			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateConfig_ThresholdsSentinel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Database.Path = "/tmp/prefkit.db"
	cfg.Breakpoints.LG = cfg.Breakpoints.MD

	assert.ErrorIs(t, Validate(cfg), entity.ErrInvalidThresholds)
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"breakpoints"`)
	assert.Contains(t, s, `"color_scheme"`)
	assert.Contains(t, s, `"cell_width"`)
	assert.Contains(t, s, "prefkit configuration")
}
