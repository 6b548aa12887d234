package colorscheme

import (
	"github.com/bnema/prefkit/internal/infrastructure/config"
)

// ConfigAdapter reads the color scheme override from the live config.
type ConfigAdapter struct {
	mgr *config.Manager
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(mgr *config.Manager) *ConfigAdapter {
	return &ConfigAdapter{mgr: mgr}
}

// GetColorScheme implements ConfigProvider.
func (a *ConfigAdapter) GetColorScheme() string {
	if a.mgr == nil {
		return ""
	}
	cfg := a.mgr.Get()
	if cfg == nil {
		return ""
	}
	return cfg.Signals.ColorScheme
}
