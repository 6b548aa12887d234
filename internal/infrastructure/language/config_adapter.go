package language

import (
	"github.com/bnema/prefkit/internal/infrastructure/config"
)

// ConfigAdapter reads signals.languages from the live config.
type ConfigAdapter struct {
	mgr *config.Manager
}

// NewConfigAdapter creates a new config adapter.
func NewConfigAdapter(mgr *config.Manager) *ConfigAdapter {
	return &ConfigAdapter{mgr: mgr}
}

// GetLanguages implements ConfigProvider.
func (a *ConfigAdapter) GetLanguages() []string {
	if a.mgr == nil {
		return nil
	}
	cfg := a.mgr.Get()
	if cfg == nil {
		return nil
	}
	return cfg.Signals.Languages
}
