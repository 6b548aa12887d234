package xdg

import (
	"path/filepath"

	"github.com/bnema/prefkit/internal/application/port"
	"github.com/bnema/prefkit/internal/infrastructure/config"
)

// Adapter implements port.XDGPaths using config.GetXDGDirs().
type Adapter struct{}

// New creates a new XDG paths adapter.
func New() *Adapter {
	return &Adapter{}
}

func (a *Adapter) ConfigDir() (string, error) {
	return config.GetConfigDir()
}

func (a *Adapter) DataDir() (string, error) {
	return config.GetDataDir()
}

func (a *Adapter) StateDir() (string, error) {
	return config.GetStateDir()
}

// DconfDir returns the directory of the user dconf database, which GNOME
// rewrites when the desktop color scheme changes.
func (a *Adapter) DconfDir() (string, error) {
	home, err := config.UserConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "dconf"), nil
}

// ManDir returns the user man page directory. Pages go to
// $XDG_DATA_HOME/man/man1 so 'man prefkit' works without MANPATH changes.
func (a *Adapter) ManDir() (string, error) {
	home, err := config.UserDataHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "man", "man1"), nil
}

var _ port.XDGPaths = (*Adapter)(nil)
