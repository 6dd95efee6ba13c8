// Package paths provides centralized path handling for mdot.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvAppName overrides the application name used for config and state
	// directories. Carried over from the original mdot behavior.
	EnvAppName = "MDOT_APPNAME"

	// EnvConfigDir overrides the XDG config directory for mdot
	EnvConfigDir = "MDOT_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for mdot
	EnvStateDir = "MDOT_STATE_DIR"
)

// DefaultAppName is the application name unless MDOT_APPNAME is set
const DefaultAppName = "mdot"

// LogFileName is the name of the log file
const LogFileName = "mdot.log"

// Paths provides centralized path management for mdot
type Paths struct {
	appName   string
	configDir string
	stateDir  string
}

// New creates a Paths instance, honoring environment overrides
func New() *Paths {
	appName := os.Getenv(EnvAppName)
	if appName == "" {
		appName = DefaultAppName
	}

	configDir := os.Getenv(EnvConfigDir)
	if configDir == "" {
		configDir = filepath.Join(xdg.ConfigHome, appName)
	}

	stateDir := os.Getenv(EnvStateDir)
	if stateDir == "" {
		stateDir = filepath.Join(xdg.StateHome, appName)
	}

	return &Paths{
		appName:   appName,
		configDir: configDir,
		stateDir:  stateDir,
	}
}

// AppName returns the effective application name
func (p *Paths) AppName() string {
	return p.appName
}

// ConfigDir returns the directory holding the user configuration
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigFilePath returns the path to the user configuration file,
// e.g. ~/.config/mdot/mdot.toml
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, p.appName+".toml")
}

// StateDir returns the directory for state files
func (p *Paths) StateDir() string {
	return p.stateDir
}

// LogFilePath returns the path to the log file
func (p *Paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}
