// Package styles defines the visual styling for mdot's terminal output.
//
// All styles use semantic names and adaptive colors that automatically
// adjust to light and dark terminal themes. The style sheet is embedded
// at build time and decoded once at startup.
package styles

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var defaultStyles []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Sheet represents the complete styles configuration
type Sheet struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Registry maps semantic names to lipgloss styles
var Registry map[string]lipgloss.Style

func init() {
	registry, err := Load(defaultStyles)
	if err != nil {
		// The embedded sheet is part of the build; a decode failure is a bug
		panic(fmt.Sprintf("styles: invalid embedded style sheet: %v", err))
	}
	Registry = registry
}

// Load decodes a YAML style sheet into a registry of lipgloss styles
func Load(data []byte) (map[string]lipgloss.Style, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse style sheet: %w", err)
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(sheet.Colors))
	for name, def := range sheet.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	registry := make(map[string]lipgloss.Style, len(sheet.Styles))
	for name, def := range sheet.Styles {
		style := lipgloss.NewStyle().
			Bold(def.Bold).
			Italic(def.Italic).
			Underline(def.Underline)
		if def.Foreground != "" {
			style = style.Foreground(resolveColor(colors, def.Foreground))
		}
		if def.Background != "" {
			style = style.Background(resolveColor(colors, def.Background))
		}
		registry[name] = style
	}
	return registry, nil
}

// resolveColor looks up a named adaptive color, falling back to treating
// the value as a literal color string.
func resolveColor(colors map[string]lipgloss.AdaptiveColor, name string) lipgloss.TerminalColor {
	if c, ok := colors[name]; ok {
		return c
	}
	return lipgloss.Color(name)
}

// Get returns the style with the given semantic name, or an empty style
// if the name is unknown.
func Get(name string) lipgloss.Style {
	if style, ok := Registry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to the given text
func Render(name, text string) string {
	return Get(name).Render(text)
}

// Enabled reports whether styled output should be used for the given
// file, i.e. it is a real terminal and NO_COLOR is not set.
func Enabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
