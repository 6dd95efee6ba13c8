// Test Type: Unit Test
// Description: Tests for the styles package - style sheet decoding and lookup

package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NexushasTaken/mdot/pkg/output/styles"
)

func TestRegistry_ContainsSemanticStyles(t *testing.T) {
	for _, name := range []string{"Header", "EntryName", "Package", "Dep", "Disabled", "Error", "Muted"} {
		_, ok := styles.Registry[name]
		assert.True(t, ok, "missing style %q", name)
	}
}

func TestLoad(t *testing.T) {
	t.Run("named_color_resolution", func(t *testing.T) {
		registry, err := styles.Load([]byte(`
colors:
  accent:
    light: "25"
    dark: "39"
styles:
  Title:
    bold: true
    foreground: accent
  Plain: {}
`))
		require.NoError(t, err)
		assert.Len(t, registry, 2)
		assert.True(t, registry["Title"].GetBold())
		assert.False(t, registry["Plain"].GetBold())
	})

	t.Run("invalid_yaml_fails", func(t *testing.T) {
		_, err := styles.Load([]byte(`styles: [not a map`))
		assert.Error(t, err)
	})
}

func TestGet_UnknownNameReturnsEmptyStyle(t *testing.T) {
	// Unknown names must not panic; rendering falls back to plain text
	assert.Equal(t, "text", styles.Get("NoSuchStyle").Render("text"))
}
