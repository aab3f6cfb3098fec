package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapabilities_FixedList(t *testing.T) {
	caps := Capabilities()

	require.Len(t, caps, 5)

	ids := make([]string, 0, len(caps))
	for _, c := range caps {
		assert.True(t, c.Free, "capability %s must be free", c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Description)
		ids = append(ids, c.ID)
	}

	assert.Equal(t, []string{
		"prompt-to-landing",
		"brand-colors",
		"hero-3d",
		"feature-grid",
		"export",
	}, ids)
}

func TestCapabilities_ReturnsCopy(t *testing.T) {
	first := Capabilities()
	first[0].Name = "mutated"
	first[0].Free = false

	second := Capabilities()

	assert.Equal(t, "Prompt → Landing Page", second[0].Name)
	assert.True(t, second[0].Free)
}
