package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIcons(t *testing.T) {
	for _, name := range []string{"countdown.svg", "countdown_paused.svg"} {
		resource, err := Icon(name)
		require.NoError(t, err)
		assert.Equal(t, name, resource.Name())
		assert.Contains(t, string(resource.Content()), "<svg")

		cached := MustIcon(name)
		assert.Same(t, resource, cached)
	}
}

func TestMissingIcon(t *testing.T) {
	_, err := Icon("missing.svg")
	assert.Error(t, err)
	assert.Panics(t, func() {
		MustIcon("missing.svg")
	})
}
