package productsController

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueSlug(t *testing.T) {
	never := func(string) bool { return false }

	assert.Equal(t, "cordless-drill", uniqueSlug("Cordless Drill", never))
	assert.Equal(t, "50-off-tv", uniqueSlug("50% Off TV!", never))
}

func TestUniqueSlugCollision(t *testing.T) {
	taken := map[string]bool{"cordless-drill": true}
	exists := func(s string) bool { return taken[s] }

	first := uniqueSlug("Cordless Drill", func(string) bool { return false })
	second := uniqueSlug("Cordless Drill", exists)

	// A collision yields a distinct, suffixed slug instead of a write
	// failure.
	assert.Equal(t, "cordless-drill", first)
	assert.NotEqual(t, first, second)
	assert.Contains(t, second, "cordless-drill-")
}
