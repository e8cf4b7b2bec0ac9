package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyBasic(t *testing.T) {
	assert.Equal(t, "hello-world", Slugify("Hello, World!", 100))
	assert.Equal(t, "mastering-tailwind-css", Slugify("Mastering Tailwind CSS", 100))
}

func TestSlugifyDiacritics(t *testing.T) {
	assert.Equal(t, "cafe-creme", Slugify("Café Crème", 100))
}

func TestSlugifyCollapsesSeparators(t *testing.T) {
	assert.Equal(t, "a-b-c", Slugify("a -- b __ c", 100))
}

func TestSlugifyEmptyFallsBack(t *testing.T) {
	assert.Equal(t, "item", Slugify("", 100))
	assert.Equal(t, "item", Slugify("!!!", 100))
}

func TestSlugifyMaxLen(t *testing.T) {
	long := strings.Repeat("abc ", 50)
	got := Slugify(long, 20)
	assert.LessOrEqual(t, len(got), 20)
	assert.False(t, strings.HasSuffix(got, "-"))
}
