package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Desserts", "desserts"},
		{"Wine & Cheese", "wine-cheese"},
		{"  Chef's   Specials  ", "chefs-specials"},
		{"soup_of_the_day", "soup-of-the-day"},
		{"--edge--case--", "edge-case"},
		{"Напитки", "category"},
		{"", "category"},
		{"42", "42"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.input), "input %q", tt.input)
	}
}

func TestUniqueSlug(t *testing.T) {
	existing := map[string]bool{"drinks": true, "drinks-2": true}
	assert.Equal(t, "drinks-3", uniqueSlug("drinks", existing))
	assert.Equal(t, "mains", uniqueSlug("mains", existing))
}
