package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple title", "Wireless Mouse", "wireless-mouse"},
		{"extra spaces", "  Gaming   Laptop  ", "gaming-laptop"},
		{"punctuation stripped", "50% Off! Best Deal?", "50-off-best-deal"},
		{"already a slug", "plain-slug", "plain-slug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.title))
		})
	}
}

func TestProductSlug(t *testing.T) {
	slug := ProductSlug("Wireless Mouse")
	assert.True(t, strings.HasPrefix(slug, "wireless-mouse-"))

	// Two products with the same title must not collide
	other := ProductSlug("Wireless Mouse")
	assert.NotEqual(t, slug, other)
}

func TestResetTokenRoundTrip(t *testing.T) {
	token, err := GenerateResetToken()
	assert.NoError(t, err)
	assert.Len(t, token, ResetTokenLength*2) // hex encoded

	hash := HashResetToken(token)
	assert.Len(t, hash, 64)
	assert.NotEqual(t, token, hash)
	assert.Equal(t, hash, HashResetToken(token))
}
