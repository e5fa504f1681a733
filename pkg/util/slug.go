package util

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Slugify converts a title into a lowercase, hyphen-separated URL-safe string.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// ProductSlug derives a slug from a product title with a timestamp suffix
// so that two products with the same title never collide.
func ProductSlug(title string) string {
	return fmt.Sprintf("%s-%d", Slugify(title), time.Now().UnixNano())
}
