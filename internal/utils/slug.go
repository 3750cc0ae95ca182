package utils

import (
	"strings"

	"github.com/google/uuid"
)

// slugSuffixLength is the number of random characters appended to every
// generated slug to make collisions practically impossible.
const slugSuffixLength = 8

// Slugify normalizes a property name into its URL-safe slug base:
// lower-cased, with every run of non-alphanumeric characters collapsed into
// a single hyphen and leading/trailing hyphens trimmed.
//
// Example:
//
//	Slugify("  Seaside Villa! ") == "seaside-villa"
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

// GenerateSlug produces the public slug for a new property: the slugified
// name plus a hyphen and an 8-character random suffix.
//
// There is no uniqueness retry: the suffix makes a collision negligible, and
// the database unique constraint is the final arbiter if one ever occurs.
func GenerateSlug(name string) string {
	return Slugify(name) + "-" + randomSuffix()
}

func randomSuffix() string {
	id := uuid.NewString() // 36 chars, hex + hyphens
	return strings.ReplaceAll(id, "-", "")[:slugSuffixLength]
}
