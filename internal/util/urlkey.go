package util

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	// Match sequences of non-alphanumeric characters
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	// Match leading/trailing hyphens
	trimHyphens = regexp.MustCompile(`^-+|-+$`)
)

// Maximum length of the readable slug portion of a storage key.
const maxSlugLen = 60

// URLKey converts a page URL into a stable filesystem-safe storage key.
// The key is a truncated readable slug plus an FNV hash of the full URL, so
// two URLs that slug identically still get distinct keys.
func URLKey(url string) string {
	slug := slugify(url)
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
		slug = strings.TrimRight(slug, "-")
	}

	h := fnv.New32a()
	h.Write([]byte(url))

	if slug == "" {
		return fmt.Sprintf("%08x", h.Sum32())
	}
	return fmt.Sprintf("%s-%08x", slug, h.Sum32())
}

// slugify converts a string to a normalized lowercase slug.
//   - Converts to lowercase
//   - Normalizes unicode (removes accents)
//   - Replaces special characters with hyphens
func slugify(s string) string {
	s = strings.ToLower(s)
	s = removeAccents(s)
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	s = trimHyphens.ReplaceAllString(s, "")
	return s
}

// removeAccents removes diacritical marks from unicode characters.
func removeAccents(s string) string {
	// Decompose unicode characters (NFD normalization)
	result := norm.NFD.String(s)

	// Remove combining characters (accents, diacritics)
	var b strings.Builder
	for _, r := range result {
		if !unicode.Is(unicode.Mn, r) { // Mn = Mark, Nonspacing
			b.WriteRune(r)
		}
	}

	return b.String()
}
