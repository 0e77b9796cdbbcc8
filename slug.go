package blogsmith

import (
	"strings"
	"unicode"
)

// Slugify creates a filename-safe slug from a title.
// Converts to lowercase, replaces spaces with hyphens, removes special chars.
// Returns fallback if nothing usable remains.
func Slugify(title, fallback string) string {
	var sb strings.Builder
	prevHyphen := false

	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			prevHyphen = false
		} else if unicode.IsSpace(r) || r == '-' || r == '_' {
			if !prevHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
				prevHyphen = true
			}
		}
	}

	result := strings.TrimSuffix(sb.String(), "-")
	if result == "" {
		return fallback
	}
	return result
}
