package blogsmith

import (
	"encoding/json"
	"regexp"
	"strings"
)

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json(.*?)```")
	anyFenceRe  = regexp.MustCompile("(?s)```(.*?)```")
)

// ExtractJSON returns the substring of text most likely to parse as a JSON
// object. Model replies often wrap the payload in prose or code fences.
//
// Candidates are tried in order and the first hit wins:
//  1. the whole trimmed text, if it already parses
//  2. the body of the first ```json fence
//  3. the body of the first fence that looks like an object
//  4. the span from the first '{' to the last '}'
//  5. the trimmed text as-is
//
// The result is not guaranteed to parse; callers must handle failure.
func ExtractJSON(text string) string {
	trimmed := strings.TrimSpace(text)

	if json.Valid([]byte(trimmed)) {
		return trimmed
	}

	if m := jsonFenceRe.FindStringSubmatch(trimmed); m != nil {
		return strings.TrimSpace(m[1])
	}

	for _, m := range anyFenceRe.FindAllStringSubmatch(trimmed, -1) {
		inner := strings.TrimSpace(m[1])
		if strings.HasPrefix(inner, "{") && strings.HasSuffix(inner, "}") {
			return inner
		}
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start != -1 && end > start {
		return trimmed[start : end+1]
	}

	return trimmed
}
