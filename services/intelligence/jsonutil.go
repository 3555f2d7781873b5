package ai

import "regexp"

// Models frequently wrap JSON replies in markdown fences and leave
// trailing commas behind. These helpers recover the payload before it
// is handed to json.Unmarshal.
var (
	fencedObject  = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\{.*\\})\\s*```")
	fencedArray   = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(\\[.*\\])\\s*```")
	bareObject    = regexp.MustCompile(`(?s)\{.*\}`)
	bareArray     = regexp.MustCompile(`(?s)\[.*\]`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// ExtractJSON pulls a JSON object out of a model reply. Returns the
// empty string when no object can be found.
func ExtractJSON(content string) string {
	if m := fencedObject.FindStringSubmatch(content); len(m) > 1 {
		return dropTrailingCommas(m[1])
	}
	if m := bareObject.FindString(content); m != "" {
		return dropTrailingCommas(m)
	}
	return ""
}

// ExtractJSONArray pulls a JSON array out of a model reply. Returns the
// empty string when no array can be found.
func ExtractJSONArray(content string) string {
	if m := fencedArray.FindStringSubmatch(content); len(m) > 1 {
		return dropTrailingCommas(m[1])
	}
	if m := bareArray.FindString(content); m != "" {
		return dropTrailingCommas(m)
	}
	return ""
}

func dropTrailingCommas(raw string) string {
	return trailingComma.ReplaceAllString(raw, "$1")
}
