package render

import (
	"slices"
	"strings"
)

// Artifact format names.
const (
	FormatText = "txt"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// Formats lists every supported artifact format.
var Formats = []string{FormatText, FormatPNG, FormatJSON, FormatSVG}

// ValidFormat reports whether f names a supported format.
func ValidFormat(f string) bool { return slices.Contains(Formats, f) }

// ContentType returns the MIME type served for format f.
func ContentType(f string) string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJSON:
		return "application/json"
	case FormatSVG:
		return "image/svg+xml"
	default:
		return "text/plain; charset=utf-8"
	}
}

// ParseFormats splits a comma separated format list, trimming blanks and
// dropping duplicates.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}
