package tablestyle

import "strings"

// Wiki dialect markers.
const (
	// HeaderMarker is appended to the header row before its newline.
	HeaderMarker = "h"

	// LineBreak replaces a newline inside a table cell.
	LineBreak = "&br;"

	separatorPrefix = "| ---"
	rowEnd          = "|"
)

// Convert rewrites Markdown table text in the wiki dialect. It is a pure
// function; the empty string converts to the empty string.
//
// Lines are split on "\n" and every piece is kept, so text ending in a
// newline produces a final empty line, which converts to a trailing
// LineBreak.
func Convert(text string) string {
	if text == "" {
		return ""
	}

	var sb strings.Builder
	sb.Grow(len(text) + len(text)/8)

	header := true
	for _, line := range strings.Split(text, "\n") {
		switch {
		case isSeparator(line):
			// Header/body divider, meaningless in the wiki dialect.
		case isEndOfRow(line):
			sb.WriteString(line)
			if header {
				sb.WriteString(HeaderMarker)
				header = false
			}
			sb.WriteByte('\n')
		default:
			sb.WriteString(line)
			sb.WriteString(LineBreak)
		}
	}
	return sb.String()
}

func isSeparator(line string) bool {
	return strings.HasPrefix(line, separatorPrefix)
}

func isEndOfRow(line string) bool {
	return strings.HasSuffix(line, rowEnd)
}
