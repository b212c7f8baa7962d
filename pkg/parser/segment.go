package parser

import "strings"

// Line is a trimmed, non-empty line of the document together with its
// 0-based position in the segmented sequence. Later stages use the position
// to bound "nearby" searches.
type Line struct {
	Text string
	Pos  int
}

// SegmentLines splits raw extracted text on line boundaries, trims each line
// and drops empty ones. The same input always yields the same output.
func SegmentLines(text string) []Line {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		lines = append(lines, Line{Text: l, Pos: len(lines)})
	}
	return lines
}
