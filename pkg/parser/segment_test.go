package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentLines(t *testing.T) {
	lines := SegmentLines("  prva  \r\n\r\n\tdruga\t\n\n\ntreća\n")

	assert.Equal(t, []Line{
		{Text: "prva", Pos: 0},
		{Text: "druga", Pos: 1},
		{Text: "treća", Pos: 2},
	}, lines)
}

func TestSegmentLinesEmptyInput(t *testing.T) {
	assert.Empty(t, SegmentLines(""))
	assert.Empty(t, SegmentLines("\n\n  \n\t\n"))
}

func TestSegmentLinesDeterministic(t *testing.T) {
	const text = "a\n\nb\nc\n"
	assert.Equal(t, SegmentLines(text), SegmentLines(text))
}
