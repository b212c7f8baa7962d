package parser

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/obrtnik/financije/pkg/models"
)

// Layout is the structural convention a statement uses to lay out its
// transaction rows.
type Layout string

const (
	// LayoutColumns is a statement with a header row naming the debit and
	// credit columns. Most reliable direction signal.
	LayoutColumns Layout = "columns"
	// LayoutRowMarker is a statement with numbered per-transaction blocks
	// ("1.HR12...."). Reliable block boundaries, weaker direction signal.
	LayoutRowMarker Layout = "row-marker"
	// LayoutProximity is the last-resort layout: no structure detected,
	// dates and amounts are paired by line distance.
	LayoutProximity Layout = "proximity"
)

// headerScanWindow bounds the header search to the top of the document.
const headerScanWindow = 30

// Column label sets of the PBZ statement format. Either label of a set
// identifies its column.
var (
	debitLabels  = []string{"isplata", "duguje"}
	creditLabels = []string{"uplata", "potražuje"}
)

// Parser turns extracted statement text into transaction candidates. It is
// stateless between calls: every Parse walks the text from scratch.
type Parser struct {
	logger *log.Logger
}

// New creates a Parser.
func New(logger *log.Logger) *Parser {
	return &Parser{logger: logger}
}

// columnHeader records where the column-header line sits and the offsets of
// the two column labels within it. Offsets are -1 when unknown.
type columnHeader struct {
	pos       int
	debitOff  int
	creditOff int
}

// detection is the outcome of layout detection.
type detection struct {
	layout Layout
	header columnHeader // valid for LayoutColumns
	start  int          // first block marker line, valid for LayoutRowMarker
}

// Parse segments the text, picks a layout and runs the matching strategy.
// It returns the candidates in document order along with the selected
// layout, so the caller knows how much to trust the output.
func (p *Parser) Parse(text string) ([]models.Candidate, Layout) {
	lines := SegmentLines(text)
	det := p.detectLayout(lines)
	p.logger.Info("layout selected", "layout", det.layout, "lines", len(lines))

	switch det.layout {
	case LayoutColumns:
		return p.parseColumns(lines, det.header), det.layout
	case LayoutRowMarker:
		return p.parseBlocks(lines, det.start), det.layout
	default:
		return p.parseProximity(lines), det.layout
	}
}

// detectLayout scans for structural markers in precision order: the
// column-header layout first, the row-marker layout second, proximity last.
func (p *Parser) detectLayout(lines []Line) detection {
	limit := headerScanWindow
	if len(lines) < limit {
		limit = len(lines)
	}
	for i := 0; i < limit; i++ {
		if hdr, ok := matchColumnHeader(lines[i]); ok {
			p.logger.Debug("column header found", "line", i+1, "text", lines[i].Text)
			return detection{layout: LayoutColumns, header: hdr}
		}
	}

	for i, line := range lines {
		if rbrRe.MatchString(line.Text) {
			p.logger.Debug("first block marker found", "line", i+1, "text", line.Text)
			return detection{layout: LayoutRowMarker, start: i}
		}
	}

	return detection{layout: LayoutProximity}
}

// matchColumnHeader reports whether the line names both a debit and a credit
// column, and records the byte offsets of the matched labels.
func matchColumnHeader(line Line) (columnHeader, bool) {
	lower := strings.ToLower(line.Text)
	debitOff := indexAny(lower, debitLabels)
	creditOff := indexAny(lower, creditLabels)
	if debitOff < 0 || creditOff < 0 {
		return columnHeader{}, false
	}
	return columnHeader{pos: line.Pos, debitOff: debitOff, creditOff: creditOff}, true
}

// indexAny returns the offset of the first label found in s, or -1.
func indexAny(s string, labels []string) int {
	for _, label := range labels {
		if off := strings.Index(s, label); off >= 0 {
			return off
		}
	}
	return -1
}
