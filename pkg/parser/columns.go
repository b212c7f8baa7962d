package parser

import (
	"strings"

	"github.com/obrtnik/financije/pkg/models"
)

// backscanWindow bounds how far back the column strategy looks for a usable
// description line.
const backscanWindow = 3

// parseColumns extracts candidates from a statement whose rows sit under a
// debit/credit column header. Every money token on a row becomes one
// candidate; the column the token sits under becomes its direction hint.
func (p *Parser) parseColumns(lines []Line, hdr columnHeader) []models.Candidate {
	var candidates []models.Candidate

	for i := hdr.pos + 1; i < len(lines); i++ {
		line := lines[i]
		if isEndOfStatement(line.Text) {
			p.logger.Debug("end of statement", "line", i+1)
			break
		}
		if _, ok := matchColumnHeader(line); ok {
			// Header recurrence terminates the window.
			p.logger.Debug("header recurrence", "line", i+1)
			break
		}

		dateTok, dateOff := firstDate(line.Text)
		if dateTok == "" {
			continue
		}

		amounts := amountTokenRe.FindAllStringIndex(line.Text, -1)
		if len(amounts) == 0 {
			continue
		}

		description := p.rowDescription(lines, i, dateOff)
		accountRef := accountRefRe.FindString(line.Text)

		for _, loc := range amounts {
			tok := line.Text[loc[0]:loc[1]]
			candidates = append(candidates, models.Candidate{
				ValueDate:   dateTok,
				AmountText:  tok,
				Amount:      p.ParseAmount(tok),
				Description: description,
				AccountRef:  accountRef,
				ColumnHint:  columnFor(loc[0], len(line.Text), hdr),
				Line:        line.Pos,
			})
		}
	}

	return candidates
}

// columnFor assigns an amount offset to the debit or credit column. With
// known label offsets the nearest label wins; otherwise the line is split in
// half, left = debit, right = credit.
func columnFor(off, lineLen int, hdr columnHeader) models.Type {
	if hdr.debitOff >= 0 && hdr.creditOff >= 0 {
		if abs(off-hdr.debitOff) <= abs(off-hdr.creditOff) {
			return models.TypeRashod
		}
		return models.TypePrihod
	}
	if off < lineLen/2 {
		return models.TypeRashod
	}
	return models.TypePrihod
}

// rowDescription recovers the narrative for a row: the text preceding the
// first date, minus account references, bare numbers and locality
// boilerplate. When that leaves nothing usable it scans backward a few lines
// for the nearest line with real words.
func (p *Parser) rowDescription(lines []Line, row, dateOff int) string {
	prefix := lines[row].Text[:dateOff]
	if desc := cleanDescription(prefix); desc != "" {
		return desc
	}

	for back := 1; back <= backscanWindow && row-back >= 0; back++ {
		prev := lines[row-back]
		if _, ok := matchColumnHeader(prev); ok {
			continue
		}
		if accountRefRe.MatchString(prev.Text) || dateLineRe.MatchString(prev.Text) ||
			amountLineRe.MatchString(prev.Text) || isBoilerplate(prev.Text) {
			continue
		}
		if letterRunRe.MatchString(prev.Text) {
			return strings.TrimSpace(prev.Text)
		}
	}

	return models.UnknownDescription
}

// cleanDescription drops tokens that are account references, pure numbers or
// locality boilerplate, and returns what remains if it still contains words.
func cleanDescription(s string) string {
	var kept []string
	for _, tok := range strings.Fields(s) {
		switch {
		case accountRefRe.MatchString(tok):
		case numericLineRe.MatchString(tok):
		case isBoilerplate(tok):
		default:
			kept = append(kept, tok)
		}
	}
	out := strings.Join(kept, " ")
	if !letterRunRe.MatchString(out) {
		return ""
	}
	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
