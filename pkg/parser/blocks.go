package parser

import (
	"regexp"
	"strings"

	"github.com/obrtnik/financije/pkg/models"
)

// rbrRe matches a block-start marker: an ordinal number glued to an HR
// account reference, e.g. "1.HR1210010051863000160".
var rbrRe = regexp.MustCompile(`^(\d+)\.HR\d+`)

// blockWindow bounds how many lines a single block may span.
const blockWindow = 20

// minLineLen is the shortest line considered as a name/address/description.
const minLineLen = 5

// parseBlocks extracts candidates from a statement laid out as numbered
// blocks, one transaction each: marker, counterparty name, address lines,
// narrative, dates, then the amount on its own line.
func (p *Parser) parseBlocks(lines []Line, start int) []models.Candidate {
	var candidates []models.Candidate

	i := start
	for i < len(lines) {
		line := lines[i].Text

		if isEndOfStatement(line) {
			p.logger.Debug("end of statement", "line", i+1)
			break
		}

		if !rbrRe.MatchString(line) {
			i++
			continue
		}

		cand, next, terminated := p.collectBlock(lines, i)
		if terminated {
			// The end marker cuts through this block; whatever was
			// accumulated is discarded.
			p.logger.Debug("block cut off by end of statement", "line", i+1)
			break
		}
		if cand != nil {
			candidates = append(candidates, *cand)
		}
		if next <= i {
			next = i + 1
		}
		i = next
	}

	return candidates
}

// collectBlock walks one block starting at the marker line and classifies
// each following line as name, address, narrative, date list or amount. It
// returns the candidate (nil if the block was incomplete), the line index to
// resume at, and whether an end-of-statement marker interrupted the block.
func (p *Parser) collectBlock(lines []Line, markerIdx int) (*models.Candidate, int, bool) {
	marker := lines[markerIdx].Text
	accountRef := accountRefRe.FindString(marker)

	var (
		name        string
		address     string
		description string
		dates       []string
		amountText  string
	)

	next := markerIdx + 1
	for j := 1; j < blockWindow && markerIdx+j < len(lines); j++ {
		text := lines[markerIdx+j].Text
		next = markerIdx + j

		if isEndOfStatement(text) {
			return nil, next, true
		}
		if rbrRe.MatchString(text) {
			// Next block; resume on its marker line.
			break
		}
		if isSeparator(text) {
			next = markerIdx + j + 1
			break
		}

		// Locality cues alone do not disqualify a name ("PRIVREDNA BANKA
		// ZAGREB" is a name); only the bare country line does.
		if name == "" && isNarrativeLine(text) && !strings.Contains(text, "HRVATSKA") {
			name = text
			continue
		}

		if name != "" && description == "" && len(text) > minLineLen &&
			!accountRefRe.MatchString(text) &&
			!longDigitsRe.MatchString(text) &&
			!dateLineRe.MatchString(text) &&
			!amountLineRe.MatchString(text) &&
			isAddressLine(text) {
			if address != "" {
				address += " "
			}
			address += text
			continue
		}

		if name != "" && description == "" && isNarrativeLine(text) && !strings.Contains(text, "HRVATSKA") {
			description = text
			continue
		}

		if found := dateTokenRe.FindAllString(text, -1); len(found) > 0 && len(dates) == 0 {
			dates = found
			continue
		}

		if amountLineRe.MatchString(text) {
			amountText = text
			next = markerIdx + j + 1
			break
		}
	}

	if len(dates) == 0 || amountText == "" || (name == "" && description == "") {
		p.logger.Warn("incomplete block dropped",
			"line", markerIdx+1,
			"dates", len(dates),
			"amount", amountText != "",
			"narrative", name != "" || description != "")
		return nil, next, false
	}

	return &models.Candidate{
		ValueDate:   dates[0],
		AmountText:  amountText,
		Amount:      p.ParseAmount(amountText),
		Name:        name,
		Address:     address,
		Description: description,
		AccountRef:  accountRef,
		Line:        markerIdx,
	}, next, false
}

// isNarrativeLine reports whether a line is plain text long enough to be a
// counterparty name or a narrative: not a reference, not a number, not a
// date, not an amount. Account references are matched as tokens rather than
// by an "HR" prefix, so names like "HRVATSKI TELEKOM" stay eligible.
func isNarrativeLine(text string) bool {
	return len(text) > minLineLen &&
		!accountRefRe.MatchString(text) &&
		!numericLineRe.MatchString(text) &&
		!longDigitsRe.MatchString(text) &&
		!dateLineRe.MatchString(text) &&
		!amountLineRe.MatchString(text) &&
		letterRunRe.MatchString(text)
}

// isAddressLine recognizes street, postal-code and locality cues.
var postalCodeRe = regexp.MustCompile(`\d{5}`)

func isAddressLine(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "ulica") ||
		strings.Contains(lower, "cesta") ||
		strings.Contains(lower, "zagreb") ||
		lower == "hrvatska" ||
		postalCodeRe.MatchString(text)
}
