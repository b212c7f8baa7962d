package parser

import (
	"strings"

	"github.com/obrtnik/financije/pkg/models"
)

// Window bounds of the proximity strategy: an amount belongs to a date when
// their lines are at most amountWindow apart; the description is looked for
// within descWindow lines of the date.
const (
	amountWindow = 10
	descWindow   = 5
)

// occurrence is a date or amount token tagged with its line ordinal.
type occurrence struct {
	text string
	pos  int
}

// parseProximity is the last-resort strategy: no layout was recognized, so
// every date is paired with every amount within the window. It is
// deliberately aggressive about not losing transactions; the duplicates it
// introduces are collapsed after classification.
func (p *Parser) parseProximity(lines []Line) []models.Candidate {
	var dates, amounts []occurrence
	for _, line := range lines {
		for _, tok := range dateTokenRe.FindAllString(line.Text, -1) {
			dates = append(dates, occurrence{text: tok, pos: line.Pos})
		}
		for _, tok := range amountTokenRe.FindAllString(line.Text, -1) {
			amounts = append(amounts, occurrence{text: tok, pos: line.Pos})
		}
	}
	p.logger.Debug("proximity scan", "dates", len(dates), "amounts", len(amounts))

	var candidates []models.Candidate
	for _, d := range dates {
		description := p.nearbyDescription(lines, d.pos)
		for _, a := range amounts {
			if abs(a.pos-d.pos) > amountWindow {
				continue
			}
			candidates = append(candidates, models.Candidate{
				ValueDate:   d.text,
				AmountText:  a.text,
				Amount:      p.ParseAmount(a.text),
				Description: description,
				Line:        d.pos,
			})
		}
	}
	return candidates
}

// nearbyDescription finds the closest line around pos with a run of at least
// four letters that is not itself a date, an amount, a structural label or
// locality boilerplate. Nearer lines win; at equal distance the later line
// is preferred, since narratives tend to follow their dates.
func (p *Parser) nearbyDescription(lines []Line, pos int) string {
	for d := 0; d <= descWindow; d++ {
		probes := []int{pos + d}
		if d > 0 {
			probes = append(probes, pos-d)
		}
		for _, idx := range probes {
			if idx < 0 || idx >= len(lines) {
				continue
			}
			if text, ok := descriptiveText(lines[idx].Text); ok {
				return text
			}
		}
	}
	return models.UnknownDescription
}

// structuralTerms are row/account/reference/date labels that carry no
// narrative content.
// Bare "račun" is deliberately absent: it is a header label but also a word
// real narratives use ("plaćanje računa").
var structuralTerms = []string{"rbr", "referenca", "broj računa", "datum", "iznos", "izvod"}

// descriptiveText strips dates and amounts from the line and reports whether
// real words remain.
func descriptiveText(text string) (string, bool) {
	if dateLineRe.MatchString(text) || amountLineRe.MatchString(text) {
		return "", false
	}
	if isBoilerplate(text) {
		return "", false
	}
	lower := strings.ToLower(text)
	for _, term := range structuralTerms {
		if strings.Contains(lower, term) {
			return "", false
		}
	}

	stripped := dateTokenRe.ReplaceAllString(text, " ")
	stripped = amountTokenRe.ReplaceAllString(stripped, " ")
	stripped = strings.TrimSpace(stripped)
	if !letterRunRe.MatchString(stripped) {
		return "", false
	}
	return stripped, true
}
