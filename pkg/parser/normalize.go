package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Token patterns of the PBZ statement locale: amounts use "." for thousands
// and "," for decimals, dates are day-first and dot-separated.
var (
	amountTokenRe = regexp.MustCompile(`\d{1,3}(?:\.\d{3})*,\d{2}`)
	amountLineRe  = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})*,\d{2}$`)
	dateTokenRe   = regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{4}`)
	dateLineRe    = regexp.MustCompile(`^\d{1,2}\.\d{1,2}\.\d{4}$`)
	accountRefRe  = regexp.MustCompile(`HR\d{19,}`)
	numericLineRe = regexp.MustCompile(`^\d+$`)
	longDigitsRe  = regexp.MustCompile(`^\d{10,}$`)
	letterRunRe   = regexp.MustCompile(`\p{L}{4,}`)
)

// ParseAmount converts a locale-formatted token like "2.500,00" into its
// decimal magnitude. A leading sign is stripped; sign never survives here,
// direction is carried by the transaction type. An unparseable token yields
// zero and a data-quality log event, never an error.
func (p *Parser) ParseAmount(s string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	cleaned = strings.TrimPrefix(cleaned, "-")
	cleaned = strings.TrimPrefix(cleaned, "+")

	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		p.logger.Warn("unparseable amount, using zero", "amount", s)
		return decimal.Zero
	}
	return value.Abs()
}

// FormatDate converts a day-first dot-separated date ("5.3.2024") into ISO
// form ("2024-03-05"). Invalid input falls back to the current processing
// date, surfaced as a warning rather than failing the parse.
func (p *Parser) FormatDate(s string) string {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 3 {
		day, month, year := parts[0], parts[1], parts[2]
		if len(day) == 1 {
			day = "0" + day
		}
		if len(month) == 1 {
			month = "0" + month
		}
		iso := fmt.Sprintf("%s-%s-%s", year, month, day)
		if _, err := time.Parse("2006-01-02", iso); err == nil {
			return iso
		}
	}
	p.logger.Warn("unparseable date, using current date", "date", s)
	return time.Now().Format("2006-01-02")
}

// firstDate returns the first date token in the line and its byte offset,
// or "" and -1.
func firstDate(line string) (string, int) {
	loc := dateTokenRe.FindStringIndex(line)
	if loc == nil {
		return "", -1
	}
	return line[loc[0]:loc[1]], loc[0]
}

// isEndOfStatement reports whether the line is the statement terminator.
func isEndOfStatement(line string) bool {
	return strings.Contains(line, "KRAJ") && strings.Contains(line, "IZVATKA")
}

// isSeparator matches the horizontal rules PBZ prints between blocks.
func isSeparator(line string) bool {
	return strings.HasPrefix(line, "___") || strings.HasPrefix(line, "---")
}

// localityTerms is the locality/country boilerplate stripped from
// descriptions and never treated as descriptive text.
var localityTerms = []string{"hrvatska", "zagreb", "ulica", "cesta"}

func isBoilerplate(s string) bool {
	lower := strings.ToLower(s)
	for _, term := range localityTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}
