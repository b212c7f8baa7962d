package models

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Type is the direction of a transaction relative to the statement owner.
type Type string

const (
	// TypePrihod marks funds received into the owner's account.
	TypePrihod Type = "prihod"
	// TypeRashod marks funds paid out of the owner's account.
	TypeRashod Type = "rashod"
)

// UnknownDescription is the placeholder used when no descriptive text could
// be recovered for a transaction.
const UnknownDescription = "Nepoznata transakcija"

// maxDescriptionRunes caps the composed description length.
const maxDescriptionRunes = 500

// Candidate is a provisionally extracted transaction, before direction and
// category assignment.
type Candidate struct {
	ValueDate   string // document-local, day-first (DD.MM.YYYY)
	AmountText  string // original locale-formatted token, kept for display and audit
	Amount      decimal.Decimal
	Name        string // counterparty, may be empty
	Address     string
	Description string
	AccountRef  string // IBAN-like token found in the block, classification signal only
	ColumnHint  Type   // set by the column-header layout, empty otherwise
	Line        int    // 0-based ordinal of the line the candidate was anchored to
}

// FullDescription joins counterparty name and narrative into the single
// description carried on the emitted transaction.
func (c *Candidate) FullDescription() string {
	var full string
	switch {
	case c.Name != "" && c.Description != "":
		full = c.Name + " - " + c.Description
	case c.Name != "":
		full = c.Name
	default:
		full = c.Description
	}
	if r := []rune(full); len(r) > maxDescriptionRunes {
		full = string(r[:maxDescriptionRunes])
	}
	return full
}

// Transaction is the engine's output record, handed to the caller for review
// before persistence. The engine never mutates it after emitting.
type Transaction struct {
	ID          string
	Date        string // ISO (YYYY-MM-DD)
	Description string
	AmountText  string
	Amount      decimal.Decimal
	Type        Type
	Category    string
	AccountRef  string
}

// TransactionID derives a stable short identifier from date and description,
// so review output rows keep the same IDs across runs.
func TransactionID(date, description string) string {
	input := fmt.Sprintf("%s-%s", date, strings.ToLower(strings.TrimSpace(description)))
	hash := sha256.Sum256([]byte(input))
	return fmt.Sprintf("%x", hash)[:8]
}

// CategoryRule maps a keyword set to a named category, scoped by direction.
// Rules are supplied externally and evaluated in table order.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Type     Type     `yaml:"type"`
	Keywords []string `yaml:"keywords"`
}

// Matches reports whether any keyword occurs in the description,
// case-insensitively.
func (r CategoryRule) Matches(description string) bool {
	descLower := strings.ToLower(description)
	for _, kw := range r.Keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(descLower, kw) {
			return true
		}
	}
	return false
}
