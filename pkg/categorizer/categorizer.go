// Package categorizer assigns a category to a classified transaction by
// matching its description against an externally supplied keyword table.
package categorizer

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/obrtnik/financije/pkg/models"
)

// Fixed fallback categories per direction.
const (
	DefaultIncomeCategory  = "Ostali prihodi"
	DefaultExpenseCategory = "Ostali rashodi"
)

// DefaultCategory returns the fixed fallback category for a direction.
func DefaultCategory(t models.Type) string {
	if t == models.TypePrihod {
		return DefaultIncomeCategory
	}
	return DefaultExpenseCategory
}

// RuleSource supplies the category rules scoped to a direction. The lookup
// may block (the table can live behind storage), which is why it takes a
// context; the categorizer itself stays synchronous and ordered.
type RuleSource interface {
	Rules(ctx context.Context, t models.Type) ([]models.CategoryRule, error)
}

// Categorizer resolves categories through a RuleSource. For a fixed rule
// table ordering the assignment is a pure function of (description, type).
type Categorizer struct {
	source RuleSource
	logger *log.Logger
}

// New creates a Categorizer. A nil source behaves like an empty table.
func New(source RuleSource, logger *log.Logger) *Categorizer {
	return &Categorizer{source: source, logger: logger}
}

// Assign returns the name of the first rule for the given type whose
// keywords match the description, or the fixed default for the type. A
// failing rule source also falls back to the default; categorization never
// blocks classification.
func (c *Categorizer) Assign(ctx context.Context, description string, amount decimal.Decimal, t models.Type) string {
	_ = amount // available to future rules, unused by keyword matching

	if c.source == nil {
		return DefaultCategory(t)
	}

	rules, err := c.source.Rules(ctx, t)
	if err != nil {
		c.logger.Warn("category rules unavailable, using default", "type", t, "error", err)
		return DefaultCategory(t)
	}

	for _, rule := range rules {
		if rule.Matches(description) {
			return rule.Name
		}
	}
	return DefaultCategory(t)
}
