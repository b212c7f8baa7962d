// Package csv renders engine output as a review CSV, one row per extracted
// transaction, for the human confirmation step.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/obrtnik/financije/pkg/models"
)

// FilterFunc decides whether a transaction makes it into the output.
type FilterFunc func(*models.Transaction) bool

var header = []string{"ID", "Date", "Description", "Amount", "Original", "Type", "Category", "Reference"}

// Write renders the transactions that pass the filter. A nil filter keeps
// everything.
func Write(w io.Writer, txs []*models.Transaction, filter FilterFunc) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, t := range txs {
		if filter != nil && !filter(t) {
			continue
		}
		record := []string{
			t.ID,
			t.Date,
			t.Description,
			t.Amount.StringFixed(2),
			t.AmountText,
			string(t.Type),
			t.Category,
			t.AccountRef,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("error writing transaction: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
