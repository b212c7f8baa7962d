// Package engine wires the ingestion pipeline: segment the extracted text,
// detect a layout, parse candidates, classify their direction and assign
// categories. One call, one ordered transaction list; no state survives
// between calls.
package engine

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/obrtnik/financije/pkg/categorizer"
	"github.com/obrtnik/financije/pkg/classifier"
	"github.com/obrtnik/financije/pkg/config"
	"github.com/obrtnik/financije/pkg/models"
	"github.com/obrtnik/financije/pkg/parser"
)

// defaultMinInputRunes is the shortest text worth parsing when the
// configuration does not say otherwise.
const defaultMinInputRunes = 100

// Engine is the bank-statement ingestion and classification pipeline.
type Engine struct {
	parser        *parser.Parser
	classifier    *classifier.Classifier
	categorizer   *categorizer.Categorizer
	minInputRunes int
	logger        *log.Logger
}

// New builds an Engine from configuration. The category rule table is
// loaded from the configured file, falling back to the built-in defaults.
func New(cfg *config.Config, logger *log.Logger) (*Engine, error) {
	var source categorizer.RuleSource = categorizer.Defaults()
	if cfg.CategoriesFile != "" {
		loaded, err := categorizer.LoadFile(cfg.CategoriesFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load category rules: %w", err)
		}
		source = loaded
	}

	clsCfg := classifier.DefaultConfig()
	clsCfg.OwnAccounts = cfg.OwnAccounts
	if cfg.IncomeThreshold > 0 {
		clsCfg.IncomeThreshold = decimal.NewFromFloat(cfg.IncomeThreshold)
	}
	if cfg.ExpenseThreshold > 0 {
		clsCfg.ExpenseThreshold = decimal.NewFromFloat(cfg.ExpenseThreshold)
	}

	minRunes := cfg.MinInputRunes
	if minRunes <= 0 {
		minRunes = defaultMinInputRunes
	}

	return &Engine{
		parser:        parser.New(logger),
		classifier:    classifier.New(clsCfg, logger),
		categorizer:   categorizer.New(source, logger),
		minInputRunes: minRunes,
		logger:        logger,
	}, nil
}

// Process runs the full pipeline over one document's extracted text. Shape
// problems never fail the call: the worst outcome is an empty list. The
// returned transactions keep candidate order; the caller may correct type
// and category before persisting.
func (e *Engine) Process(ctx context.Context, text string) ([]*models.Transaction, error) {
	if len([]rune(text)) < e.minInputRunes {
		e.logger.Warn("input text empty or too short, nothing to parse", "runes", len([]rune(text)))
		return nil, nil
	}

	candidates, layout := e.parser.Parse(text)

	transactions := make([]*models.Transaction, 0, len(candidates))
	for i := range candidates {
		cand := &candidates[i]
		txType := e.classifier.Classify(cand)
		description := cand.FullDescription()
		if description == "" {
			description = models.UnknownDescription
		}
		category := e.categorizer.Assign(ctx, description, cand.Amount, txType)
		date := e.parser.FormatDate(cand.ValueDate)

		transactions = append(transactions, &models.Transaction{
			ID:          models.TransactionID(date, description),
			Date:        date,
			Description: description,
			AmountText:  cand.AmountText,
			Amount:      cand.Amount,
			Type:        txType,
			Category:    category,
			AccountRef:  cand.AccountRef,
		})
	}

	if layout == parser.LayoutProximity {
		transactions = dedupe(transactions)
	}

	e.logger.Info("statement processed", "layout", layout, "transactions", len(transactions))
	return transactions, nil
}

// dedupe collapses proximity-strategy duplicates: candidates sharing date,
// amount text and inferred type are the same transaction paired with
// several nearby dates or amounts. First instance wins.
func dedupe(txs []*models.Transaction) []*models.Transaction {
	seen := make(map[string]bool, len(txs))
	out := txs[:0]
	for _, tx := range txs {
		key := tx.Date + "|" + tx.AmountText + "|" + string(tx.Type)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, tx)
	}
	return out
}
