// Package classifier assigns each extracted transaction a direction using a
// strictly ordered rule cascade. The first matching rule wins; later rules
// are never evaluated. The order encodes hard-won precedence (a founding
// capital transfer from a ministry is income even though payments to the
// state are normally expenses), so it must not be rearranged.
package classifier

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/obrtnik/financije/pkg/models"
)

// Config carries the external signals and tuned constants of the cascade.
// The thresholds and the default are empirically fitted to the observed
// statements, not accounting rules; keep them configurable.
type Config struct {
	// OwnAccounts are the statement owner's account references. A block
	// whose account token contains one of these moved money into the
	// owner's account.
	OwnAccounts []string
	// IncomeThreshold: amounts above it default to income.
	IncomeThreshold decimal.Decimal
	// ExpenseThreshold: amounts below it default to expense.
	ExpenseThreshold decimal.Decimal
	// Default is the direction used when nothing else resolves.
	Default models.Type
}

// DefaultConfig returns the tuned constants of the source statements:
// >100 income, <50 expense, default income.
func DefaultConfig() Config {
	return Config{
		IncomeThreshold:  decimal.NewFromInt(100),
		ExpenseThreshold: decimal.NewFromInt(50),
		Default:          models.TypePrihod,
	}
}

// signals is the lowercased view of one candidate the rules match against.
type signals struct {
	full    string // composed name+description
	name    string
	desc    string // narrative only
	account string
	amount  decimal.Decimal
	hint    models.Type
}

// rule is one step of the cascade. match returns the decided direction and
// whether the rule fired.
type rule struct {
	name  string
	match func(c *Classifier, s signals) (models.Type, bool)
}

// Classifier evaluates the cascade. Stateless between calls.
type Classifier struct {
	cfg    Config
	rules  []rule
	logger *log.Logger
}

// New creates a Classifier with the given configuration.
func New(cfg Config, logger *log.Logger) *Classifier {
	if cfg.Default == "" {
		cfg.Default = models.TypePrihod
	}
	return &Classifier{cfg: cfg, rules: cascade, logger: logger}
}

// Classify runs the cascade over one candidate and returns its direction.
func (c *Classifier) Classify(cand *models.Candidate) models.Type {
	s := signals{
		full:    strings.ToLower(cand.FullDescription()),
		name:    strings.ToLower(cand.Name),
		desc:    strings.ToLower(cand.Description),
		account: cand.AccountRef,
		amount:  cand.Amount,
		hint:    cand.ColumnHint,
	}
	for _, r := range c.rules {
		if t, ok := r.match(c, s); ok {
			c.logger.Debug("type decided", "rule", r.name, "type", t, "description", cand.FullDescription())
			return t
		}
	}
	c.logger.Debug("type defaulted", "type", c.cfg.Default, "description", cand.FullDescription())
	return c.cfg.Default
}

// Keyword sets of the cascade.
var (
	foundingTerms      = []string{"prijenos temeljnog kapitala", "temeljni kapital", "osnivanje"}
	clientPaymentTerms = []string{"ponud", "faktur", "račun"}
	institutionTerms   = []string{"banka", "ministarstvo", "porezna", "republika"}
	bankFeeTerms       = []string{"naknada", "provizija", "troškovi"}
	interestOutTerms   = []string{"isplat", "virman", "klijentu"}
	governmentTerms    = []string{"ministarstvo", "porezna", "republika hrvatska"}
	publicDuesTerms    = []string{"uplata javnih davanja", "porez", "doprinos"}

	strongExpenseTerms = []string{
		"naknada za", "provizija", "trošak", "plaćanje računa",
		"kupio", "nabava", "uplata doprinosa", "uplata poreza",
	}
	strongIncomeTerms = []string{
		"uplata avansa", "uplata po", "plaćanje fakture",
		"primljeno od", "prihod od", "naplata",
	}
)

// minNameRunes is the shortest counterparty name treated as a real entity.
const minNameRunes = 10

// cascade is the ordered rule table. First match wins.
var cascade = []rule{
	{name: "founding-capital", match: func(_ *Classifier, s signals) (models.Type, bool) {
		if containsAny(s.full, foundingTerms) {
			return models.TypePrihod, true
		}
		return "", false
	}},
	{name: "client-payment", match: func(_ *Classifier, s signals) (models.Type, bool) {
		if (strings.Contains(s.desc, "uplata") || strings.Contains(s.desc, "avans")) &&
			containsAny(s.desc, clientPaymentTerms) {
			return models.TypePrihod, true
		}
		return "", false
	}},
	{name: "private-party", match: func(_ *Classifier, s signals) (models.Type, bool) {
		if s.name != "" && len([]rune(s.name)) > minNameRunes && !containsAny(s.name, institutionTerms) {
			return models.TypePrihod, true
		}
		return "", false
	}},
	{name: "bank", match: func(_ *Classifier, s signals) (models.Type, bool) {
		if !strings.Contains(s.name, "banka") && !strings.Contains(s.name, "pbz") {
			return "", false
		}
		if containsAny(s.full, bankFeeTerms) {
			return models.TypeRashod, true
		}
		if (strings.Contains(s.full, "kamata") || strings.Contains(s.full, "kamate")) &&
			containsAny(s.full, interestOutTerms) {
			return models.TypePrihod, true
		}
		return "", false
	}},
	{name: "government", match: func(_ *Classifier, s signals) (models.Type, bool) {
		if !containsAny(s.name, governmentTerms) && !containsAny(s.full, publicDuesTerms) {
			return "", false
		}
		// Founding-capital language outranks the state payee even here.
		if strings.Contains(s.full, "prijenos") || strings.Contains(s.full, "temeljni") {
			return models.TypePrihod, true
		}
		return models.TypeRashod, true
	}},
	{name: "strong-keywords", match: func(_ *Classifier, s signals) (models.Type, bool) {
		if containsAny(s.full, strongIncomeTerms) {
			return models.TypePrihod, true
		}
		if containsAny(s.full, strongExpenseTerms) {
			return models.TypeRashod, true
		}
		return "", false
	}},
	{name: "own-account", match: func(c *Classifier, s signals) (models.Type, bool) {
		if s.account == "" {
			return "", false
		}
		for _, own := range c.cfg.OwnAccounts {
			if own != "" && strings.Contains(s.account, own) {
				return models.TypePrihod, true
			}
		}
		return "", false
	}},
	{name: "column-hint", match: func(_ *Classifier, s signals) (models.Type, bool) {
		if s.hint != "" {
			return s.hint, true
		}
		return "", false
	}},
	{name: "magnitude", match: func(c *Classifier, s signals) (models.Type, bool) {
		if s.amount.GreaterThan(c.cfg.IncomeThreshold) {
			return models.TypePrihod, true
		}
		if s.amount.LessThan(c.cfg.ExpenseThreshold) {
			return models.TypeRashod, true
		}
		return "", false
	}},
}

func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
