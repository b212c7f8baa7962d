package categorizer

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/obrtnik/financije/pkg/models"
)

// Static is an in-memory rule table. It implements RuleSource by filtering
// on type while preserving table order.
type Static []models.CategoryRule

// Rules returns the rules scoped to t, in table order.
func (s Static) Rules(_ context.Context, t models.Type) ([]models.CategoryRule, error) {
	var scoped []models.CategoryRule
	for _, r := range s {
		if r.Type == t {
			scoped = append(scoped, r)
		}
	}
	return scoped, nil
}

// Defaults is the built-in category table, used when no rules file is
// configured.
func Defaults() Static {
	return Static{
		{Name: "Plaće", Type: models.TypePrihod, Keywords: []string{"plaća", "plata", "isplata plaće"}},
		{Name: "Prodaja", Type: models.TypePrihod, Keywords: []string{"prodaja", "račun", "faktura", "prihod"}},
		{Name: "Ostali prihodi", Type: models.TypePrihod, Keywords: []string{"prihod"}},
		{Name: "Računi", Type: models.TypeRashod, Keywords: []string{"račun", "struja", "voda", "plin", "telefon", "internet"}},
		{Name: "Najam", Type: models.TypeRashod, Keywords: []string{"najam", "renta", "stan"}},
		{Name: "Materijal", Type: models.TypeRashod, Keywords: []string{"materijal", "oprema", "sirovine"}},
		{Name: "Usluge", Type: models.TypeRashod, Keywords: []string{"usluga", "servis", "održavanje"}},
		{Name: "Porezi", Type: models.TypeRashod, Keywords: []string{"porez", "PDV", "prirez"}},
		{Name: "Ostali rashodi", Type: models.TypeRashod, Keywords: []string{"rashod"}},
	}
}

// ruleFile is the shape of a categories YAML file.
type ruleFile struct {
	Categories []models.CategoryRule `yaml:"categories"`
}

// LoadFile reads a category rule table from a YAML file.
func LoadFile(path string) (Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read categories file: %w", err)
	}

	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse categories yaml: %w", err)
	}
	if len(f.Categories) == 0 {
		return nil, fmt.Errorf("categories file %s has no rules", path)
	}
	return Static(f.Categories), nil
}
