package main

import (
	"time"

	"github.com/obrtnik/financije/pkg/csv"
	"github.com/obrtnik/financije/pkg/models"
)

type filters struct {
	startDate string
	endDate   string
	minAmount float64
	maxAmount float64
	txType    string
}

func (f *filters) toFilterFunc() csv.FilterFunc {
	return func(t *models.Transaction) bool {
		if f.startDate != "" {
			start, _ := time.Parse("2006-01-02", f.startDate)
			date, _ := time.Parse("2006-01-02", t.Date)
			if date.Before(start) {
				return false
			}
		}
		if f.endDate != "" {
			end, _ := time.Parse("2006-01-02", f.endDate)
			date, _ := time.Parse("2006-01-02", t.Date)
			if date.After(end) {
				return false
			}
		}
		if f.minAmount != 0 && t.Amount.InexactFloat64() < f.minAmount {
			return false
		}
		if f.maxAmount != 0 && t.Amount.InexactFloat64() > f.maxAmount {
			return false
		}
		if f.txType != "" && string(t.Type) != f.txType {
			return false
		}
		return true
	}
}
