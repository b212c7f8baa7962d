package parser

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		in   string
		want string
	}{
		{"2.500,00", "2500.00"},
		{"16,85", "16.85"},
		{"5,00", "5.00"},
		{"1.234.567,89", "1234567.89"},
		{"-2.500,00", "2500.00"},
		{"+16,85", "16.85"},
		{" 100,00 ", "100.00"},
	}
	for _, tt := range tests {
		got := p.ParseAmount(tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"ParseAmount(%q) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestParseAmountNeverNegative(t *testing.T) {
	p := newTestParser()
	assert.False(t, p.ParseAmount("-999,99").IsNegative())
}

func TestParseAmountUnparseableYieldsZero(t *testing.T) {
	p := newTestParser()

	for _, in := range []string{"", "abc", "12,34,56ab", "--"} {
		got := p.ParseAmount(in)
		assert.True(t, got.IsZero(), "ParseAmount(%q) = %s, want 0", in, got)
	}
}

func TestFormatDate(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		in   string
		want string
	}{
		{"01.02.2024", "2024-02-01"},
		{"5.3.2024", "2024-03-05"},
		{"31.12.1999", "1999-12-31"},
		{"17.03.2025", "2025-03-17"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.FormatDate(tt.in), "FormatDate(%q)", tt.in)
	}
}

func TestFormatDateInvalidFallsBackToToday(t *testing.T) {
	p := newTestParser()
	today := time.Now().Format("2006-01-02")

	for _, in := range []string{"", "not-a-date", "32.01.2024", "31.02.2024", "01.13.2024"} {
		assert.Equal(t, today, p.FormatDate(in), "FormatDate(%q)", in)
	}
}
