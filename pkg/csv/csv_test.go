package csv

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrtnik/financije/pkg/models"
)

func sampleTransactions() []*models.Transaction {
	return []*models.Transaction{
		{
			ID:          "a1b2c3d4",
			Date:        "2024-02-01",
			Description: "Naknada za vođenje računa",
			AmountText:  "5,00",
			Amount:      decimal.RequireFromString("5"),
			Type:        models.TypeRashod,
			Category:    "Računi",
			AccountRef:  "HR1210010051863000160",
		},
		{
			ID:          "e5f6a7b8",
			Date:        "2024-03-05",
			Description: "Uplata po ponudi 15/2024",
			AmountText:  "2.500,00",
			Amount:      decimal.RequireFromString("2500"),
			Type:        models.TypePrihod,
			Category:    "Prodaja",
		},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleTransactions(), nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Date,Description,Amount,Original,Type,Category,Reference", lines[0])
	assert.Equal(t, "a1b2c3d4,2024-02-01,Naknada za vođenje računa,5.00,\"5,00\",rashod,Računi,HR1210010051863000160", lines[1])
	assert.Equal(t, "e5f6a7b8,2024-03-05,Uplata po ponudi 15/2024,2500.00,\"2.500,00\",prihod,Prodaja,", lines[2])
}

func TestWriteAppliesFilter(t *testing.T) {
	var buf bytes.Buffer
	onlyIncome := func(tx *models.Transaction) bool { return tx.Type == models.TypePrihod }
	require.NoError(t, Write(&buf, sampleTransactions(), onlyIncome))

	out := buf.String()
	assert.NotContains(t, out, "rashod")
	assert.Contains(t, out, "Uplata po ponudi 15/2024")
}

func TestWriteEmptyStillEmitsHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, nil))
	assert.Equal(t, "ID,Date,Description,Amount,Original,Type,Category,Reference\n", buf.String())
}
