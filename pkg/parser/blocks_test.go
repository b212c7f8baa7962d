package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blockStatement = `PRIVREDNA BANKA ZAGREB D.D.
Izvod broj 3/2024
1.HR1210010051863000160
ACME GRADNJA D.O.O.
Ilica 5, 10000 Zagreb
HRVATSKA
Uplata po ponudi 15/2024
01.02.2024 03.02.2024
2.500,00
2.HR5624000091110000000
PRIVREDNA BANKA ZAGREB D.D.
Naknada za vođenje računa
05.02.2024
5,00
KRAJ IZVATKA
`

func TestParseBlocks(t *testing.T) {
	candidates, layout := newTestParser().Parse(blockStatement)
	require.Equal(t, LayoutRowMarker, layout)
	require.Len(t, candidates, 2)

	first := candidates[0]
	assert.Equal(t, "ACME GRADNJA D.O.O.", first.Name)
	assert.Equal(t, "Ilica 5, 10000 Zagreb HRVATSKA", first.Address)
	assert.Equal(t, "Uplata po ponudi 15/2024", first.Description)
	assert.Equal(t, "01.02.2024", first.ValueDate)
	assert.Equal(t, "2.500,00", first.AmountText)
	assert.True(t, first.Amount.Equal(decimalFromString(t, "2500.00")))
	assert.Equal(t, "HR1210010051863000160", first.AccountRef)

	second := candidates[1]
	assert.Equal(t, "PRIVREDNA BANKA ZAGREB D.D.", second.Name)
	assert.Equal(t, "Naknada za vođenje računa", second.Description)
	assert.Equal(t, "05.02.2024", second.ValueDate)
	assert.Equal(t, "5,00", second.AmountText)
	assert.Equal(t, "HR5624000091110000000", second.AccountRef)
}

func TestParseBlocksDropsIncompleteBlock(t *testing.T) {
	// The first block never reaches an amount before the next marker.
	text := `1.HR1210010051863000160
ACME GRADNJA D.O.O.
01.02.2024
2.HR5624000091110000000
NOVA FIRMA D.O.O.
05.02.2024
2.500,00
3.HR1210010051863000199
`

	candidates, layout := newTestParser().Parse(text)
	require.Equal(t, LayoutRowMarker, layout)
	require.Len(t, candidates, 1)
	assert.Equal(t, "NOVA FIRMA D.O.O.", candidates[0].Name)
}

func TestParseBlocksEndMarkerDiscardsPartialBlock(t *testing.T) {
	// A complete block would follow, but the end marker cuts through it.
	text := `1.HR1210010051863000160
ACME GRADNJA D.O.O.
01.02.2024
KRAJ IZVATKA
2.500,00
`

	candidates, _ := newTestParser().Parse(text)
	assert.Empty(t, candidates)
}

func TestParseBlocksSeparatorClosesBlock(t *testing.T) {
	text := `1.HR1210010051863000160
ACME GRADNJA D.O.O.
Uplata po ponudi 15/2024
01.02.2024
2.500,00
___________________
KRAJ IZVATKA
`

	candidates, _ := newTestParser().Parse(text)
	require.Len(t, candidates, 1)
	assert.Equal(t, "ACME GRADNJA D.O.O.", candidates[0].Name)
}
