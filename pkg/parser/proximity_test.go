package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obrtnik/financije/pkg/models"
)

func TestParseProximityPairsDateWithNearbyAmounts(t *testing.T) {
	text := `Promet po karticama
Placanje usluga servisa
15.03.2024
100,00
200,00
300,00
`

	candidates, layout := newTestParser().Parse(text)
	require.Equal(t, LayoutProximity, layout)
	require.Len(t, candidates, 3)

	for i, want := range []string{"100,00", "200,00", "300,00"} {
		assert.Equal(t, "15.03.2024", candidates[i].ValueDate)
		assert.Equal(t, want, candidates[i].AmountText)
		assert.Equal(t, "Placanje usluga servisa", candidates[i].Description)
	}
}

func TestParseProximityRespectsWindow(t *testing.T) {
	var filler string
	for i := 0; i < amountWindow+2; i++ {
		filler += "xxxx\n"
	}
	text := "15.03.2024\n" + filler + "100,00\n"

	candidates, layout := newTestParser().Parse(text)
	require.Equal(t, LayoutProximity, layout)
	assert.Empty(t, candidates)
}

func TestParseProximityDescriptionSentinel(t *testing.T) {
	text := "15.03.2024\n100,00\n"

	candidates, _ := newTestParser().Parse(text)
	require.Len(t, candidates, 1)
	assert.Equal(t, models.UnknownDescription, candidates[0].Description)
}

func TestParseProximitySkipsStructuralAndBoilerplateLines(t *testing.T) {
	// Header labels, locality names and the date itself must not become
	// the description; the narrative two lines away wins.
	text := `Datum valute
ZAGREB
15.03.2024
Isplata gotovine bankomat
100,00
`

	candidates, _ := newTestParser().Parse(text)
	require.Len(t, candidates, 1)
	assert.Equal(t, "Isplata gotovine bankomat", candidates[0].Description)
}
