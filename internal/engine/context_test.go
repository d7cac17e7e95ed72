package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupZodiac(t *testing.T) {
	tests := []struct {
		name  string
		month int
		day   int
		want  string
	}{
		{"christmas is capricorn", 12, 25, "Capricorn"},
		{"solstice is cancer", 6, 21, "Cancer"},
		{"sagittarius upper edge", 12, 21, "Sagittarius"},
		{"capricorn lower edge", 12, 22, "Capricorn"},
		{"capricorn wraps into january", 1, 10, "Capricorn"},
		{"aquarius lower edge", 1, 20, "Aquarius"},
		{"pisces upper edge", 3, 20, "Pisces"},
		{"aries lower edge", 3, 21, "Aries"},
		{"mid leo", 8, 1, "Leo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LookupZodiac(tt.month, tt.day)
			assert.Equal(t, tt.want, got.Sign)
			assert.NotEmpty(t, got.BaseSpirit)
			assert.NotEmpty(t, got.Accents)
			assert.NotEmpty(t, got.Garnishes)
		})
	}
}

func TestNumerologyValue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"AB reduces to 3", "AB", 3},
		{"AI sums to ten reduces to 1", "AI", 1},
		{"lowercase equivalent", "ab", 3},
		{"non-letters stripped", "A-B!", 3},
		{"single letter", "I", 9},
		{"no letters falls back", "1234", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NumerologyValue(tt.in))
		})
	}
}

func TestNumerologyValue_AlwaysSingleDigit(t *testing.T) {
	names := []string{"Wolfgang Amadeus Mozart", "X", "Zzzzzzzzzz", "Jo", "Anna-Maria O'Keeffe"}
	for _, name := range names {
		v := NumerologyValue(name)
		assert.GreaterOrEqual(t, v, 1, "name %q", name)
		assert.LessOrEqual(t, v, 9, "name %q", name)
	}
}

func TestInferLineage(t *testing.T) {
	tests := []struct {
		surname string
		want    Lineage
	}{
		{"Paolini", LineageItalian},
		{"Moretti", LineageItalian},
		{"O'Malley", LineageIrish},
		{"McGregor", LineageIrish},
		{"Martinez", LineageSpanish},
		{"Yamamoto", LineageJapanese},
		{"Fujikawa", LineageJapanese},
		{"Moreau", LineageFrench},
		{"Larsson", LineageNordic},
		{"Lindberg", LineageNordic},
		{"Smith", LineageClassic},
		{"", LineageClassic},
	}

	for _, tt := range tests {
		t.Run(tt.surname, func(t *testing.T) {
			assert.Equal(t, tt.want, InferLineage(tt.surname))
		})
	}
}

func TestBuildContext_Deterministic(t *testing.T) {
	req := GenerationRequest{
		GeneratorKey: KeyCosmic,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		BirthMonth:   12,
		BirthDay:     10,
		BirthYear:    1985,
	}

	a := BuildContext(req)
	b := BuildContext(req)

	assert.Equal(t, a.Seed, b.Seed)
	assert.Equal(t, a.Zodiac, b.Zodiac)
	assert.Equal(t, a.Numerology, b.Numerology)
	assert.Equal(t, a.Initials, b.Initials)
	assert.Equal(t, a.Lineage, b.Lineage)
	assert.Equal(t, a.DayCount, b.DayCount)

	// The bound streams are distinct instances but must draw equal values.
	for i := 0; i < 50; i++ {
		require.Equal(t, a.Rand.Next(), b.Rand.Next(), "draw %d diverged", i)
	}
}

func TestBuildContext_Fields(t *testing.T) {
	req := GenerationRequest{
		GeneratorKey: KeyOracle,
		FirstName:    "Kenji",
		LastName:     "Morishima",
		BirthMonth:   6,
		BirthDay:     21,
		BirthYear:    1990,
	}

	ctx := BuildContext(req)

	assert.Equal(t, "Cancer", ctx.Zodiac.Sign)
	assert.Equal(t, "KM", ctx.Initials)
	assert.Equal(t, LineageJapanese, ctx.Lineage)
	assert.Equal(t, "oracle|Kenji|Morishima|6|21|1990", ctx.Seed)
	assert.Greater(t, ctx.DayCount, 0)
	require.NotNil(t, ctx.Rand)
}

func TestBuildContext_SingleCharacterName(t *testing.T) {
	req := GenerationRequest{
		GeneratorKey: KeyAlchemist,
		FirstName:    "X",
		LastName:     "Q",
		BirthMonth:   1,
		BirthDay:     1,
		BirthYear:    2000,
	}

	ctx := BuildContext(req)
	assert.Equal(t, "XQ", ctx.Initials)
}
