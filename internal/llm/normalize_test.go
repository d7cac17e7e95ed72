package llm

import (
	"testing"

	"github.com/pourtrait/pourtrait-api/internal/engine"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T) engine.Context {
	t.Helper()
	req, err := engine.NewGenerationRequest(engine.RequestPayload{
		GeneratorKey: "cosmic",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		BirthMonth:   12,
		BirthDay:     10,
		BirthYear:    1985,
	})
	if err != nil {
		t.Fatalf("request construction failed: %v", err)
	}
	return engine.BuildContext(req)
}

func TestNormalize_CompleteObject(t *testing.T) {
	ctx := testContext(t)
	raw := map[string]any{
		"drinkName":     "The Midnight Meridian",
		"reason":        "Because the stars said so.",
		"ingredients":   []any{"2 oz scotch", " 1 oz espresso "},
		"instructions":  []any{"Stir.", "Serve."},
		"compatibility": "Capricorns welcome.",
	}

	bp := Normalize(raw, ctx)

	assert.Equal(t, "The Midnight Meridian", bp.DrinkName)
	assert.Equal(t, []string{"2 oz scotch", "1 oz espresso"}, bp.Ingredients)
	assert.Equal(t, []string{"Stir.", "Serve."}, bp.Instructions)
	assert.Equal(t, "Capricorns welcome.", bp.Compatibility)
}

func TestNormalize_MissingIngredients(t *testing.T) {
	ctx := testContext(t)
	raw := map[string]any{
		"drinkName": "Nameless",
		"reason":    "r",
	}

	bp := Normalize(raw, ctx)

	assert.NotNil(t, bp.Ingredients)
	assert.Empty(t, bp.Ingredients)
	assert.NotNil(t, bp.Instructions)
	assert.Empty(t, bp.Instructions)
}

func TestNormalize_MistypedFields(t *testing.T) {
	ctx := testContext(t)
	raw := map[string]any{
		"drinkName":     42,
		"reason":        nil,
		"ingredients":   "not an array",
		"instructions":  []any{1, "Stir."},
		"compatibility": "",
	}

	bp := Normalize(raw, ctx)

	// Non-string scalars fall back to context-derived defaults.
	assert.Contains(t, bp.DrinkName, ctx.Zodiac.Sign)
	assert.NotEmpty(t, bp.Reason)
	assert.NotEmpty(t, bp.Compatibility)

	// A mistyped array becomes empty; mixed elements are stringified.
	assert.Empty(t, bp.Ingredients)
	assert.Equal(t, []string{"1", "Stir."}, bp.Instructions)
}

func TestNormalize_EmptyObject(t *testing.T) {
	ctx := testContext(t)
	bp := Normalize(map[string]any{}, ctx)

	assert.NotEmpty(t, bp.DrinkName)
	assert.NotEmpty(t, bp.Reason)
	assert.NotEmpty(t, bp.Compatibility)
	assert.Empty(t, bp.Ingredients)
	assert.Empty(t, bp.Instructions)

	// Defaults are deterministic per context.
	again := Normalize(map[string]any{}, ctx)
	assert.Equal(t, bp, again)
}
