package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt_EmbedsContextFields(t *testing.T) {
	ctx := testContext(t)
	prompt := BuildPrompt(ctx)

	assert.Contains(t, prompt, "Ada")
	assert.Contains(t, prompt, "Lovelace")
	assert.Contains(t, prompt, "12/10/1985")
	assert.Contains(t, prompt, ctx.Zodiac.Sign)
	assert.Contains(t, prompt, ctx.Zodiac.Element)
	assert.Contains(t, prompt, ctx.Zodiac.BaseSpirit)
	assert.Contains(t, prompt, "Cosmic Mixologist")
	assert.Contains(t, prompt, string(ctx.Lineage))
	assert.Contains(t, prompt, ctx.Initials)
	assert.Contains(t, prompt, ctx.Seed)
}

func TestRecipeOutputSchema_FieldNames(t *testing.T) {
	schema := RecipeOutputSchema()

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatal("schema has no properties object")
	}
	for _, field := range []string{"drinkName", "reason", "ingredients", "instructions", "compatibility"} {
		assert.Contains(t, props, field)
	}

	required, ok := schema["required"].([]string)
	if !ok {
		t.Fatal("schema has no required list")
	}
	assert.Len(t, required, 5)
}
