package llm

// RecipeOutputSchema is the JSON schema enforced on the completion response.
// It mirrors the RecipeBlueprint field names exactly.
func RecipeOutputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"drinkName": map[string]any{"type": "string"},
			"reason":    map[string]any{"type": "string"},
			"ingredients": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"instructions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"compatibility": map[string]any{"type": "string"},
		},
		"required":             []string{"drinkName", "reason", "ingredients", "instructions", "compatibility"},
		"additionalProperties": false,
	}
}
