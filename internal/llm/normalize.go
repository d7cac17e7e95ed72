package llm

import (
	"fmt"
	"strings"

	"github.com/pourtrait/pourtrait-api/internal/engine"
	"github.com/pourtrait/pourtrait-api/internal/models"
)

// Normalize coerces a raw decoded response object into a RecipeBlueprint.
// Missing or mistyped string fields get deterministic context-derived
// defaults; missing or mistyped arrays become empty slices, never errors.
func Normalize(raw map[string]any, ctx engine.Context) models.RecipeBlueprint {
	return models.RecipeBlueprint{
		DrinkName:     stringOr(raw["drinkName"], defaultDrinkName(ctx)),
		Reason:        stringOr(raw["reason"], defaultReason(ctx)),
		Ingredients:   stringSlice(raw["ingredients"]),
		Instructions:  stringSlice(raw["instructions"]),
		Compatibility: stringOr(raw["compatibility"], defaultCompatibility(ctx)),
	}
}

func defaultDrinkName(ctx engine.Context) string {
	return fmt.Sprintf("The %s %s", ctx.Zodiac.Sign, "Signature")
}

func defaultReason(ctx engine.Context) string {
	return fmt.Sprintf("A %s-inspired pour built on %s for a life-path %d.",
		ctx.Zodiac.Sign, ctx.Zodiac.BaseSpirit, ctx.Numerology)
}

func defaultCompatibility(ctx engine.Context) string {
	return fmt.Sprintf("Suits fellow %s signs.", ctx.Zodiac.Element)
}

func stringOr(v any, fallback string) string {
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// stringSlice coerces a decoded JSON array into trimmed strings. Non-string
// elements are stringified rather than dropped, so the recipe never loses a
// line to a type quirk.
func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch val := item.(type) {
		case string:
			out = append(out, strings.TrimSpace(val))
		default:
			out = append(out, strings.TrimSpace(fmt.Sprintf("%v", val)))
		}
	}
	return out
}
