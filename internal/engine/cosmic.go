package engine

import (
	"fmt"
	"strings"

	"github.com/pourtrait/pourtrait-api/internal/models"
)

// cosmicGenerator leans entirely on the zodiac profile: base spirit from the
// sign, accents and garnish drawn from the sign's own lists.
type cosmicGenerator struct{}

var elementAdjectives = map[string][]string{
	"Fire":  {"Blazing", "Solar", "Ember"},
	"Earth": {"Grounded", "Velvet", "Stone"},
	"Air":   {"Weightless", "Silver", "Zephyr"},
	"Water": {"Tidal", "Moonlit", "Pearl"},
}

func (cosmicGenerator) Key() Key      { return KeyCosmic }
func (cosmicGenerator) Label() string { return KeyCosmic.Label() }

// Build draws exactly four times: adjective, noun, accent, garnish.
func (cosmicGenerator) Build(ctx Context) models.RecipeBlueprint {
	z := ctx.Zodiac
	adjectives := elementAdjectives[z.Element]
	if len(adjectives) == 0 {
		adjectives = elementAdjectives["Water"]
	}

	adjective := PickOne(ctx.Rand, adjectives)
	noun := PickOne(ctx.Rand, nameNouns)
	accent := PickOne(ctx.Rand, z.Accents)
	garnish := PickOne(ctx.Rand, z.Garnishes)

	baseOz := 1 + ctx.Numerology%2                // 1 or 2 oz pour
	accentParts := 1 + (ctx.Request.BirthDay % 3) // 1..3 parts
	vessel := vessels[clampIndex(ctx.Request.BirthMonth+ctx.Request.BirthDay, len(vessels))]
	sparkler := sparklers[clampIndex(ctx.DayCount, len(sparklers))]

	ingredients := []string{
		fmt.Sprintf("%d oz %s", baseOz, z.BaseSpirit),
		fmt.Sprintf("%d part(s) %s", accentParts, accent),
		fmt.Sprintf("top with %s", sparkler),
		fmt.Sprintf("garnish: %s", garnish),
	}
	instructions := []string{
		fmt.Sprintf("Build over ice in a %s, spirit first.", vessel),
		fmt.Sprintf("Stir gently and finish with the %s.", garnish),
	}

	matches := signCompatibility[z.Sign]
	reason := fmt.Sprintf(
		"As a %s, your %s nature calls for %s at the core. The %s accent mirrors "+
			"the restlessness of a life-path %d, and the %s pour keeps %s honest.",
		z.Sign, strings.ToLower(z.Element), z.BaseSpirit, accent, ctx.Numerology,
		strings.ToLower(adjective), ctx.Initials)

	return models.RecipeBlueprint{
		DrinkName:     fmt.Sprintf("The %s %s %s", adjective, z.Sign, noun),
		Reason:        reason,
		Ingredients:   ingredients,
		Instructions:  instructions,
		Compatibility: fmt.Sprintf("Best shared with a %s or a %s.", matches[0], matches[1]),
	}
}
