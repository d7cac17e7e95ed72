package engine

import (
	"fmt"

	"github.com/pourtrait/pourtrait-api/internal/models"
)

// alchemistGenerator treats the letters of the name as reagents: initials
// pick the base notes, name length sets proportions.
type alchemistGenerator struct{}

var alchemistBases = []string{
	"black vodka", "barrel-aged gin", "smoked bourbon", "overproof rum",
	"absinthe verte", "mezcal joven", "aged cachaça",
}

var alchemistEssences = []string{
	"activated charcoal syrup", "butterfly pea reduction", "burnt sugar tincture",
	"cardamom smoke", "black walnut bitters", "star anise cordial",
	"toasted cacao nib infusion", "juniper fog",
}

var alchemistRituals = []string{
	"under low light", "against the clock", "counter-clockwise only", "in total silence",
}

func (alchemistGenerator) Key() Key      { return KeyAlchemist }
func (alchemistGenerator) Label() string { return KeyAlchemist.Label() }

// Build draws exactly three times: two unique essences and a ritual.
func (alchemistGenerator) Build(ctx Context) models.RecipeBlueprint {
	// Initials index the base spirit; an empty initial slot contributes 0.
	letterSum := 0
	for _, r := range ctx.Initials {
		letterSum += int(r)
	}
	base := alchemistBases[clampIndex(letterSum, len(alchemistBases))]

	essences := PickUnique(ctx.Rand, alchemistEssences, 2)
	ritual := PickOne(ctx.Rand, alchemistRituals)

	nameLen := len(ctx.Request.FirstName) + len(ctx.Request.LastName)
	baseOz := 1 + nameLen%2
	essenceDrops := 3 + ctx.Numerology%5
	restSeconds := 30 + ctx.DayCount%60

	ingredients := []string{
		fmt.Sprintf("%d oz %s", baseOz, base),
		fmt.Sprintf("%d drops %s", essenceDrops, essences[0]),
		fmt.Sprintf("1 bar spoon %s", essences[1]),
		"1 oz chilled filtered water",
	}
	instructions := []string{
		fmt.Sprintf("Combine everything %s and stir %s.", ritual, alchemistRituals[clampIndex(ctx.Numerology, len(alchemistRituals))]),
		fmt.Sprintf("Let the mixture rest %d seconds before the first sip.", restSeconds),
	}

	initials := ctx.Initials
	if initials == "" {
		initials = "X"
	}
	reason := fmt.Sprintf(
		"Every transmutation starts with a sigil, and yours is %s. %d letters of "+
			"name distill into %s, cut with %s until the mixture remembers who ordered it.",
		initials, nameLen, base, essences[0])

	return models.RecipeBlueprint{
		DrinkName:     fmt.Sprintf("Elixir %s No. %d", initials, ctx.Numerology),
		Reason:        reason,
		Ingredients:   ingredients,
		Instructions:  instructions,
		Compatibility: fmt.Sprintf("Pairs with anyone whose initials share a letter with %s.", initials),
	}
}
