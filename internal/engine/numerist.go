package engine

import (
	"fmt"

	"github.com/pourtrait/pourtrait-api/internal/models"
)

// numeristGenerator keys everything off the name's numerology digit.
type numeristGenerator struct{}

// numeristSpirits deliberately covers only part of the 1..9 range; digits
// outside the table fall back to numeristDefaultSpirit.
var numeristSpirits = map[int]string{
	1: "single-barrel bourbon",
	2: "reposado tequila",
	3: "london dry gin",
	4: "aged rum",
	5: "rye whiskey",
	6: "pisco",
	7: "calvados",
}

const numeristDefaultSpirit = "dry vermouth"

var numeristTraits = map[int]string{
	1: "a leader's backbone", 2: "a diplomat's balance", 3: "a storyteller's sparkle",
	4: "a builder's patience", 5: "a wanderer's restlessness", 6: "a host's warmth",
	7: "a scholar's quiet", 8: "an executive's bite", 9: "an old soul's depth",
}

var numeristModifiers = []string{
	"amaro", "sweet vermouth", "orgeat", "honey syrup", "apricot liqueur",
	"maraschino", "falernum", "oloroso sherry", "demerara syrup",
}

var numeristBitters = []string{
	"aromatic bitters", "orange bitters", "celery bitters", "mole bitters", "lavender bitters",
}

func (numeristGenerator) Key() Key      { return KeyNumerist }
func (numeristGenerator) Label() string { return KeyNumerist.Label() }

// Build draws exactly twice: a second modifier and a bitters pick.
func (numeristGenerator) Build(ctx Context) models.RecipeBlueprint {
	n := ctx.Numerology
	spirit, ok := numeristSpirits[n]
	if !ok {
		spirit = numeristDefaultSpirit
	}

	primary := numeristModifiers[clampIndex(n-1, len(numeristModifiers))]
	secondary := PickOne(ctx.Rand, numeristModifiers)
	bitters := PickOne(ctx.Rand, numeristBitters)

	spiritOz := 2
	modifierQuarters := 1 + n%4 // quarter-ounce steps
	dashes := 1 + len(ctx.Request.FirstName)%3
	vessel := vessels[clampIndex(n, len(vessels))]

	ingredients := []string{
		fmt.Sprintf("%d oz %s", spiritOz, spirit),
		fmt.Sprintf("%d/4 oz %s", modifierQuarters, primary),
		fmt.Sprintf("1/4 oz %s", secondary),
		fmt.Sprintf("%d dash(es) %s", dashes, bitters),
	}
	instructions := []string{
		fmt.Sprintf("Stir all ingredients with ice for %d seconds.", 20+n),
		fmt.Sprintf("Strain into a chilled %s.", vessel),
	}

	reason := fmt.Sprintf(
		"Your name reduces to a %d, the number of %s. That digit asked for %s, "+
			"softened with %s the way a %d insists on balance.",
		n, numeristTraits[n], spirit, primary, n)

	return models.RecipeBlueprint{
		DrinkName:     fmt.Sprintf("Number %d %s", n, nameNouns[clampIndex(n, len(nameNouns))]),
		Reason:        reason,
		Ingredients:   ingredients,
		Instructions:  instructions,
		Compatibility: fmt.Sprintf("Resonates with fellow %ds and their mirror number %d.", n, 10-n),
	}
}
