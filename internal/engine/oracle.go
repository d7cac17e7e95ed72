package engine

import (
	"fmt"

	"github.com/pourtrait/pourtrait-api/internal/models"
)

// oracleGenerator reads the birth date like tea leaves: day-count cycles
// select the omens, the zodiac element colors the prophecy.
type oracleGenerator struct{}

var oracleSpirits = []string{
	"genever", "amontillado sherry", "chartreuse verte", "madeira",
	"armagnac", "plum brandy", "barolo chinato",
}

var oracleOmens = []string{
	"a journey postponed", "an unexpected toast", "a letter worth rereading",
	"rain on a planned day", "a reunion at a bar", "a decision made twice",
	"a borrowed coat returned",
}

var oracleTeas = []string{
	"jasmine tea syrup", "smoked lapsang cordial", "chamomile honey", "hibiscus steep",
}

func (oracleGenerator) Key() Key      { return KeyOracle }
func (oracleGenerator) Label() string { return KeyOracle.Label() }

// Build draws exactly three times: an omen, a tea, and a sparkler.
func (oracleGenerator) Build(ctx Context) models.RecipeBlueprint {
	spirit := oracleSpirits[clampIndex(ctx.DayCount, len(oracleSpirits))]
	omen := PickOne(ctx.Rand, oracleOmens)
	tea := PickOne(ctx.Rand, oracleTeas)
	sparkler := PickOne(ctx.Rand, sparklers)

	cycle := clampIndex(ctx.DayCount, 28) + 1 // lunar-cycle position, 1..28
	spiritOz := 1 + cycle%2
	teaQuarters := 1 + ctx.Request.BirthDay%4
	vessel := vessels[clampIndex(cycle, len(vessels))]

	ingredients := []string{
		fmt.Sprintf("%d oz %s", spiritOz, spirit),
		fmt.Sprintf("%d/4 oz %s", teaQuarters, tea),
		fmt.Sprintf("float of %s", sparkler),
	}
	instructions := []string{
		fmt.Sprintf("Stir the %s and %s over a single large cube.", spirit, tea),
		fmt.Sprintf("Serve in a %s and drink before the ice turns.", vessel),
	}

	matches := signCompatibility[ctx.Zodiac.Sign]
	reason := fmt.Sprintf(
		"You stand %d days along your cycle of twenty-eight, and the leaves show %s. "+
			"%s steadies a %s reading; the %s is for luck you have not used yet.",
		cycle, omen, spirit, ctx.Zodiac.Element, tea)

	return models.RecipeBlueprint{
		DrinkName:     fmt.Sprintf("Oracle of Day %d", cycle),
		Reason:        reason,
		Ingredients:   ingredients,
		Instructions:  instructions,
		Compatibility: fmt.Sprintf("The cards favor a %s this season; a %s if the moon is full.", matches[0], matches[1]),
	}
}
