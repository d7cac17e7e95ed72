package engine

import (
	"fmt"

	"github.com/pourtrait/pourtrait-api/internal/models"
)

// heritageGenerator builds around the surname-derived lineage tag.
type heritageGenerator struct{}

type heritageStyle struct {
	spirit   string
	modifier string
	citrus   string
	garnish  string
	toast    string
}

var heritageStyles = map[Lineage]heritageStyle{
	LineageItalian:  {"amaro nonino", "sweet vermouth", "blood orange", "orange wheel", "Cin cin"},
	LineageIrish:    {"irish whiskey", "honey syrup", "lemon", "flat-leaf parsley sprig", "Sláinte"},
	LineageSpanish:  {"spanish brandy", "oloroso sherry", "orange", "orange zest", "Salud"},
	LineageJapanese: {"japanese whisky", "umeshu", "yuzu", "shiso leaf", "Kanpai"},
	LineageFrench:   {"cognac", "lillet blanc", "lemon", "lemon twist", "Santé"},
	LineageNordic:   {"aquavit", "lingonberry syrup", "lime", "dill frond", "Skål"},
	LineageClassic:  {"london dry gin", "dry vermouth", "lemon", "olive", "Cheers"},
}

func (heritageGenerator) Key() Key      { return KeyHeritage }
func (heritageGenerator) Label() string { return KeyHeritage.Label() }

// Build draws exactly twice: a sparkler and a vessel.
func (heritageGenerator) Build(ctx Context) models.RecipeBlueprint {
	style, ok := heritageStyles[ctx.Lineage]
	if !ok {
		style = heritageStyles[LineageClassic]
	}

	sparkler := PickOne(ctx.Rand, sparklers)
	vessel := PickOne(ctx.Rand, vessels)

	spiritOz := 1 + clampIndex(ctx.Request.BirthYear, 2) // 1 or 2
	citrusQuarters := 1 + ctx.Request.BirthMonth%3
	nameLen := len(ctx.Request.FirstName) + len(ctx.Request.LastName)

	ingredients := []string{
		fmt.Sprintf("%d oz %s", spiritOz, style.spirit),
		fmt.Sprintf("3/4 oz %s", style.modifier),
		fmt.Sprintf("%d/4 oz fresh %s juice", citrusQuarters, style.citrus),
		fmt.Sprintf("splash of %s", sparkler),
		fmt.Sprintf("garnish: %s", style.garnish),
	}
	instructions := []string{
		fmt.Sprintf("Shake the first three ingredients with ice for %d seconds.", 10+nameLen%10),
		fmt.Sprintf("Strain into a %s and top with %s.", vessel, sparkler),
		fmt.Sprintf("Raise the glass and say %q.", style.toast),
	}

	reason := fmt.Sprintf(
		"The name %s carries a %s echo, so the pour starts from %s. %s rounds it "+
			"the way the old recipes did, and the %s is there for whoever taught you to toast.",
		ctx.Request.LastName, ctx.Lineage, style.spirit, style.modifier, style.garnish)

	return models.RecipeBlueprint{
		DrinkName:     fmt.Sprintf("%s's %s %s", ctx.Request.LastName, titleLineage(ctx.Lineage), nameNouns[clampIndex(nameLen, len(nameNouns))]),
		Reason:        reason,
		Ingredients:   ingredients,
		Instructions:  instructions,
		Compatibility: fmt.Sprintf("Made for tables where someone still says %q.", style.toast),
	}
}

func titleLineage(l Lineage) string {
	s := string(l)
	if s == "" {
		return ""
	}
	return string(s[0]-'a'+'A') + s[1:]
}
