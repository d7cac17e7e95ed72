package llm

import (
	"fmt"
	"strings"

	"github.com/pourtrait/pourtrait-api/internal/engine"
)

const systemInstruction = `You are a master mixologist who designs personalized cocktail recipes.
Respond with a single JSON object using exactly these keys:
"drinkName" (string), "reason" (string), "ingredients" (array of strings),
"instructions" (array of strings), "compatibility" (string).
Every ingredient line must include its measure. Do not add any other keys.`

// BuildPrompt renders the user message for the completion call. Every derived
// context field goes in, so the remote recipe can reference the same traits
// the deterministic engine would.
func BuildPrompt(ctx engine.Context) string {
	req := ctx.Request
	var b strings.Builder

	fmt.Fprintf(&b, "Design a cocktail in the style of %q for %s %s.\n",
		req.GeneratorKey.Label(), req.FirstName, req.LastName)
	fmt.Fprintf(&b, "Born %d/%d/%d.\n", req.BirthMonth, req.BirthDay, req.BirthYear)
	fmt.Fprintf(&b, "Zodiac: %s (%s element). Base spirit: %s. Accent notes: %s. Garnishes: %s.\n",
		ctx.Zodiac.Sign, ctx.Zodiac.Element, ctx.Zodiac.BaseSpirit,
		strings.Join(ctx.Zodiac.Accents, ", "), strings.Join(ctx.Zodiac.Garnishes, ", "))
	fmt.Fprintf(&b, "Numerology life-path number: %d. Initials: %s. Surname lineage: %s.\n",
		ctx.Numerology, ctx.Initials, ctx.Lineage)
	fmt.Fprintf(&b, "Personalization seed: %s\n", ctx.Seed)
	b.WriteString("The reason field should explain the recipe through these traits, in 2-3 sentences.")

	return b.String()
}
