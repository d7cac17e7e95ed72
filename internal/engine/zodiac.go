package engine

// ZodiacProfile maps a birth-date interval to the sign's drinking character:
// a base spirit, the accent notes that suit it, and garnish options.
type ZodiacProfile struct {
	Sign       string
	Element    string
	StartMonth int
	StartDay   int
	EndMonth   int
	EndDay     int
	BaseSpirit string
	Accents    []string
	Garnishes  []string
}

// zodiacTable covers the full year. Interval edges are inclusive on both
// ends; Capricorn wraps across the year boundary.
var zodiacTable = []ZodiacProfile{
	{Sign: "Aries", Element: "Fire", StartMonth: 3, StartDay: 21, EndMonth: 4, EndDay: 19,
		BaseSpirit: "spiced rum", Accents: []string{"ginger", "chili syrup", "blood orange"}, Garnishes: []string{"flamed orange peel", "candied ginger"}},
	{Sign: "Taurus", Element: "Earth", StartMonth: 4, StartDay: 20, EndMonth: 5, EndDay: 20,
		BaseSpirit: "bourbon", Accents: []string{"vanilla", "fig syrup", "toasted pecan"}, Garnishes: []string{"luxardo cherry", "cinnamon stick"}},
	{Sign: "Gemini", Element: "Air", StartMonth: 5, StartDay: 21, EndMonth: 6, EndDay: 20,
		BaseSpirit: "gin", Accents: []string{"elderflower", "cucumber", "lemon verbena"}, Garnishes: []string{"cucumber ribbon", "edible flower"}},
	{Sign: "Cancer", Element: "Water", StartMonth: 6, StartDay: 21, EndMonth: 7, EndDay: 22,
		BaseSpirit: "white rum", Accents: []string{"coconut", "melon", "sea salt"}, Garnishes: []string{"melon ball", "salted rim"}},
	{Sign: "Leo", Element: "Fire", StartMonth: 7, StartDay: 23, EndMonth: 8, EndDay: 22,
		BaseSpirit: "cognac", Accents: []string{"honey", "passion fruit", "saffron syrup"}, Garnishes: []string{"gold sugar rim", "orange twist"}},
	{Sign: "Virgo", Element: "Earth", StartMonth: 8, StartDay: 23, EndMonth: 9, EndDay: 22,
		BaseSpirit: "vodka", Accents: []string{"fresh basil", "green apple", "white tea"}, Garnishes: []string{"basil leaf", "apple fan"}},
	{Sign: "Libra", Element: "Air", StartMonth: 9, StartDay: 23, EndMonth: 10, EndDay: 22,
		BaseSpirit: "champagne", Accents: []string{"rose syrup", "raspberry", "violet liqueur"}, Garnishes: []string{"rose petal", "sugared raspberry"}},
	{Sign: "Scorpio", Element: "Water", StartMonth: 10, StartDay: 23, EndMonth: 11, EndDay: 21,
		BaseSpirit: "mezcal", Accents: []string{"blackberry", "smoked salt", "ancho liqueur"}, Garnishes: []string{"charred lime", "blackberry skewer"}},
	{Sign: "Sagittarius", Element: "Fire", StartMonth: 11, StartDay: 22, EndMonth: 12, EndDay: 21,
		BaseSpirit: "rye whiskey", Accents: []string{"maple", "clove", "tart cherry"}, Garnishes: []string{"cherry flag", "star anise"}},
	{Sign: "Capricorn", Element: "Earth", StartMonth: 12, StartDay: 22, EndMonth: 1, EndDay: 19,
		BaseSpirit: "scotch", Accents: []string{"walnut bitters", "dark chocolate", "espresso"}, Garnishes: []string{"chocolate shavings", "lemon peel"}},
	{Sign: "Aquarius", Element: "Air", StartMonth: 1, StartDay: 20, EndMonth: 2, EndDay: 18,
		BaseSpirit: "blue curacao", Accents: []string{"yuzu", "butterfly pea tea", "tonic"}, Garnishes: []string{"dehydrated lime wheel", "rosemary sprig"}},
	{Sign: "Pisces", Element: "Water", StartMonth: 2, StartDay: 19, EndMonth: 3, EndDay: 20,
		BaseSpirit: "sake", Accents: []string{"lychee", "pear nectar", "cherry blossom"}, Garnishes: []string{"lychee on a pick", "mint crown"}},
}

// LookupZodiac finds the profile whose interval contains the birth date.
// Comparison is date-only against a fixed reference year, so leap-year
// anomalies never occur. Falls back to the first entry if nothing matches,
// which full-year coverage should make unreachable.
func LookupZodiac(month, day int) ZodiacProfile {
	key := month*100 + day
	for _, z := range zodiacTable {
		start := z.StartMonth*100 + z.StartDay
		end := z.EndMonth*100 + z.EndDay
		if start <= end {
			if key >= start && key <= end {
				return z
			}
		} else if key >= start || key <= end { // wraps the year boundary
			return z
		}
	}
	return zodiacTable[0]
}
