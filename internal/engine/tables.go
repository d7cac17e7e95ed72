package engine

// Shared option tables. Immutable after init; generators index into them
// with modular arithmetic or PRNG draws but never mutate them.

var vessels = []string{
	"coupe glass", "rocks glass", "highball glass",
	"copper mug", "nick and nora", "tiki mug",
}

var sparklers = []string{
	"soda water", "tonic", "ginger beer", "prosecco", "sparkling lemonade",
}

var nameNouns = []string{
	"Sour", "Smash", "Spritz", "Fizz", "Flip", "Cooler", "Old Fashioned", "Punch", "Swizzle",
}

// signCompatibility pairs each sign with its two classic matches.
var signCompatibility = map[string][2]string{
	"Aries":       {"Leo", "Sagittarius"},
	"Taurus":      {"Virgo", "Capricorn"},
	"Gemini":      {"Libra", "Aquarius"},
	"Cancer":      {"Scorpio", "Pisces"},
	"Leo":         {"Aries", "Sagittarius"},
	"Virgo":       {"Taurus", "Capricorn"},
	"Libra":       {"Gemini", "Aquarius"},
	"Scorpio":     {"Cancer", "Pisces"},
	"Sagittarius": {"Aries", "Leo"},
	"Capricorn":   {"Taurus", "Virgo"},
	"Aquarius":    {"Gemini", "Libra"},
	"Pisces":      {"Cancer", "Scorpio"},
}

// clampIndex maps any integer into a valid index for a table of length n.
func clampIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
