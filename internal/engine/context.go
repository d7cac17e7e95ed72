package engine

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// referenceDate anchors the day-count measure so that identical requests
// always build identical contexts, independent of when they arrive.
var referenceDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// Context holds every derived attribute the generators consume. It is built
// once per request and is read-only afterwards; the only stateful member is
// the bound PRNG stream, which each generator drains in a fixed order.
type Context struct {
	Request    GenerationRequest
	Zodiac     ZodiacProfile
	Numerology int
	Initials   string
	Lineage    Lineage
	DayCount   int
	Seed       string
	Rand       *PRNG
}

// BuildContext derives the full generation context from a validated request.
// Two requests with identical fields produce field-for-field equal contexts
// whose PRNG streams draw equal values.
func BuildContext(req GenerationRequest) Context {
	seed := fmt.Sprintf("%s|%s|%s|%d|%d|%d",
		req.GeneratorKey, req.FirstName, req.LastName,
		req.BirthMonth, req.BirthDay, req.BirthYear)

	return Context{
		Request:    req,
		Zodiac:     LookupZodiac(req.BirthMonth, req.BirthDay),
		Numerology: NumerologyValue(req.FirstName + req.LastName),
		Initials:   initialsOf(req.FirstName, req.LastName),
		Lineage:    InferLineage(req.LastName),
		DayCount:   dayCount(req.BirthYear, req.BirthMonth, req.BirthDay),
		Seed:       seed,
		Rand:       NewPRNG(seed),
	}
}

// NumerologyValue sums the 1-indexed alphabet positions of the name's
// letters, then digit-sums the total until a single digit remains. The
// result is always in 1..9; a name with no letters maps to 9.
func NumerologyValue(fullName string) int {
	total := 0
	for _, r := range strings.ToUpper(fullName) {
		if r >= 'A' && r <= 'Z' {
			total += int(r-'A') + 1
		}
	}
	if total == 0 {
		return 9
	}
	for total > 9 {
		sum := 0
		for total > 0 {
			sum += total % 10
			total /= 10
		}
		total = sum
	}
	return total
}

// initialsOf takes the first rune of each name, uppercased. An empty name
// contributes an empty slot, so single-letter initials are legal output.
func initialsOf(first, last string) string {
	var b strings.Builder
	for _, name := range []string{first, last} {
		for _, r := range name {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}
	return b.String()
}

// dayCount measures the birth date's distance in days from the fixed
// reference date, never from the wall clock.
func dayCount(year, month, day int) int {
	birth := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	d := int(referenceDate.Sub(birth).Hours() / 24)
	if d < 0 {
		d = -d
	}
	return d
}
