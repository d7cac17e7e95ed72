package engine

import (
	"fmt"
	"strings"
	"time"
)

const minBirthYear = 1900

// ValidationError reports the first violated request constraint. Constraints
// are checked in a fixed order so the reported violation is deterministic.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// GenerationRequest is a validated, immutable generation input. Construct it
// through NewGenerationRequest; a zero value is not meaningful.
type GenerationRequest struct {
	GeneratorKey Key
	FirstName    string
	LastName     string
	BirthMonth   int
	BirthDay     int
	BirthYear    int
}

// RequestPayload is the raw, unvalidated wire shape.
type RequestPayload struct {
	GeneratorKey string `json:"generator_key"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	BirthMonth   int    `json:"birth_month"`
	BirthDay     int    `json:"birth_day"`
	BirthYear    int    `json:"birth_year"`
}

// NewGenerationRequest validates the payload field by field, in order:
// generator key, first name, last name, birth month, birth day, birth year.
func NewGenerationRequest(p RequestPayload) (GenerationRequest, error) {
	key := Key(p.GeneratorKey)
	if !key.Valid() {
		return GenerationRequest{}, &ValidationError{
			Field:   "generator_key",
			Message: fmt.Sprintf("unknown generator %q, expected one of %s", p.GeneratorKey, strings.Join(keyNames(), ", ")),
		}
	}
	first := strings.TrimSpace(p.FirstName)
	if first == "" {
		return GenerationRequest{}, &ValidationError{Field: "first_name", Message: "must not be empty"}
	}
	last := strings.TrimSpace(p.LastName)
	if last == "" {
		return GenerationRequest{}, &ValidationError{Field: "last_name", Message: "must not be empty"}
	}
	if p.BirthMonth < 1 || p.BirthMonth > 12 {
		return GenerationRequest{}, &ValidationError{Field: "birth_month", Message: "must be between 1 and 12"}
	}
	if p.BirthDay < 1 || p.BirthDay > 31 {
		return GenerationRequest{}, &ValidationError{Field: "birth_day", Message: "must be between 1 and 31"}
	}
	currentYear := time.Now().Year()
	if p.BirthYear < minBirthYear || p.BirthYear > currentYear {
		return GenerationRequest{}, &ValidationError{
			Field:   "birth_year",
			Message: fmt.Sprintf("must be between %d and %d", minBirthYear, currentYear),
		}
	}

	return GenerationRequest{
		GeneratorKey: key,
		FirstName:    first,
		LastName:     last,
		BirthMonth:   p.BirthMonth,
		BirthDay:     p.BirthDay,
		BirthYear:    p.BirthYear,
	}, nil
}
