package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() RequestPayload {
	return RequestPayload{
		GeneratorKey: "cosmic",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		BirthMonth:   12,
		BirthDay:     10,
		BirthYear:    1985,
	}
}

func TestNewGenerationRequest_Valid(t *testing.T) {
	req, err := NewGenerationRequest(validPayload())
	require.NoError(t, err)
	assert.Equal(t, KeyCosmic, req.GeneratorKey)
	assert.Equal(t, "Ada", req.FirstName)
}

func TestNewGenerationRequest_TrimsNames(t *testing.T) {
	p := validPayload()
	p.FirstName = "  Ada "
	p.LastName = " Lovelace  "

	req, err := NewGenerationRequest(p)
	require.NoError(t, err)
	assert.Equal(t, "Ada", req.FirstName)
	assert.Equal(t, "Lovelace", req.LastName)
}

func TestNewGenerationRequest_Violations(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*RequestPayload)
		wantField string
	}{
		{"unknown generator key", func(p *RequestPayload) { p.GeneratorKey = "mystery" }, "generator_key"},
		{"empty first name", func(p *RequestPayload) { p.FirstName = "" }, "first_name"},
		{"whitespace first name", func(p *RequestPayload) { p.FirstName = "   " }, "first_name"},
		{"empty last name", func(p *RequestPayload) { p.LastName = "" }, "last_name"},
		{"month too high", func(p *RequestPayload) { p.BirthMonth = 13 }, "birth_month"},
		{"month zero", func(p *RequestPayload) { p.BirthMonth = 0 }, "birth_month"},
		{"day zero", func(p *RequestPayload) { p.BirthDay = 0 }, "birth_day"},
		{"day too high", func(p *RequestPayload) { p.BirthDay = 32 }, "birth_day"},
		{"year too early", func(p *RequestPayload) { p.BirthYear = 1899 }, "birth_year"},
		{"year in the future", func(p *RequestPayload) { p.BirthYear = 3000 }, "birth_year"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPayload()
			tt.mutate(&p)

			_, err := NewGenerationRequest(p)
			require.Error(t, err)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.wantField, ve.Field)
			assert.NotEmpty(t, ve.Message)
		})
	}
}

// The check order is fixed, so a payload violating several constraints always
// reports the same first violation.
func TestNewGenerationRequest_FirstViolationWins(t *testing.T) {
	p := RequestPayload{GeneratorKey: "mystery", FirstName: "", BirthMonth: 13}

	_, err := NewGenerationRequest(p)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "generator_key", ve.Field)
}
