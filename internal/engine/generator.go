package engine

import (
	"fmt"

	"github.com/pourtrait/pourtrait-api/internal/models"
)

// Key selects one of the five deterministic recipe generators.
type Key string

const (
	KeyCosmic    Key = "cosmic"
	KeyNumerist  Key = "numerist"
	KeyHeritage  Key = "heritage"
	KeyAlchemist Key = "alchemist"
	KeyOracle    Key = "oracle"
)

// Generator builds a recipe from a context. Implementations are pure: the
// same context (same seed) always yields the same blueprint, and every
// implementation draws from the context's PRNG a fixed number of times.
type Generator interface {
	Key() Key
	Label() string
	Build(ctx Context) models.RecipeBlueprint
}

// Keys lists every generator key in a stable order.
func Keys() []Key {
	return []Key{KeyCosmic, KeyNumerist, KeyHeritage, KeyAlchemist, KeyOracle}
}

// Valid reports whether k names one of the five generators.
func (k Key) Valid() bool {
	switch k {
	case KeyCosmic, KeyNumerist, KeyHeritage, KeyAlchemist, KeyOracle:
		return true
	}
	return false
}

// Label returns the human-facing name for the generator.
func (k Key) Label() string {
	switch k {
	case KeyCosmic:
		return "Cosmic Mixologist"
	case KeyNumerist:
		return "The Numerist"
	case KeyHeritage:
		return "Heritage Pour"
	case KeyAlchemist:
		return "Midnight Alchemist"
	case KeyOracle:
		return "The Oracle"
	}
	return string(k)
}

// ForKey dispatches to the generator for k. The key set is closed; callers
// must pass a validated key.
func ForKey(k Key) (Generator, error) {
	switch k {
	case KeyCosmic:
		return cosmicGenerator{}, nil
	case KeyNumerist:
		return numeristGenerator{}, nil
	case KeyHeritage:
		return heritageGenerator{}, nil
	case KeyAlchemist:
		return alchemistGenerator{}, nil
	case KeyOracle:
		return oracleGenerator{}, nil
	}
	return nil, fmt.Errorf("unknown generator key %q", string(k))
}

func keyNames() []string {
	keys := Keys()
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = string(k)
	}
	return names
}
