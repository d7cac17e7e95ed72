package engine

const (
	seedBasis       uint32 = 2166136261
	seedPrime       uint32 = 16777619
	streamIncrement uint32 = 0x6D2B79F5
	mixOddA         uint32 = 1
	mixOddB         uint32 = 61
	two32                  = 4294967296.0
)

// PRNG is a deterministic 32-bit stream seeded from a string. One instance
// serves exactly one generation request; there is no reseeding.
type PRNG struct {
	state uint32
}

// NewPRNG folds the seed's bytes into a 32-bit state using multiplicative
// hashing with a 13-bit rotation per byte. The same seed string always
// yields the same stream.
func NewPRNG(seed string) *PRNG {
	h := seedBasis
	for i := 0; i < len(seed); i++ {
		h ^= uint32(seed[i])
		h *= seedPrime
		h = h<<13 | h>>19
	}
	return &PRNG{state: h}
}

// Next advances the state through an avalanche mix and returns the unsigned
// 32-bit result scaled to [0,1).
func (p *PRNG) Next() float64 {
	p.state += streamIncrement
	z := p.state
	z = (z ^ (z >> 15)) * (z | mixOddA)
	z ^= z + (z^(z>>7))*(z|mixOddB)
	z ^= z >> 14
	return float64(z) / two32
}
