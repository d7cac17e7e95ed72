package engine

import "testing"

func TestPRNG_Deterministic(t *testing.T) {
	seeds := []string{"", "a", "cosmic|Ada|Lovelace|12|10|1985", "same-seed"}

	for _, seed := range seeds {
		a := NewPRNG(seed)
		b := NewPRNG(seed)
		for i := 0; i < 1000; i++ {
			av, bv := a.Next(), b.Next()
			if av != bv {
				t.Fatalf("seed %q draw %d: %v != %v", seed, i, av, bv)
			}
		}
	}
}

func TestPRNG_Range(t *testing.T) {
	p := NewPRNG("range-check")
	for i := 0; i < 10000; i++ {
		v := p.Next()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d out of [0,1): %v", i, v)
		}
	}
}

func TestPRNG_SeedsDiverge(t *testing.T) {
	a := NewPRNG("seed-one")
	b := NewPRNG("seed-two")

	same := true
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical first 10 draws")
	}
}

func TestPRNG_StreamVaries(t *testing.T) {
	p := NewPRNG("variation")
	first := p.Next()
	allEqual := true
	for i := 0; i < 10; i++ {
		if p.Next() != first {
			allEqual = false
		}
	}
	if allEqual {
		t.Error("stream repeated the same value 11 times")
	}
}
