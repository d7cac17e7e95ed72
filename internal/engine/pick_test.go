package engine

import "testing"

func TestPickOne(t *testing.T) {
	p := NewPRNG("pick-one")
	options := []string{"gin", "rum", "rye"}

	for i := 0; i < 100; i++ {
		got := PickOne(p, options)
		found := false
		for _, opt := range options {
			if got == opt {
				found = true
			}
		}
		if !found {
			t.Fatalf("picked %q, not in options", got)
		}
	}
}

func TestPickOne_Empty(t *testing.T) {
	p := NewPRNG("empty")
	if got := PickOne(p, []string{}); got != "" {
		t.Errorf("expected zero value for empty options, got %q", got)
	}
}

func TestPickUnique(t *testing.T) {
	options := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name    string
		count   int
		wantLen int
	}{
		{"negative count", -1, 0},
		{"zero count", 0, 0},
		{"partial", 3, 3},
		{"exact pool size", 7, 7},
		{"beyond pool", 12, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPRNG("subset")
			got := PickUnique(p, options, tt.count)
			if len(got) != tt.wantLen {
				t.Fatalf("expected %d elements, got %d", tt.wantLen, len(got))
			}
			seen := map[int]bool{}
			for _, v := range got {
				if seen[v] {
					t.Fatalf("duplicate element %d", v)
				}
				seen[v] = true
			}
		})
	}
}

func TestPickUnique_AllSizes(t *testing.T) {
	for size := 0; size <= 8; size++ {
		options := make([]int, size)
		for i := range options {
			options[i] = i
		}
		for count := -2; count <= size+2; count++ {
			p := NewPRNG("sizes")
			got := PickUnique(p, options, count)

			want := count
			if want < 0 {
				want = 0
			}
			if want > size {
				want = size
			}
			if len(got) != want {
				t.Fatalf("size=%d count=%d: expected %d elements, got %d", size, count, want, len(got))
			}
		}
	}
}

func TestPickUnique_DoesNotMutateInput(t *testing.T) {
	options := []string{"a", "b", "c", "d"}
	p := NewPRNG("immutability")
	PickUnique(p, options, 3)

	want := []string{"a", "b", "c", "d"}
	for i, v := range options {
		if v != want[i] {
			t.Fatalf("input mutated at %d: %q", i, v)
		}
	}
}
