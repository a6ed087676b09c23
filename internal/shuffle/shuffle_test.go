package shuffle

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := slices.Clone(in)

	out := Shuffle(seeded(1), in)

	if !slices.Equal(in, orig) {
		t.Errorf("input mutated: got %v, want %v", in, orig)
	}
	if len(out) != len(in) {
		t.Fatalf("len = %d, want %d", len(out), len(in))
	}
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	if !slices.Equal(sorted, orig) {
		t.Errorf("output %v is not a permutation of %v", out, orig)
	}
}

func TestShuffle_ReturnsCopy(t *testing.T) {
	in := []int{42}
	out := Shuffle(seeded(1), in)
	out[0] = 7
	if in[0] != 42 {
		t.Error("single-element output aliases the input")
	}
}

func TestShuffle_EmptyAndSingleton(t *testing.T) {
	if got := Shuffle(seeded(1), []string{}); len(got) != 0 {
		t.Errorf("empty: got %v", got)
	}
	if got := Shuffle[string](seeded(1), nil); got != nil {
		t.Errorf("nil: got %v, want nil", got)
	}
	if got := Shuffle(seeded(1), []string{"a"}); !slices.Equal(got, []string{"a"}) {
		t.Errorf("singleton: got %v", got)
	}
}

func TestShuffle_PositionDistributionUniform(t *testing.T) {
	const (
		n      = 4
		trials = 40000
	)
	rng := seeded(7)
	in := []int{0, 1, 2, 3}

	// counts[elem][pos]
	var counts [n][n]int
	for range trials {
		out := Shuffle(rng, in)
		for pos, elem := range out {
			counts[elem][pos]++
		}
	}

	want := float64(trials) / n
	for elem := range n {
		for pos := range n {
			got := float64(counts[elem][pos])
			if got < want*0.9 || got > want*1.1 {
				t.Errorf("element %d at position %d: %v times, want ~%v", elem, pos, got, want)
			}
		}
	}
}

func TestShuffle_AllPermutationsReachable(t *testing.T) {
	rng := seeded(11)
	in := []int{1, 2, 3}
	seen := make(map[[3]int]int)
	for range 6000 {
		out := Shuffle(rng, in)
		seen[[3]int{out[0], out[1], out[2]}]++
	}
	if len(seen) != 6 {
		t.Fatalf("saw %d distinct permutations, want 6", len(seen))
	}
	for perm, c := range seen {
		if c < 800 || c > 1200 {
			t.Errorf("permutation %v seen %d times, want ~1000", perm, c)
		}
	}
}

func TestSample(t *testing.T) {
	in := []int{1, 2, 3, 4, 5}

	got := Sample(seeded(3), in, 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	seen := make(map[int]bool)
	for _, v := range got {
		if seen[v] {
			t.Errorf("duplicate %d in sample %v", v, got)
		}
		seen[v] = true
		if !slices.Contains(in, v) {
			t.Errorf("sample value %d not in input", v)
		}
	}

	if got := Sample(seeded(3), in, 10); len(got) != len(in) {
		t.Errorf("oversized sample len = %d, want %d", len(got), len(in))
	}
	if got := Sample(seeded(3), in, 0); got != nil {
		t.Errorf("zero sample = %v, want nil", got)
	}
}
