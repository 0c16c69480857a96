package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func bagKey(bag []PieceType) string {
	key := make([]byte, len(bag))
	for i, t := range bag {
		key[i] = t.String()[0]
	}
	return string(key)
}

func TestRequestBagEffect(t *testing.T) {
	assert.Equal(t, RequestBag{Min: 1, Max: 5040}, RequestBagEffect())
}

func TestBagFromIndexIsPermutation(t *testing.T) {
	for i := 1; i <= BagPermutations; i++ {
		bag := BagFromIndex(i)
		if !assert.Len(t, bag, 7) {
			return
		}
		seen := map[PieceType]bool{}
		for _, pt := range bag {
			seen[pt] = true
		}
		if !assert.Len(t, seen, 7, "index %d gave %v", i, bag) {
			return
		}
	}
}

func TestBagFromIndexDistinct(t *testing.T) {
	seen := make(map[string]int, BagPermutations)
	for i := 1; i <= BagPermutations; i++ {
		key := bagKey(BagFromIndex(i))
		if prev, ok := seen[key]; ok {
			t.Fatalf("indices %d and %d both map to %s", prev, i, key)
		}
		seen[key] = i
	}
	assert.Len(t, seen, BagPermutations)
}

func TestBagFromIndexWraps(t *testing.T) {
	tests := []struct {
		name string
		in   int
		same int
	}{
		{"zero", 0, BagPermutations},
		{"one past max", BagPermutations + 1, 1},
		{"negative", -1, BagPermutations - 1},
		{"far out", 3*BagPermutations + 17, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, BagFromIndex(tt.same), BagFromIndex(tt.in))
		})
	}
}

func TestBagFromIndexDeterministic(t *testing.T) {
	assert.Equal(t, BagFromIndex(1234), BagFromIndex(1234))
	assert.NotEqual(t, BagFromIndex(1), BagFromIndex(2))
}
