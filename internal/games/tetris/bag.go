package tetris

// BagPermutations is the number of distinct orderings of one bag (7!).
const BagPermutations = 5040

// RequestBagEffect returns the effect asking the driver for one random
// integer in [1, BagPermutations]. The answer comes back as a NextBag
// message built with BagFromIndex.
func RequestBagEffect() RequestBag {
	return RequestBag{Min: 1, Max: BagPermutations}
}

// BagFromIndex maps a bag index to one ordering of the seven piece types.
//
// The index is decoded into mixed-radix digits that drive a Fisher-Yates
// shuffle of the canonical order, so every index in [1, BagPermutations]
// yields a distinct ordering and a uniform index yields a uniform bag.
// Indices outside the range wrap modulo BagPermutations.
func BagFromIndex(i int) []PieceType {
	d := (i - 1) % BagPermutations
	if d < 0 {
		d += BagPermutations
	}

	bag := make([]PieceType, pieceTypeCount)
	copy(bag, AllPieceTypes[:])
	for k := len(bag) - 1; k > 0; k-- {
		j := d % (k + 1)
		d /= k + 1
		bag[k], bag[j] = bag[j], bag[k]
	}
	return bag
}
