// Package fibonacci generates prefixes of the Fibonacci sequence.
//
// Unlike a point calculator that returns a single F(n), this package produces
// the ordered list of the first n terms, which is what the report pipeline
// consumes. Terms are int64; MaxTerms bounds the prefix length so the term
// sum always fits without wrapping.
package fibonacci

// MaxTerms is the longest sequence whose term sum fits in an int64.
// The sum of the first n terms is F(n+1)-1; at n = 91 that is
// F(92)-1 = 7540113804746346428, the largest representable sum. One more
// term would wrap the total even though F(91) itself still fits.
const MaxTerms = 91

// Sequence returns the first n terms of the Fibonacci sequence seeded with
// (0, 1). A non-positive n yields an empty sequence: zero terms is a valid
// request, and a negative count is treated the same way rather than left
// undefined.
//
// Parameters:
//   - n: The number of terms to generate.
//
// Returns:
//   - []int64: The ordered terms F(0) through F(n-1). Never nil.
func Sequence(n int) []int64 {
	if n <= 0 {
		return []int64{}
	}
	seq := make([]int64, n)
	a, b := int64(0), int64(1)
	for i := range seq {
		seq[i] = a
		a, b = b, a+b
	}
	return seq
}

// Sum returns the sum of all terms in the sequence.
//
// Parameters:
//   - seq: The sequence to sum.
//
// Returns:
//   - int64: The sum of the terms, 0 for an empty sequence.
func Sum(seq []int64) int64 {
	var total int64
	for _, term := range seq {
		total += term
	}
	return total
}
