// Package primes finds prime numbers by trial division.
//
// The algorithm is O(limit * sqrt(limit)), which is fine at the
// demonstration scale this program runs at; it is deliberately not a sieve.
package primes

// UpTo returns every prime p with 2 <= p <= limit, in increasing order.
// A limit below 2 yields an empty list.
//
// Parameters:
//   - limit: The inclusive upper bound of the search.
//
// Returns:
//   - []int: The primes found, in increasing order. Never nil.
func UpTo(limit int) []int {
	found := []int{}
	for num := 2; num <= limit; num++ {
		if IsPrime(num) {
			found = append(found, num)
		}
	}
	return found
}

// IsPrime reports whether n is prime, testing divisors from 2 up to and
// including the integer square root of n.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for d := 2; d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

// Sum returns the sum of the given primes as an int64.
//
// Parameters:
//   - values: The primes to sum.
//
// Returns:
//   - int64: The sum, 0 for an empty list.
func Sum(values []int) int64 {
	var total int64
	for _, v := range values {
		total += int64(v)
	}
	return total
}
