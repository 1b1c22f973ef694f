package utils

import "math/bits"

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}

	for i := int64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime that is equal to or bigger than n
func NextPrime(n int64) int64 {
	if n <= 2 {
		return 2
	}

	for !IsPrime(n) {
		n++
	}

	return n
}

// IsPowerOf2 - Returns true if n is an exact power of 2 (1 included)
func IsPowerOf2(n int64) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 - Returns the base 2 logarithm of n, n has to be a power of 2 for the result to be exact
func Log2(n int64) int {
	if n <= 0 {
		return 0
	}

	return bits.Len64(uint64(n)) - 1
}
