package hash

import (
	"github.com/gostonefire/hashmetrics/internal/utils"
)

// fibonacciMultiplier - 2^32 divided by the golden ratio, rounded to the nearest odd integer
const fibonacciMultiplier uint32 = 2654435769

// FibonacciHash - Multiplicative hashing using the golden ratio fixed point to spread the key bits.
// For table sizes that are a power of 2 the index is taken from the high bits of the 32 bit product,
// i.e. index = (key * 2654435769) >> (32 - log2(tableSize)), for all other table sizes (such as the
// prime sizes that open addressing grows into) the 64 bit product is reduced by modulo instead.
type FibonacciHash struct{}

// NewFibonacciHash - Returns a new FibonacciHash instance
func NewFibonacciHash() FibonacciHash {
	return FibonacciHash{}
}

// Index - Given key it generates an index between 0 and table size - 1
func (F FibonacciHash) Index(key int32, tableSize int64) int64 {
	if utils.IsPowerOf2(tableSize) && tableSize <= 1<<32 {
		return int64((uint32(key) * fibonacciMultiplier) >> (32 - utils.Log2(tableSize)))
	}

	return int64(uint64(uint32(key)) * uint64(fibonacciMultiplier) % uint64(tableSize))
}

// Name - Returns the name of the hash function
func (F FibonacciHash) Name() string {
	return "Fibonacci"
}
