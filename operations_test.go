//go:build unit

package hashmetrics

import (
	"fmt"
	"github.com/gostonefire/hashmetrics/crt"
	"github.com/gostonefire/hashmetrics/hashfunc"
	"github.com/gostonefire/hashmetrics/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/rand"
	"testing"
)

type TestCaseOperations struct {
	crtName  string
	capacity int64
	crt      int
	hFunc    hashfunc.HashFunction
}

var operationTests = []TestCaseOperations{
	{crtName: "SeparateChainingFibonacci", capacity: 17, crt: crt.SeparateChaining, hFunc: NewFibonacciHash()},
	{crtName: "SeparateChainingModulo", capacity: 17, crt: crt.SeparateChaining, hFunc: NewModuloHash()},
	{crtName: "LinearProbingFibonacci", capacity: 17, crt: crt.LinearProbing, hFunc: NewFibonacciHash()},
	{crtName: "LinearProbingModulo", capacity: 17, crt: crt.LinearProbing, hFunc: NewModuloHash()},
}

func newHashTable(t *testing.T, technique int, capacity int64, hFunc hashfunc.HashFunction) *HashTable {
	ht, _, err := NewHashTable(technique, capacity, hFunc)
	require.NoError(t, err, "create new hash table")

	return ht
}

func TestHashTable_Insert(t *testing.T) {
	for _, test := range operationTests {
		t.Run(fmt.Sprintf("round trips distinct keys for %s", test.crtName), func(t *testing.T) {
			// Prepare
			ht := newHashTable(t, test.crt, test.capacity, test.hFunc)
			r := rand.New(rand.NewSource(42))
			keys := r.Perm(2000)

			// Execute
			for _, k := range keys {
				ht.Insert(int32(k))
			}

			// Check
			assert.Equal(t, int64(len(keys)), ht.Len(), "one entry per distinct key")
			for _, k := range keys {
				if !ht.Contains(int32(k)) {
					assert.Failf(t, "key not found", "key %d", k)
				}
			}
			assert.False(t, ht.Contains(5000), "absent key not found")
		})
	}

	t.Run("deduplicates with probing and not with chaining", func(t *testing.T) {
		// Prepare
		oa := newHashTable(t, crt.LinearProbing, 17, NewModuloHash())
		sc := newHashTable(t, crt.SeparateChaining, 17, NewModuloHash())
		oa.Insert(7)
		sc.Insert(7)
		oaMax := oa.MaxClusterLength()
		scMax := sc.MaxClusterLength()

		// Execute
		oa.Insert(7)
		sc.Insert(7)

		// Check
		assert.Equal(t, int64(1), oa.Len(), "probing keeps one copy")
		assert.Equal(t, oaMax, oa.MaxClusterLength(), "cluster unchanged")
		assert.Equal(t, int64(2), sc.Len(), "chaining stores a second copy")
		assert.Equal(t, scMax+1, sc.MaxClusterLength(), "chain one longer")
	})
}

func TestHashTable_Remove(t *testing.T) {
	for _, test := range operationTests {
		t.Run(fmt.Sprintf("removes keys and keeps others for %s", test.crtName), func(t *testing.T) {
			// Prepare
			ht := newHashTable(t, test.crt, test.capacity, test.hFunc)
			for k := int32(0); k < 500; k++ {
				ht.Insert(k * 17)
			}

			// Execute
			for k := int32(0); k < 500; k += 5 {
				assert.True(t, ht.Remove(k*17), "removes present key")
			}

			// Check
			assert.Equal(t, int64(400), ht.Len(), "correct number of keys left")
			for k := int32(0); k < 500; k++ {
				if ht.Contains(k*17) != (k%5 != 0) {
					assert.Failf(t, "wrong presence", "key %d", k*17)
				}
			}
			assert.False(t, ht.Remove(0), "already removed key")
		})
	}
}

func TestHashTable_Clear(t *testing.T) {
	for _, test := range operationTests {
		t.Run(fmt.Sprintf("clears all keys for %s", test.crtName), func(t *testing.T) {
			// Prepare
			ht := newHashTable(t, test.crt, test.capacity, test.hFunc)
			for k := int32(0); k < 100; k++ {
				ht.Insert(k)
			}
			capacity := ht.Capacity()

			// Execute
			ht.Clear()

			// Check
			m := ht.Metrics()
			assert.Zero(t, m.Records, "no keys")
			assert.Zero(t, m.LoadFactor, "zero load factor")
			assert.Zero(t, m.AverageClusterLength, "zero average")
			assert.Zero(t, m.MaxClusterLength, "zero max")
			assert.Equal(t, capacity, m.Capacity, "capacity kept")
			assert.False(t, ht.Contains(3), "key gone")
		})
	}
}

func TestHashTable_Metrics(t *testing.T) {
	t.Run("returns zero metrics for new tables", func(t *testing.T) {
		for _, test := range operationTests {
			// Prepare
			ht := newHashTable(t, test.crt, test.capacity, test.hFunc)

			// Execute
			m := ht.Metrics()

			// Check
			assert.Zero(t, m.LoadFactor, "zero load factor")
			assert.Zero(t, m.AverageClusterLength, "zero average")
			assert.Zero(t, m.MaxClusterLength, "zero max")
			assert.Equal(t, ht.MemoryUsage(), m.MemoryUsage, "memory of empty table")
		}
	})

	t.Run("reports cluster metrics for linear probing", func(t *testing.T) {
		// Prepare
		ht := newHashTable(t, crt.LinearProbing, 17, NewModuloHash())
		for _, k := range []int32{0, 17, 34, 1} {
			ht.Insert(k)
		}
		ht.Remove(34)

		// Execute
		m := ht.Metrics()

		// Check
		assert.Equal(t, 3.0/17.0, m.LoadFactor, "correct load factor")
		assert.Equal(t, 1.5, m.AverageClusterLength, "clusters of two and one")
		assert.Equal(t, int64(2), m.MaxClusterLength, "longest cluster")
		assert.Equal(t, int64(17*5), m.MemoryUsage, "slot memory")
		assert.Equal(t, int64(3), m.Records, "three keys")
		assert.Equal(t, int64(1), m.Deleted, "one tombstone")
		assert.Zero(t, m.Rehashes, "no growth")
	})

	t.Run("walks the table once per call", func(t *testing.T) {
		for _, test := range operationTests {
			// Prepare
			ht := newHashTable(t, test.crt, test.capacity, test.hFunc)
			for k := int32(0); k < 50; k++ {
				ht.Insert(k)
			}
			walks := 0
			lengths := ht.lengths
			ht.lengths = func() storage.LengthCollector {
				walks++
				return lengths()
			}

			// Execute
			m := ht.Metrics()

			// Check
			assert.Equalf(t, 1, walks, "one walk for %s", test.crtName)
			assert.Equal(t, ht.AverageClusterLength(), m.AverageClusterLength, "same average as accessor")
			assert.Equal(t, ht.MaxClusterLength(), m.MaxClusterLength, "same max as accessor")
		}
	})

	t.Run("reports chain metrics for separate chaining", func(t *testing.T) {
		// Prepare
		ht := newHashTable(t, crt.SeparateChaining, 4, NewModuloHash())
		for _, k := range []int32{0, 4, 8} {
			ht.Insert(k)
		}

		// Execute
		m := ht.Metrics()

		// Check
		assert.Equal(t, 3.0, m.AverageClusterLength, "one chain of three")
		assert.Equal(t, int64(3), m.MaxClusterLength, "longest chain")
		assert.Equal(t, 0.75, m.LoadFactor, "correct load factor")
		assert.Equal(t, int64(4*4+3*8), m.MemoryUsage, "heads plus nodes")
	})

	t.Run("reports growth for linear probing", func(t *testing.T) {
		// Prepare
		ht := newHashTable(t, crt.LinearProbing, 8, NewFibonacciHash())

		// Execute
		for k := int32(0); k < 1000; k++ {
			ht.Insert(k)
		}

		// Check
		m := ht.Metrics()
		assert.Equal(t, int64(2729), m.Capacity, "grown to prime capacity")
		assert.Equal(t, int64(8), m.Rehashes, "8, 17, 37, 79, 163, 331, 673, 1361, 2729")
		assert.LessOrEqual(t, m.LoadFactor, 0.7, "load factor bounded")
	})
}
