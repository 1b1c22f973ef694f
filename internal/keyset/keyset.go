package keyset

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

// MaxKeys - Is the largest key set that can be generated, clustered keys reach about twice the count.
const MaxKeys = 1 << 29

// RandomKeyMax - Is the inclusive upper bound of random keys.
const RandomKeyMax = 1 << 30

// Pattern names accepted by Generate
const (
	PatternRandom     = "random"
	PatternSequential = "sequential"
	PatternClustered  = "clustered"
)

// Dataset - Is a named, ordered sequence of keys.
type Dataset struct {
	Name string
	Keys []int32
}

// Random - Returns n keys drawn uniformly from [0, RandomKeyMax] by a generator seeded with seed.
// Duplicates are possible and kept.
func Random(n int, seed int64) []int32 {
	r := rand.New(rand.NewSource(seed))

	keys := make([]int32, n)
	for i := range keys {
		keys[i] = r.Int31n(RandomKeyMax + 1)
	}
	return keys
}

// Sequential - Returns the keys 0 to n-1 in order.
func Sequential(n int) []int32 {
	keys := make([]int32, n)
	for i := range keys {
		keys[i] = int32(i)
	}
	return keys
}

// Clustered - Returns runs of ten consecutive keys separated by gaps of ten,
// i.e. 0..9, 20..29, 40..49 and so on.
func Clustered(n int) []int32 {
	keys := make([]int32, n)
	for i := range keys {
		keys[i] = int32((i/10)*20 + i%10)
	}
	return keys
}

// Generate - Returns n keys following the named pattern.
func Generate(pattern string, n int, seed int64) ([]int32, error) {
	if n < 0 || n > MaxKeys {
		return nil, errors.Errorf("number of keys %d out of range [0, %d]", n, MaxKeys)
	}

	switch strings.ToLower(pattern) {
	case PatternRandom:
		return Random(n, seed), nil
	case PatternSequential:
		return Sequential(n), nil
	case PatternClustered:
		return Clustered(n), nil
	}

	return nil, errors.Errorf("unknown key pattern %q", pattern)
}

// Datasets - Returns the random, sequential and clustered key sets of n keys, in that order.
func Datasets(n int, seed int64) ([]Dataset, error) {
	var datasets []Dataset
	for _, p := range []struct{ name, pattern string }{
		{"Random", PatternRandom},
		{"Sequential", PatternSequential},
		{"Clustered", PatternClustered},
	} {
		keys, err := Generate(p.pattern, n, seed)
		if err != nil {
			return nil, errors.Wrap(err, "Generate")
		}
		datasets = append(datasets, Dataset{Name: p.name, Keys: keys})
	}

	return datasets, nil
}
