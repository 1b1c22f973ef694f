package storage

// LengthCollector - Accumulates cluster or chain lengths and derives average and max from them.
// Zero lengths (empty buckets) count towards neither the average nor the number of runs.
type LengthCollector struct {
	total int64
	runs  int64
	max   int64
}

// Add - Adds one cluster or chain length to the collector
func (L *LengthCollector) Add(length int64) {
	if length <= 0 {
		return
	}

	L.total += length
	L.runs++
	if length > L.max {
		L.max = length
	}
}

// Average - Returns the mean length over all non-empty runs, zero if there are none
func (L *LengthCollector) Average() float64 {
	if L.runs == 0 {
		return 0
	}

	return float64(L.total) / float64(L.runs)
}

// Max - Returns the longest run added, zero if there are none
func (L *LengthCollector) Max() int64 {
	return L.max
}

// Runs - Returns the number of non-empty runs added
func (L *LengthCollector) Runs() int64 {
	return L.runs
}

// CollectRuns - Walks positions 0 to n - 1 and adds the length of every maximal run of positions
// for which filled returns true. The walk does not wrap around, position n - 1 ends any run.
func CollectRuns(n int64, filled func(i int64) bool) (collector LengthCollector) {
	var run int64
	for i := int64(0); i < n; i++ {
		if filled(i) {
			run++
			continue
		}
		collector.Add(run)
		run = 0
	}
	collector.Add(run)

	return
}

// LoadFactor - Returns filled divided by capacity, zero for a non positive capacity
func LoadFactor(filled, capacity int64) float64 {
	if capacity <= 0 {
		return 0
	}

	return float64(filled) / float64(capacity)
}
