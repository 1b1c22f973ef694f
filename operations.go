package hashmetrics

// Insert - Inserts key into the table.
// With crt.LinearProbing inserting a key that is already present is a no-op, with crt.SeparateChaining the key
// is added once more to the chain of its bucket.
//   - key is the key to insert
func (H *HashTable) Insert(key int32) {
	H.table.Insert(key)
}

// Contains - Returns true if key is present in the table
//   - key is the key to look for
func (H *HashTable) Contains(key int32) bool {
	return H.table.Contains(key)
}

// Remove - Removes key from the table. With crt.SeparateChaining only the first of any duplicates is removed.
//   - key is the key to remove
//
// It returns:
//   - removed is true if the key was present and false otherwise
func (H *HashTable) Remove(key int32) (removed bool) {
	return H.table.Remove(key)
}

// Clear - Removes all keys, the current capacity is kept
func (H *HashTable) Clear() {
	H.table.Clear()
}

// Len - Returns the number of stored keys
func (H *HashTable) Len() int64 {
	return H.table.Len()
}

// Capacity - Returns the current number of slots or buckets
func (H *HashTable) Capacity() int64 {
	return H.table.Capacity()
}

// CollisionResolutionTechnique - Returns the technique the table was created with
func (H *HashTable) CollisionResolutionTechnique() int {
	return H.technique
}

// LoadFactor - Returns the number of stored keys divided by capacity
func (H *HashTable) LoadFactor() float64 {
	return H.table.LoadFactor()
}

// AverageClusterLength - Returns the mean cluster length for open addressing or the mean length of
// non-empty chains for separate chaining. Zero for an empty table.
func (H *HashTable) AverageClusterLength() float64 {
	c := H.lengths()

	return c.Average()
}

// MaxClusterLength - Returns the longest cluster for open addressing or the longest chain for separate chaining.
// Zero for an empty table.
func (H *HashTable) MaxClusterLength() int64 {
	c := H.lengths()

	return c.Max()
}

// MemoryUsage - Returns the estimated number of bytes held by the table
func (H *HashTable) MemoryUsage() int64 {
	return H.table.MemoryUsage()
}

// Metrics - Walks through the table once and produces a TableMetrics struct reflecting its current state.
// Nothing is cached, so calling it on a big table takes time proportional to its capacity.
func (H *HashTable) Metrics() (tableMetrics TableMetrics) {
	tp := H.table.GetTableParameters()
	c := H.lengths()

	tableMetrics = TableMetrics{
		LoadFactor:           H.table.LoadFactor(),
		AverageClusterLength: c.Average(),
		MaxClusterLength:     c.Max(),
		MemoryUsage:          H.table.MemoryUsage(),
		Capacity:             tp.Capacity,
		Records:              tp.NumberOfFilled,
		Deleted:              tp.NumberOfDeleted,
		Rehashes:             tp.NumberOfRehashes,
	}

	return
}
