package hashfunc

// HashFunction - Interface that permits a table to be created with a custom slot selection algorithm.
// Implementations must be stateless so that one instance can be shared between tables.
type HashFunction interface {
	// Index - Given key it generates an index (slot or bucket) between 0 and table size - 1.
	// Table size is always a positive value, the caller guarantees it.
	Index(key int32, tableSize int64) int64

	// Name - Returns a short name of the hash function to be used in reports
	Name() string
}
