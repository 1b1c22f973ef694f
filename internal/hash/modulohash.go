package hash

// ModuloHash - Plain modulo hashing, index = key mod tableSize with the key bit pattern taken as unsigned 32 bit.
type ModuloHash struct{}

// NewModuloHash - Returns a new ModuloHash instance
func NewModuloHash() ModuloHash {
	return ModuloHash{}
}

// Index - Given key it generates an index between 0 and table size - 1
func (M ModuloHash) Index(key int32, tableSize int64) int64 {
	return int64(uint64(uint32(key)) % uint64(tableSize))
}

// Name - Returns the name of the hash function
func (M ModuloHash) Name() string {
	return "Modulo"
}
