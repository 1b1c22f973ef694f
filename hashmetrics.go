package hashmetrics

import (
	"github.com/gostonefire/hashmetrics/crt"
	"github.com/gostonefire/hashmetrics/hashfunc"
	"github.com/gostonefire/hashmetrics/internal/hash"
	"github.com/gostonefire/hashmetrics/internal/model"
	"github.com/gostonefire/hashmetrics/internal/storage"
	"github.com/gostonefire/hashmetrics/internal/storage/openaddressing"
	"github.com/gostonefire/hashmetrics/internal/storage/separatechaining"
	log "github.com/sirupsen/logrus"
)

// Table - Interface for any collision resolution technique implementation
type Table interface {
	Insert(key int32)
	Contains(key int32) bool
	Remove(key int32) bool
	Clear()
	Capacity() int64
	Len() int64
	LoadFactor() float64
	MemoryUsage() int64
	GetTableParameters() (params model.TableParameters)
}

// HashTableInfo - Information structure containing some information about the hash table created
//   - CollisionResolutionTechnique is the technique used, one of the constants in package crt
//   - HashFunction is the name of the hash function used
//   - Capacity is the number of slots or buckets the table was created with
//   - MemoryUsage is the estimated number of bytes held by the empty table
type HashTableInfo struct {
	CollisionResolutionTechnique int
	HashFunction                 string
	Capacity                     int64
	MemoryUsage                  int64
}

// TableMetrics - Statistics on the current collision structure of a hash table, derived on demand
//   - LoadFactor is the number of stored keys divided by capacity
//   - AverageClusterLength is the mean cluster length (open addressing) or mean non-empty chain length (separate chaining)
//   - MaxClusterLength is the longest cluster or chain
//   - MemoryUsage is the estimated number of bytes held by the table
//   - Capacity is the current number of slots or buckets
//   - Records is the number of stored keys
//   - Deleted is the number of tombstones (open addressing only)
//   - Rehashes is the number of times the table has grown (open addressing only)
type TableMetrics struct {
	LoadFactor           float64
	AverageClusterLength float64
	MaxClusterLength     int64
	MemoryUsage          int64
	Capacity             int64
	Records              int64
	Deleted              int64
	Rehashes             int64
}

// HashTable - The main implementation struct
type HashTable struct {
	table     Table
	technique int
	// lengths - Returns cluster or chain lengths depending on technique, walking the table once
	lengths func() storage.LengthCollector
}

// NewHashTable - Returns a new hash table of integer keys using the given collision resolution technique.
//   - collisionResolutionTechnique is one of crt.SeparateChaining or crt.LinearProbing
//   - capacity is the initial number of slots (open addressing) or the fixed number of buckets (separate chaining)
//   - hashFunction is an optional entry to provide the hash function, if nil the Fibonacci hash is used
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - hashTableInfo is a HashTableInfo struct containing some data regarding the hash table created.
//   - err is either of type crt.InvalidCapacity, crt.UnknownTechnique or nil if everything went ok
func NewHashTable(
	collisionResolutionTechnique int,
	capacity int64,
	hashFunction hashfunc.HashFunction,
) (
	hashTable *HashTable,
	hashTableInfo HashTableInfo,
	err error,
) {
	tableConf := model.TableConf{
		Capacity:     capacity,
		HashFunction: hashFunction,
	}

	hashTable = &HashTable{technique: collisionResolutionTechnique}

	switch collisionResolutionTechnique {
	case crt.SeparateChaining:
		var scTable *separatechaining.SCTable
		scTable, err = separatechaining.NewSCTable(tableConf)
		if err != nil {
			hashTable = nil
			return
		}
		hashTable.table = scTable
		hashTable.lengths = scTable.ChainLengths

	case crt.LinearProbing:
		var oaTable *openaddressing.OATable
		oaTable, err = openaddressing.NewOATable(tableConf)
		if err != nil {
			hashTable = nil
			return
		}
		hashTable.table = oaTable
		hashTable.lengths = oaTable.ClusterLengths

	default:
		hashTable = nil
		err = crt.UnknownTechnique{Technique: collisionResolutionTechnique}
		return
	}

	tp := hashTable.table.GetTableParameters()

	hashTableInfo = HashTableInfo{
		CollisionResolutionTechnique: tp.CollisionResolutionTechnique,
		HashFunction:                 tp.HashFunction,
		Capacity:                     tp.Capacity,
		MemoryUsage:                  hashTable.table.MemoryUsage(),
	}

	log.Debugf("created %s table with %s hash and capacity %d", crt.Name(tp.CollisionResolutionTechnique), tp.HashFunction, tp.Capacity)

	return
}

// NewFibonacciHash - Returns the multiplicative Fibonacci hash function
func NewFibonacciHash() hashfunc.HashFunction {
	return hash.NewFibonacciHash()
}

// NewModuloHash - Returns the plain modulo hash function
func NewModuloHash() hashfunc.HashFunction {
	return hash.NewModuloHash()
}
