package separatechaining

import (
	"github.com/gostonefire/hashmetrics/crt"
	"github.com/gostonefire/hashmetrics/hashfunc"
	"github.com/gostonefire/hashmetrics/internal/conf"
	"github.com/gostonefire/hashmetrics/internal/hash"
	"github.com/gostonefire/hashmetrics/internal/model"
	"github.com/gostonefire/hashmetrics/internal/storage"
)

// node - One entry in a chain, next is the arena index of the following node or conf.NoNode
type node struct {
	key  int32
	next int32
}

// SCTable - Represents an implementation of the Separate Chaining Collision Resolution Technique.
// Every bucket heads a singly linked chain of nodes. Nodes live in one arena and are linked by index,
// nodes that are removed are put on a free list and reused by later inserts.
// The number of buckets is fixed for the lifetime of the table and keys are not deduplicated, inserting a
// key twice gives two nodes in the same chain.
// Nodes are addressed by int32, so a table holds at most conf.MaxNodes keys at any one time.
type SCTable struct {
	heads        []int32
	nodes        []node
	free         int32
	hashFunction hashfunc.HashFunction
	nFilled      int64
}

// NewSCTable - Returns a pointer to a new instance of a Separate Chaining table.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting table creation
//
// It returns:
//   - scTable which is a pointer to the created instance
//   - err which is of type crt.InvalidCapacity if capacity is less than 1
func NewSCTable(tableConf model.TableConf) (scTable *SCTable, err error) {
	if tableConf.Capacity < 1 {
		err = crt.InvalidCapacity{Capacity: tableConf.Capacity}
		return
	}

	// If no HashFunction was given then use the default internal
	if tableConf.HashFunction == nil {
		tableConf.HashFunction = hash.NewFibonacciHash()
	}

	scTable = &SCTable{
		heads:        make([]int32, tableConf.Capacity),
		free:         conf.NoNode,
		hashFunction: tableConf.HashFunction,
	}
	scTable.resetHeads()

	return
}

// Insert - Prepends key to the chain of its bucket. No check for an existing equal key is made.
func (S *SCTable) Insert(key int32) {
	bucketNo := S.getBucketNo(key)

	idx := S.newNode(key, S.heads[bucketNo])
	S.heads[bucketNo] = idx
	S.nFilled++
}

// Contains - Returns true if key is present in the chain of its bucket
func (S *SCTable) Contains(key int32) bool {
	iter := S.chain(S.getBucketNo(key))
	for iter.HasNext() {
		if S.nodes[iter.Next()].key == key {
			return true
		}
	}

	return false
}

// Remove - Unlinks the first node holding key from the chain of its bucket.
// It returns true if a node was removed and false if key was not present.
func (S *SCTable) Remove(key int32) bool {
	bucketNo := S.getBucketNo(key)

	prev := conf.NoNode
	iter := S.chain(bucketNo)
	for iter.HasNext() {
		idx := iter.Next()
		if S.nodes[idx].key != key {
			prev = idx
			continue
		}

		if prev == conf.NoNode {
			S.heads[bucketNo] = S.nodes[idx].next
		} else {
			S.nodes[prev].next = S.nodes[idx].next
		}
		S.releaseNode(idx)
		S.nFilled--

		return true
	}

	return false
}

// Clear - Releases every node in every bucket, the number of buckets is kept as is
func (S *SCTable) Clear() {
	S.resetHeads()
	S.nodes = nil
	S.free = conf.NoNode
	S.nFilled = 0
}

// Capacity - Returns the number of buckets
func (S *SCTable) Capacity() int64 {
	return int64(len(S.heads))
}

// Len - Returns the number of nodes over all buckets
func (S *SCTable) Len() int64 {
	return S.nFilled
}

// LoadFactor - Returns number of nodes divided by number of buckets
func (S *SCTable) LoadFactor() float64 {
	return storage.LoadFactor(S.nFilled, S.Capacity())
}

// AverageChainLength - Returns the mean chain length over non-empty buckets, zero if the table is empty
func (S *SCTable) AverageChainLength() float64 {
	c := S.ChainLengths()

	return c.Average()
}

// MaxChainLength - Returns the length of the longest chain, zero if the table is empty
func (S *SCTable) MaxChainLength() int64 {
	c := S.ChainLengths()

	return c.Max()
}

// ChainLengths - Walks every bucket once and returns the lengths of all chains
func (S *SCTable) ChainLengths() storage.LengthCollector {
	return S.chainLengths()
}

// MemoryUsage - Returns an estimate of the number of bytes held by bucket heads and live nodes
func (S *SCTable) MemoryUsage() int64 {
	return S.Capacity()*conf.BucketHeadBytes + S.nFilled*conf.NodeBytes
}

// GetTableParameters - Returns a struct with parameters and utilization of the SCTable
func (S *SCTable) GetTableParameters() (params model.TableParameters) {
	params = model.TableParameters{
		CollisionResolutionTechnique: crt.SeparateChaining,
		HashFunction:                 S.hashFunction.Name(),
		InitialCapacity:              S.Capacity(),
		Capacity:                     S.Capacity(),
		NumberOfFilled:               S.nFilled,
	}

	return
}
