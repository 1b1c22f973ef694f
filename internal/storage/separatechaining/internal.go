package separatechaining

import (
	"fmt"

	"github.com/gostonefire/hashmetrics/internal/conf"
	"github.com/gostonefire/hashmetrics/internal/storage"
)

// maxNodes - Arena size limit, lowered in tests
var maxNodes = conf.MaxNodes

// getBucketNo - Returns which bucket number that the given key results in
func (S *SCTable) getBucketNo(key int32) int64 {
	return S.hashFunction.Index(key, S.Capacity())
}

// resetHeads - Marks every bucket as empty
func (S *SCTable) resetHeads() {
	for i := range S.heads {
		S.heads[i] = conf.NoNode
	}
}

// newNode - Stores a node in the arena, reusing a released entry if there is one, and returns its index
func (S *SCTable) newNode(key int32, next int32) (idx int32) {
	if S.free != conf.NoNode {
		idx = S.free
		S.free = S.nodes[idx].next
		S.nodes[idx] = node{key: key, next: next}
		return
	}

	if int64(len(S.nodes)) >= maxNodes {
		panic(fmt.Sprintf("node arena full at %d nodes, a separate chaining table holds at most %d keys", len(S.nodes), maxNodes))
	}

	idx = int32(len(S.nodes))
	S.nodes = append(S.nodes, node{key: key, next: next})

	return
}

// releaseNode - Puts an unlinked node on the free list
func (S *SCTable) releaseNode(idx int32) {
	S.nodes[idx] = node{next: S.free}
	S.free = idx
}

// chain - Returns an iterator over the nodes of a bucket
func (S *SCTable) chain(bucketNo int64) *ChainNodes {
	return newChainNodes(S.nodes, S.heads[bucketNo])
}

// chainLengths - Collects the length of every chain
func (S *SCTable) chainLengths() (collector storage.LengthCollector) {
	for i := range S.heads {
		var n int64
		iter := S.chain(int64(i))
		for iter.HasNext() {
			iter.Next()
			n++
		}
		collector.Add(n)
	}

	return
}
