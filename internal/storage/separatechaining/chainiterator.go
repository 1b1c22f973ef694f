package separatechaining

import "github.com/gostonefire/hashmetrics/internal/conf"

// ChainNodes - Is used to iterate over the nodes of one chain, one by one.
type ChainNodes struct {
	nodes []node
	next  int32
}

// newChainNodes - Returns a pointer to a new ChainNodes struct starting at head
func newChainNodes(nodes []node, head int32) *ChainNodes {

	return &ChainNodes{
		nodes: nodes,
		next:  head,
	}
}

// HasNext - Returns true if there are more nodes to be fetched from a call to Next.
func (C *ChainNodes) HasNext() bool {
	return C.next != conf.NoNode
}

// Next - Returns the arena index of the next node in the chain, or conf.NoNode if the chain is exhausted.
// The iterator reads the link before returning, so the returned node may be unlinked by the caller.
func (C *ChainNodes) Next() (idx int32) {
	idx = C.next
	if idx == conf.NoNode {
		return
	}

	C.next = C.nodes[idx].next

	return
}
