package openaddressing

import (
	"fmt"
	"github.com/gostonefire/hashmetrics/internal/conf"
	"github.com/gostonefire/hashmetrics/internal/model"
	"github.com/gostonefire/hashmetrics/internal/storage"
	"github.com/gostonefire/hashmetrics/internal/utils"
	log "github.com/sirupsen/logrus"
)

// probingForGet - Is the linear probing algorithm for finding the slot of a key.
// Probing goes on past tombstones and stops at the first empty slot or when back at the start slot.
func (Q *OATable) probingForGet(key int32) (idx int64, found bool) {
	capacity := Q.Capacity()
	start := Q.hashFunction.Index(key, capacity)

	idx = start
	for Q.slots[idx].State != model.SlotEmpty {
		if Q.slots[idx].State == model.SlotFilled && Q.slots[idx].Key == key {
			found = true
			return
		}

		idx = Q.probeIteration(idx, capacity)
		if idx == start {
			break
		}
	}

	return
}

// probingForInsert - Is the linear probing algorithm for inserting a key.
// Tombstones are walked past, so the key lands in the first empty slot after any filled slots and tombstones.
// Only if the whole table is walked without meeting an empty slot is the first tombstone on the way reused,
// having walked the whole table also proves that the key is not present.
// It returns true if the key was stored and false if it was already present.
func (Q *OATable) probingForInsert(key int32) bool {
	capacity := Q.Capacity()
	start := Q.hashFunction.Index(key, capacity)

	deleted := int64(-1)
	idx := start
	for Q.slots[idx].State != model.SlotEmpty {
		switch Q.slots[idx].State {
		case model.SlotFilled:
			if Q.slots[idx].Key == key {
				return false
			}
		case model.SlotDeleted:
			if deleted < 0 {
				deleted = idx
			}
		}

		idx = Q.probeIteration(idx, capacity)
		if idx == start {
			// Load factor is at most conf.MaxLoadFactor between inserts, so the walk has passed a tombstone
			idx = deleted
			Q.nDeleted--
			break
		}
	}

	Q.slots[idx] = model.Slot{Key: key, State: model.SlotFilled}
	Q.nFilled++

	return true
}

// probeIteration - Implements Linear Probing
func (Q *OATable) probeIteration(idx, capacity int64) int64 {
	idx++
	if idx >= capacity {
		idx = 0
	}

	return idx
}

// nextCapacity - Returns the capacity to grow into, the smallest prime at or above conf.GrowthFactor times capacity
func (Q *OATable) nextCapacity() int64 {
	return utils.NextPrime(conf.GrowthFactor * Q.Capacity())
}

// rehash - Replaces the slot array with a new array of newCapacity slots and reinserts all filled slots.
// Tombstones and empty slots are dropped.
func (Q *OATable) rehash(newCapacity int64) {
	if newCapacity < 1 {
		panic(fmt.Sprintf("rehash to capacity %d, capacity must be at least 1", newCapacity))
	}

	log.Debugf("rehash %s table from %d to %d slots with %d filled", Q.hashFunction.Name(), Q.Capacity(), newCapacity, Q.nFilled)

	oldSlots := Q.slots
	Q.slots = make([]model.Slot, newCapacity)
	Q.nFilled = 0
	Q.nDeleted = 0
	Q.nRehashes++

	for _, slot := range oldSlots {
		if slot.State == model.SlotFilled {
			Q.probingForInsert(slot.Key)
		}
	}
}

// clusters - Collects the lengths of all runs of filled slots
func (Q *OATable) clusters() storage.LengthCollector {
	return storage.CollectRuns(Q.Capacity(), func(i int64) bool { return Q.slots[i].State == model.SlotFilled })
}
