package openaddressing

import (
	"github.com/gostonefire/hashmetrics/crt"
	"github.com/gostonefire/hashmetrics/hashfunc"
	"github.com/gostonefire/hashmetrics/internal/conf"
	"github.com/gostonefire/hashmetrics/internal/hash"
	"github.com/gostonefire/hashmetrics/internal/model"
	"github.com/gostonefire/hashmetrics/internal/storage"
)

// OATable - Represents an implementation of the Open Addressing Collision Resolution Technique with linear probing.
// It uses one array of slots where each slot holds at most one key. In case of a collision, it probes linearly
// through the array, wrapping at its end, looking for an empty slot. Deleted keys leave a tombstone behind so that
// keys inserted after them stay reachable. Once the load factor exceeds conf.MaxLoadFactor after an insert the
// table grows to the next prime at or above twice its capacity, dropping all tombstones on the way.
type OATable struct {
	slots           []model.Slot
	initialCapacity int64
	hashFunction    hashfunc.HashFunction
	nFilled         int64
	nDeleted        int64
	nRehashes       int64
}

// NewOATable - Returns a pointer to a new instance of an Open Addressing table.
//   - tableConf is a model.TableConf struct providing configuration parameters affecting table creation
//
// It returns:
//   - oaTable which is a pointer to the created instance
//   - err which is of type crt.InvalidCapacity if capacity is less than 1
func NewOATable(tableConf model.TableConf) (oaTable *OATable, err error) {
	if tableConf.Capacity < 1 {
		err = crt.InvalidCapacity{Capacity: tableConf.Capacity}
		return
	}

	// If no HashFunction was given then use the default internal
	if tableConf.HashFunction == nil {
		tableConf.HashFunction = hash.NewFibonacciHash()
	}

	oaTable = &OATable{
		slots:           make([]model.Slot, tableConf.Capacity),
		initialCapacity: tableConf.Capacity,
		hashFunction:    tableConf.HashFunction,
	}

	return
}

// Insert - Inserts key unless it is already present, and grows the table if the load factor gets too high.
func (Q *OATable) Insert(key int32) {
	if !Q.probingForInsert(key) {
		return
	}

	if Q.LoadFactor() > conf.MaxLoadFactor {
		Q.rehash(Q.nextCapacity())
	}
}

// Contains - Returns true if key is present in the table
func (Q *OATable) Contains(key int32) bool {
	_, found := Q.probingForGet(key)

	return found
}

// Remove - Removes key by leaving a tombstone in its slot.
// It returns true if key was present and false otherwise.
func (Q *OATable) Remove(key int32) bool {
	idx, found := Q.probingForGet(key)
	if !found {
		return false
	}

	Q.slots[idx].State = model.SlotDeleted
	Q.nFilled--
	Q.nDeleted++

	return true
}

// Clear - Sets every slot to empty, the capacity is kept as is
func (Q *OATable) Clear() {
	for i := range Q.slots {
		Q.slots[i] = model.Slot{}
	}
	Q.nFilled = 0
	Q.nDeleted = 0
}

// Capacity - Returns the current number of slots
func (Q *OATable) Capacity() int64 {
	return int64(len(Q.slots))
}

// Len - Returns the number of filled slots
func (Q *OATable) Len() int64 {
	return Q.nFilled
}

// LoadFactor - Returns number of filled slots divided by capacity
func (Q *OATable) LoadFactor() float64 {
	return storage.LoadFactor(Q.nFilled, Q.Capacity())
}

// AverageClusterLength - Returns the mean length of all clusters, a cluster being a maximal run of filled slots
// in array order (the end of the array always ends a cluster). Zero if the table has no filled slots.
func (Q *OATable) AverageClusterLength() float64 {
	c := Q.ClusterLengths()

	return c.Average()
}

// MaxClusterLength - Returns the length of the longest cluster, zero if the table has no filled slots
func (Q *OATable) MaxClusterLength() int64 {
	c := Q.ClusterLengths()

	return c.Max()
}

// ClusterLengths - Walks the slot array once and returns the lengths of all clusters
func (Q *OATable) ClusterLengths() storage.LengthCollector {
	return Q.clusters()
}

// MemoryUsage - Returns an estimate of the number of bytes held by the slot array
func (Q *OATable) MemoryUsage() int64 {
	return Q.Capacity() * (conf.KeyBytes + conf.SlotStateBytes)
}

// GetTableParameters - Returns a struct with parameters and utilization of the OATable
func (Q *OATable) GetTableParameters() (params model.TableParameters) {
	params = model.TableParameters{
		CollisionResolutionTechnique: crt.LinearProbing,
		HashFunction:                 Q.hashFunction.Name(),
		InitialCapacity:              Q.initialCapacity,
		Capacity:                     Q.Capacity(),
		NumberOfFilled:               Q.nFilled,
		NumberOfDeleted:              Q.nDeleted,
		NumberOfRehashes:             Q.nRehashes,
	}

	return
}
