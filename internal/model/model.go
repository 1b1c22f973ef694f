package model

import "github.com/gostonefire/hashmetrics/hashfunc"

// SlotEmpty - State indicating a slot that is or has never been in use
const SlotEmpty uint8 = 0

// SlotFilled - State indicating a slot that is in use
const SlotFilled uint8 = 1

// SlotDeleted - State indicating a slot that has been in use but was deleted (tombstone)
const SlotDeleted uint8 = 2

// Slot - Represents one slot in an open addressing table
type Slot struct {
	Key   int32
	State uint8
}

// TableConf - Is a struct to be passed in the call to NewXXTable and contains configuration that affects
// table creation.
//   - Capacity is the initial number of slots or buckets
//   - HashFunction is the hash function to use
type TableConf struct {
	Capacity     int64
	HashFunction hashfunc.HashFunction
}

// TableParameters - Represents parameters and utilization of any table implementation
type TableParameters struct {
	CollisionResolutionTechnique int
	HashFunction                 string
	InitialCapacity              int64
	Capacity                     int64
	NumberOfFilled               int64
	NumberOfDeleted              int64
	NumberOfRehashes             int64
}
