package conf

import "math"

// MaxLoadFactor - Load factor that, once exceeded after an insert, makes an open addressing table grow
const MaxLoadFactor float64 = 0.7

// GrowthFactor - An open addressing table grows to the next prime at or above GrowthFactor times its capacity
const GrowthFactor int64 = 2

// KeyBytes - Number of bytes used by a stored key
const KeyBytes int64 = 4

// SlotStateBytes - Number of bytes used by the state tag of an open addressing slot
const SlotStateBytes int64 = 1

// BucketHeadBytes - Number of bytes used by a separate chaining bucket head (index into the node arena)
const BucketHeadBytes int64 = 4

// NodeBytes - Number of bytes used by a separate chaining node (key and index of next node)
const NodeBytes int64 = KeyBytes + 4

// NoNode - Index used to terminate a chain or mark an empty bucket
const NoNode int32 = -1

// MaxNodes - Largest number of nodes a separate chaining node arena can address
const MaxNodes int64 = math.MaxInt32
