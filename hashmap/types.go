package hashmap

import (
	g "github.com/zyedidia/generic"
)

// LoadFactor is the live-entry/bucket ratio at which the table grows.
const LoadFactor = 0.75

// DefaultCapacity is used when New receives a capacity below 1.
const DefaultCapacity = 16

// entry is one node of a bucket chain.
type entry[K, V any] struct {
	key   K
	value V
	next  *entry[K, V]
}

// Map is a chained hash map. The zero value is not usable; construct with New.
//
// Map is not safe for concurrent use.
type Map[K, V any] struct {
	buckets []*entry[K, V]
	size    int
	equals  g.EqualsFn[K]
	hash    g.HashFn[K]
}
