// Package hashmap provides a generic key→value map with separate chaining.
//
// What:
//
//   - Map[K, V] stores entries in an array of singly linked bucket chains.
//   - Hashing and equality are supplied by the caller (generic.HashFn / generic.EqualsFn
//     from github.com/zyedidia/generic), so any key type can be stored, including
//     packed coordinate keys that never go through a string.
//
// Collision handling:
//
//   - Each bucket is a chain; a new key is inserted at the head of its chain.
//   - Put on an existing key overwrites the value in place.
//
// Growth:
//
//   - Before every Put, if Len()/Capacity() ≥ LoadFactor (0.75), the bucket array is
//     replaced by one of size 2·cap+1 and every entry is rehashed.
//   - Amortized O(1) Put, expected O(1) Get/ContainsKey/Remove.
//
// Bucket index:
//
//   - index = hash(key) mod capacity, computed on the unsigned 64-bit hash,
//     so the index is never negative.
//
// Iteration (Values, Each) has no ordering guarantee.
package hashmap
