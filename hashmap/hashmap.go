package hashmap

import (
	g "github.com/zyedidia/generic"
)

// New returns an empty Map with the given initial bucket count.
// equals and hash must agree: equal keys must hash equally.
// A capacity below 1 falls back to DefaultCapacity.
// Complexity: O(capacity).
func New[K, V any](capacity int, equals g.EqualsFn[K], hash g.HashFn[K]) *Map[K, V] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &Map[K, V]{
		buckets: make([]*entry[K, V], capacity),
		equals:  equals,
		hash:    hash,
	}
}

// NewComparable is New for comparable keys, using == as equality.
func NewComparable[K comparable, V any](capacity int, hash g.HashFn[K]) *Map[K, V] {
	return New[K, V](capacity, g.Equals[K], hash)
}

// Len returns the number of live entries.
func (m *Map[K, V]) Len() int { return m.size }

// Capacity returns the current number of buckets.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// index maps a key onto a bucket. The hash is unsigned, so the result is in [0, cap).
func (m *Map[K, V]) index(key K, capacity int) int {
	return int(m.hash(key) % uint64(capacity))
}

// Put associates value with key, overwriting any previous value.
// Complexity: amortized O(1).
func (m *Map[K, V]) Put(key K, value V) {
	if float64(m.size)/float64(len(m.buckets)) >= LoadFactor {
		m.resize()
	}

	i := m.index(key, len(m.buckets))
	for e := m.buckets[i]; e != nil; e = e.next {
		if m.equals(e.key, key) {
			e.value = value
			return
		}
	}

	m.buckets[i] = &entry[K, V]{key: key, value: value, next: m.buckets[i]}
	m.size++
}

// Get returns the value stored under key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}
	var zero V

	return zero, false
}

// GetOrDefault returns the value stored under key, or def when absent.
func (m *Map[K, V]) GetOrDefault(key K, def V) V {
	if e := m.find(key); e != nil {
		return e.value
	}

	return def
}

// ContainsKey reports whether key has a mapping.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.find(key) != nil
}

// Remove deletes the mapping for key and reports whether one existed.
func (m *Map[K, V]) Remove(key K) bool {
	i := m.index(key, len(m.buckets))
	var prev *entry[K, V]
	for e := m.buckets[i]; e != nil; e = e.next {
		if m.equals(e.key, key) {
			if prev == nil {
				m.buckets[i] = e.next
			} else {
				prev.next = e.next
			}
			m.size--
			return true
		}
		prev = e
	}

	return false
}

// Values returns every stored value in unspecified order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.size)
	m.Each(func(_ K, v V) {
		out = append(out, v)
	})

	return out
}

// Each calls fn for every entry in unspecified order.
// fn must not mutate the map.
func (m *Map[K, V]) Each(fn func(key K, value V)) {
	for _, head := range m.buckets {
		for e := head; e != nil; e = e.next {
			fn(e.key, e.value)
		}
	}
}

func (m *Map[K, V]) find(key K) *entry[K, V] {
	for e := m.buckets[m.index(key, len(m.buckets))]; e != nil; e = e.next {
		if m.equals(e.key, key) {
			return e
		}
	}

	return nil
}

// resize grows the table to 2·cap+1 buckets and relinks every entry.
// Entries are moved, not copied, so no allocation happens per entry.
func (m *Map[K, V]) resize() {
	newCap := 2*len(m.buckets) + 1
	next := make([]*entry[K, V], newCap)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			following := e.next
			i := m.index(e.key, newCap)
			e.next = next[i]
			next[i] = e
			e = following
		}
	}
	m.buckets = next
}
