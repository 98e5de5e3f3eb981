// Package orderedmap provides a generic map that keeps keys unique and
// remembers the order in which they were first set.
//
// Unlike the builtin map, lookups of a missing key are reported as
// errors by Get and Remove, and the zero value of K is reserved: it can
// never be stored. Lookup is the non-failing variant for callers that
// only need presence.
package orderedmap

import (
	"fmt"
	"iter"
)

type entry[K comparable, V any] struct {
	key K
	val V
}

// Map is an insertion-ordered map. The zero value is ready to use.
// It is not safe for concurrent use.
type Map[K comparable, V any] struct {
	index   map[K]int
	entries []entry[K, V]
}

// New returns an empty Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// Set stores value under key. An existing key keeps its position and has
// its value replaced; a new key is appended.
func (m *Map[K, V]) Set(key K, value V) error {
	var zero K
	if key == zero {
		return fmt.Errorf("set %v: %w", key, ErrInvalidKey)
	}
	if idx, ok := m.index[key]; ok {
		m.entries[idx].val = value
		return nil
	}
	if m.index == nil {
		m.index = make(map[K]int)
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, entry[K, V]{key: key, val: value})
	return nil
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.Lookup(key)
	if !ok {
		return v, fmt.Errorf("get %v: %w", key, ErrKeyNotFound)
	}
	return v, nil
}

// Lookup returns the value stored under key and whether it was present.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	idx, ok := m.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[idx].val, true
}

// HasKey reports whether key is present.
func (m *Map[K, V]) HasKey(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Remove deletes key, shifting later entries down by one.
func (m *Map[K, V]) Remove(key K) error {
	idx, ok := m.index[key]
	if !ok {
		return fmt.Errorf("remove %v: %w", key, ErrKeyNotFound)
	}
	copy(m.entries[idx:], m.entries[idx+1:])
	var tail entry[K, V]
	m.entries[len(m.entries)-1] = tail
	m.entries = m.entries[:len(m.entries)-1]
	delete(m.index, key)
	for i := idx; i < len(m.entries); i++ {
		m.index[m.entries[i].key] = i
	}
	return nil
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Keys returns the keys in insertion order. The result is never nil.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.key
	}
	return out
}

// Values returns the values in key insertion order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.val
	}
	return out
}

// All iterates over key/value pairs in insertion order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, e := range m.entries {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
