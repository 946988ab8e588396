// Package ordmap provides a map with unique string keys that preserves
// insertion order. It does double bookkeeping, a plain map for lookups
// and a slice for the order, so iteration is deterministic regardless
// of how the map was built.
package ordmap

// Map is an insertion-ordered map with string keys. The zero value is
// ready to use.
type Map[V any] struct {
	values map[string]V
	order  []string
}

// New returns an empty map.
func New[V any]() Map[V] {
	return Map[V]{values: make(map[string]V)}
}

// Insert stores value under key. An existing key keeps its original
// position and gets the new value. Insert reports whether the key was
// not present before.
func (m *Map[V]) Insert(key string, value V) bool {
	if m.values == nil {
		m.values = make(map[string]V)
	}

	_, exists := m.values[key]
	m.values[key] = value

	if !exists {
		m.order = append(m.order, key)
	}

	return !exists
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	value, ok := m.values[key]

	return value, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.values[key]

	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.order)
}

// IsEmpty reports whether the map has no entries.
func (m *Map[V]) IsEmpty() bool {
	return len(m.order) == 0
}

// Keys returns the keys in insertion order. The slice is shared; do
// not modify it.
func (m *Map[V]) Keys() []string {
	return m.order
}

// Values returns the values in insertion order.
func (m *Map[V]) Values() []V {
	values := make([]V, 0, len(m.order))

	for _, key := range m.order {
		values = append(values, m.values[key])
	}

	return values
}
