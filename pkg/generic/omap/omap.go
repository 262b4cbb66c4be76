package omap

// OrderedMap is a map that remembers the order in which keys were first set.
// The zero value is ready to use.
type OrderedMap[K comparable, V any] struct {
	data map[K]V
	keys []K
}

func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		data: make(map[K]V),
	}
}

// Set stores value under key. Replacing a value keeps the key's position.
func (m *OrderedMap[K, V]) Set(key K, value V) {
	if m.data == nil {
		m.data = make(map[K]V)
	}
	if _, ok := m.data[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.data[key] = value
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Range calls fn for every entry in insertion order until fn returns false.
func (m *OrderedMap[K, V]) Range(fn func(key K, value V) bool) {
	for _, k := range m.keys {
		if !fn(k, m.data[k]) {
			return
		}
	}
}
