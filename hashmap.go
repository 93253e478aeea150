package automaton

// Hashable is a key that can hash itself and compare for equality, letting
// set-valued keys index a map.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

const (
	defaultHashMapCapacity = 4
	hashMapLoadFactor      = 0.75
)

// HashMap is a chained hash table keyed by Hashable values. Go's built-in map
// cannot key on set-valued types, so subset construction and minimization use
// this to map canonical state sets to synthesized state indexes.
type HashMap[T any] struct {
	buckets    []*entry[T]
	size       int
	mask       uint64
	emptyValue T
}

type entry[T any] struct {
	key   Hashable
	value T
	next  *entry[T]
}

type hashMapOptions struct {
	capacity int
}

type HashMapOption func(*hashMapOptions)

// WithCapacity sets the initial capacity, rounded up to a power of two.
func WithCapacity(capacity int) HashMapOption {
	return func(o *hashMapOptions) {
		o.capacity = capacity
	}
}

func NewHashMap[T any](options ...HashMapOption) *HashMap[T] {
	opts := &hashMapOptions{capacity: defaultHashMapCapacity}
	for _, option := range options {
		option(opts)
	}
	capacity := 1
	for capacity < opts.capacity {
		capacity <<= 1
	}
	return &HashMap[T]{
		buckets: make([]*entry[T], capacity),
		mask:    uint64(capacity - 1),
	}
}

// Set inserts or replaces the value under key.
func (m *HashMap[T]) Set(key Hashable, value T) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			e.value = value
			return
		}
	}
	m.buckets[index] = &entry[T]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++

	if float64(m.size)/float64(len(m.buckets)) > hashMapLoadFactor {
		m.resize()
	}
}

// Get returns the value under key and whether it is present.
func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	index := key.Hash() & m.mask
	for e := m.buckets[index]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e.value, true
		}
	}
	return m.emptyValue, false
}

// Has reports whether key is present.
func (m *HashMap[T]) Has(key Hashable) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *HashMap[T]) Len() int { return m.size }

func (m *HashMap[T]) resize() {
	old := m.buckets
	m.buckets = make([]*entry[T], len(old)*2)
	m.mask = uint64(len(m.buckets) - 1)
	for _, head := range old {
		for e := head; e != nil; {
			next := e.next
			index := e.key.Hash() & m.mask
			e.next = m.buckets[index]
			m.buckets[index] = e
			e = next
		}
	}
}
