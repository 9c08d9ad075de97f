// Package idmap interns strings into dense int64 ids. In this module
// it backs projection.Registry's label and relationship-type names;
// node ids are read as integers by csvio and are not interned here.
//
// Adapted from the project's original Uint32Map: the same
// open-addressing-with-linear-probing shape and 3/4-load-factor
// growth policy, swapped from a fibonacci-hashed uint32 key to a
// maphash-hashed string key, and from an unsafe.Pointer payload to a
// plain int64 id (no value ever needs anything richer here).
package idmap

import "hash/maphash"

type bucket struct {
	key  string
	id   int64
	used bool
}

// Map interns strings to dense, monotonically assigned int64 ids.
type Map struct {
	buckets []bucket
	count   int
	mask    uint64
	seed    maphash.Seed
	names   []string // id -> original key, in assignment order
}

// New returns an empty Map.
func New() *Map {
	return &Map{seed: maphash.MakeSeed()}
}

func (m *Map) hash(key string) uint64 {
	return maphash.String(m.seed, key)
}

// Lookup returns the id already assigned to key, or (0, false) if key
// has never been interned.
func (m *Map) Lookup(key string) (int64, bool) {
	if len(m.buckets) == 0 {
		return 0, false
	}
	idx := m.hash(key) & m.mask
	for {
		b := &m.buckets[idx]
		if !b.used {
			return 0, false
		}
		if b.key == key {
			return b.id, true
		}
		idx = (idx + 1) & m.mask
	}
}

// Intern returns key's id, assigning the next dense id the first time
// key is seen.
func (m *Map) Intern(key string) int64 {
	if id, ok := m.Lookup(key); ok {
		return id
	}
	if len(m.buckets) == 0 {
		m.buckets = make([]bucket, 16)
		m.mask = 15
	} else if m.count >= len(m.buckets)*3/4 {
		m.grow()
	}

	id := int64(len(m.names))
	idx := m.hash(key) & m.mask
	for {
		b := &m.buckets[idx]
		if !b.used {
			b.key = key
			b.id = id
			b.used = true
			m.count++
			m.names = append(m.names, key)
			return id
		}
		idx = (idx + 1) & m.mask
	}
}

func (m *Map) grow() {
	old := m.buckets
	m.buckets = make([]bucket, len(old)*2)
	m.mask = uint64(len(m.buckets) - 1)
	m.count = 0
	for i := range old {
		if old[i].used {
			idx := m.hash(old[i].key) & m.mask
			for m.buckets[idx].used {
				idx = (idx + 1) & m.mask
			}
			m.buckets[idx] = old[i]
			m.count++
		}
	}
}

// NameOf returns the original string key that was assigned id, or
// ("", false) if no such id has been assigned.
func (m *Map) NameOf(id int64) (string, bool) {
	if id < 0 || id >= int64(len(m.names)) {
		return "", false
	}
	return m.names[id], true
}

// Len returns the number of distinct keys interned so far.
func (m *Map) Len() int { return len(m.names) }
