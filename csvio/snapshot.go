package csvio

import (
	"encoding/binary"
	"fmt"
	"math"

	"go.etcd.io/bbolt"

	"github.com/graphrt/gds"
	"github.com/graphrt/gds/graphstore"
	"github.com/graphrt/gds/projection"
)

var (
	metaBucket   = []byte("meta")
	labelsBucket = []byte("labels")
)

const nodeCountKey = "node_count"

func adjBucketName(typeName string) []byte { return []byte("adj:" + typeName) }
func propBucketName(name string) []byte    { return []byte("prop:" + name) }

func idKey(id int64) []byte {
	return uint64Bytes(uint64(id))
}

func uint64Bytes(v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return b[:]
}

// SnapshotStore writes store to a single bbolt file: node labels,
// every relationship type's adjacency runs (already delta-varint
// encoded, stored byte-for-byte), and every node property array. This
// is export/interop tooling for inspection, not a persistence layer
// for the engine's live working set (spec.md's Non-goals exclude
// durable persistence of the core itself).
func SnapshotStore(path string, store *graphstore.Store) error {
	db, err := bbolt.Open(path, 0o644, nil)
	if err != nil {
		return fmt.Errorf("csvio: open snapshot %s: %w", path, err)
	}
	defer db.Close()

	return db.Update(func(tx *bbolt.Tx) error {
		meta, err := tx.CreateBucketIfNotExists(metaBucket)
		if err != nil {
			return err
		}
		if err := meta.Put([]byte(nodeCountKey), uint64Bytes(uint64(store.NodeCount))); err != nil {
			return err
		}

		labels, err := tx.CreateBucketIfNotExists(labelsBucket)
		if err != nil {
			return err
		}
		for id := int64(0); id < store.NodeCount; id++ {
			l, ok := store.NodeLabel(id)
			if !ok {
				continue
			}
			name, ok := store.Registry.LabelName(l)
			if !ok {
				continue
			}
			if err := labels.Put(idKey(id), []byte(name)); err != nil {
				return err
			}
		}

		for _, rt := range store.RelationshipTypes() {
			typeName, _ := store.Registry.TypeName(rt)
			bucket, err := tx.CreateBucketIfNotExists(adjBucketName(typeName))
			if err != nil {
				return err
			}
			list := store.Adjacency(rt)
			for id := int64(0); id < store.NodeCount; id++ {
				if list.Degrees.Get(id) <= 0 {
					continue
				}
				if err := bucket.Put(idKey(id), list.Slice(id)); err != nil {
					return err
				}
			}
		}

		for _, name := range store.PropertyNames() {
			bucket, err := tx.CreateBucketIfNotExists(propBucketName(name))
			if err != nil {
				return err
			}
			prop := store.NodeProperty(name)
			for id := int64(0); id < store.NodeCount; id++ {
				var v [8]byte
				binary.BigEndian.PutUint64(v[:], math.Float64bits(prop.Get(id)))
				if err := bucket.Put(idKey(id), v[:]); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// LoadSnapshot reads a file written by SnapshotStore back into a fresh
// graphstore.Store, interning label and relationship-type names
// against registry.
func LoadSnapshot(path string, registry *projection.Registry) (*graphstore.Store, error) {
	db, err := bbolt.Open(path, 0o644, nil)
	if err != nil {
		return nil, fmt.Errorf("csvio: open snapshot %s: %w", path, err)
	}
	defer db.Close()

	var store *graphstore.Store
	err = db.View(func(tx *bbolt.Tx) error {
		meta := tx.Bucket(metaBucket)
		if meta == nil {
			return fmt.Errorf("csvio: %s: missing meta bucket", path)
		}
		raw := meta.Get([]byte(nodeCountKey))
		if raw == nil {
			return fmt.Errorf("csvio: %s: missing node count", path)
		}
		nodeCount := int64(binary.BigEndian.Uint64(raw))
		store = graphstore.New(nodeCount, registry)

		if labels := tx.Bucket(labelsBucket); labels != nil {
			if err := labels.ForEach(func(k, v []byte) error {
				id := int64(binary.BigEndian.Uint64(k))
				store.SetNodeLabel(id, registry.Label(string(v)))
				return nil
			}); err != nil {
				return err
			}
		}

		return tx.ForEach(func(name []byte, bucket *bbolt.Bucket) error {
			switch {
			case hasPrefix(name, "adj:"):
				typeName := string(name[len("adj:"):])
				list, err := loadAdjacencyBucket(nodeCount, bucket)
				if err != nil {
					return fmt.Errorf("csvio: load adjacency %q: %w", typeName, err)
				}
				store.SetAdjacency(registry.Type(typeName), list)
			case hasPrefix(name, "prop:"):
				propName := string(name[len("prop:"):])
				prop := store.NodeProperty(propName)
				return bucket.ForEach(func(k, v []byte) error {
					id := int64(binary.BigEndian.Uint64(k))
					prop.Set(id, math.Float64frombits(binary.BigEndian.Uint64(v)))
					return nil
				})
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

func hasPrefix(b []byte, prefix string) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == prefix
}

func loadAdjacencyBucket(nodeCount int64, bucket *bbolt.Bucket) (*gds.AdjacencyList, error) {
	heap := gds.NewHeap[byte]()
	alloc := heap.NewAllocator()
	degrees := gds.NewIntArray(nodeCount)
	offsets := gds.NewLongArray(nodeCount)

	err := bucket.ForEach(func(k, v []byte) error {
		id := int64(binary.BigEndian.Uint64(k))
		var b gds.Batch[byte]
		addr := alloc.Allocate(int64(len(v)), &b)
		copy(b.Page, v)
		degrees.Set(id, int32(len(v)))
		offsets.Set(id, addr)
		return nil
	})
	if err != nil {
		return nil, err
	}
	alloc.Close()
	return gds.Build(heap, degrees, offsets, false)
}
