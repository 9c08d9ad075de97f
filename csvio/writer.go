package csvio

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/graphrt/gds/graphstore"
	"github.com/graphrt/gds/projection"
)

// WriteNodes writes one row per node in [0, store.NodeCount) with
// columns "id,label", reading each node's label name back through
// store's registry. Nodes with no recorded label get an empty label
// field.
func WriteNodes(path string, store *graphstore.Store) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"id", "label"}); err != nil {
		return fmt.Errorf("csvio: write %s header: %w", path, err)
	}
	for id := int64(0); id < store.NodeCount; id++ {
		name := ""
		if l, ok := store.NodeLabel(id); ok {
			if n, ok := store.Registry.LabelName(l); ok {
				name = n
			}
		}
		if err := w.Write([]string{strconv.FormatInt(id, 10), name}); err != nil {
			return fmt.Errorf("csvio: write %s row %d: %w", path, id, err)
		}
	}
	w.Flush()
	return w.Error()
}

// WriteRelationships writes one row per edge in the adjacency list for
// relationship type rt, columns "source,target,type", decoding each
// node's run back into neighbour ids via AdjacencyList.Neighbors.
func WriteRelationships(path string, store *graphstore.Store, rt projection.RelationshipType) error {
	list := store.Adjacency(rt)
	if list == nil {
		return fmt.Errorf("csvio: no adjacency list for relationship type %d", rt)
	}
	typeName, _ := store.Registry.TypeName(rt)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("csvio: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"source", "target", "type"}); err != nil {
		return fmt.Errorf("csvio: write %s header: %w", path, err)
	}
	for id := int64(0); id < store.NodeCount; id++ {
		for _, target := range list.Neighbors(id) {
			row := []string{strconv.FormatInt(id, 10), strconv.FormatInt(target, 10), typeName}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("csvio: write %s row: %w", path, err)
			}
		}
	}
	w.Flush()
	return w.Error()
}
