// Package csvio is the CSV import/export layer spec.md section 6
// names as an external collaborator ("CSV importer/exporter: consumes
// node/relationship records; produces adjacency via the bump
// allocator; reads back via cursors"). It also carries the optional
// bbolt-backed snapshot export named in spec.md section 1 ("database
// export"), which is interop/inspection tooling over an already-sealed
// graphstore.Store, not a persistence layer for the engine's live
// working set.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/graphrt/gds"
	"github.com/graphrt/gds/graphstore"
	"github.com/graphrt/gds/projection"
)

// Relationship is one row of a relationships CSV file: a directed edge
// of the named type between two node ids.
type Relationship struct {
	Source int64
	Target int64
	Type   string
}

// ReadNodes reads a CSV file with header columns "id" (required) and
// "label" (optional) and returns the node count implied by the
// largest id seen (ids are 0-based and dense, per spec.md section 3's
// identifier space) plus a sparse id-to-label-name map for whichever
// rows set one.
func ReadNodes(path string) (nodeCount int64, labels map[int64]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, nil, fmt.Errorf("csvio: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return 0, nil, fmt.Errorf("csvio: read %s header: %w", path, err)
	}
	idCol, labelCol := indexOf(header, "id"), indexOf(header, "label")
	if idCol < 0 {
		return 0, nil, fmt.Errorf("csvio: %s: missing required \"id\" column", path)
	}

	labels = make(map[int64]string)
	maxID := int64(-1)
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, nil, fmt.Errorf("csvio: read %s row: %w", path, err)
		}
		id, err := strconv.ParseInt(rec[idCol], 10, 64)
		if err != nil {
			return 0, nil, fmt.Errorf("csvio: %s: parse node id %q: %w", path, rec[idCol], err)
		}
		if id > maxID {
			maxID = id
		}
		if labelCol >= 0 && rec[labelCol] != "" {
			labels[id] = rec[labelCol]
		}
	}
	return maxID + 1, labels, nil
}

// ReadRelationships reads a CSV file with header columns "source",
// "target", and "type".
func ReadRelationships(path string) ([]Relationship, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csvio: open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("csvio: read %s header: %w", path, err)
	}
	srcCol, dstCol, typeCol := indexOf(header, "source"), indexOf(header, "target"), indexOf(header, "type")
	if srcCol < 0 || dstCol < 0 || typeCol < 0 {
		return nil, fmt.Errorf("csvio: %s: requires source, target, and type columns", path)
	}

	var out []Relationship
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csvio: read %s row: %w", path, err)
		}
		src, err := strconv.ParseInt(rec[srcCol], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("csvio: %s: parse source %q: %w", path, rec[srcCol], err)
		}
		dst, err := strconv.ParseInt(rec[dstCol], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("csvio: %s: parse target %q: %w", path, rec[dstCol], err)
		}
		out = append(out, Relationship{Source: src, Target: dst, Type: rec[typeCol]})
	}
	return out, nil
}

func indexOf(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// BuildStore assembles a graphstore.Store from node/relationship rows:
// one adjacency list per distinct relationship type, built through the
// bump allocator with each node's neighbour run sorted and
// delta-varint encoded, exactly as the loader described in spec.md
// section 2's data-flow paragraph would.
func BuildStore(nodeCount int64, labels map[int64]string, rels []Relationship, registry *projection.Registry) (*graphstore.Store, error) {
	store := graphstore.New(nodeCount, registry)
	for id, name := range labels {
		store.SetNodeLabel(id, registry.Label(name))
	}

	byType := make(map[string][]Relationship)
	for _, r := range rels {
		byType[r.Type] = append(byType[r.Type], r)
	}

	for typeName, typeRels := range byType {
		neighbors := make([][]int64, nodeCount)
		for _, r := range typeRels {
			if r.Source < 0 || r.Source >= nodeCount || r.Target < 0 || r.Target >= nodeCount {
				return nil, fmt.Errorf("csvio: relationship %+v has an endpoint outside [0, %d)", r, nodeCount)
			}
			neighbors[r.Source] = append(neighbors[r.Source], r.Target)
		}
		for i := range neighbors {
			sort.Slice(neighbors[i], func(a, b int) bool { return neighbors[i][a] < neighbors[i][b] })
		}
		list, err := buildAdjacencyList(nodeCount, neighbors)
		if err != nil {
			return nil, fmt.Errorf("csvio: build adjacency for type %q: %w", typeName, err)
		}
		store.SetAdjacency(registry.Type(typeName), list)
	}
	return store, nil
}

func buildAdjacencyList(nodeCount int64, neighbors [][]int64) (*gds.AdjacencyList, error) {
	heap := gds.NewHeap[byte]()
	alloc := heap.NewAllocator()
	degrees := gds.NewIntArray(nodeCount)
	offsets := gds.NewLongArray(nodeCount)

	for i, ids := range neighbors {
		if len(ids) == 0 {
			continue
		}
		buf := &gds.ByteBuffer{}
		gds.EncodeDeltaVarint(ids, buf)
		var b gds.Batch[byte]
		addr := alloc.Allocate(buf.Length(), &b)
		copy(b.Page, buf.Bytes())
		degrees.Set(int64(i), int32(buf.Length()))
		offsets.Set(int64(i), addr)
	}
	alloc.Close()
	return gds.Build(heap, degrees, offsets, false)
}
