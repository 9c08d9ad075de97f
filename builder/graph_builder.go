// Package builder holds the fluent builders spec.md section 6 names
// as an external collaborator ("fluent builders around the above"):
// one assembling a graphstore.Store from CSV inputs, one staging an
// algorithm run's config.AlgorithmConfig. Grounded on the teacher's
// own staged-configuration style (NewEnv returns a struct with
// defaults already set; later calls like SetGeometry validate and
// return an error instead of panicking; Open is the terminal call that
// does the real work) rather than the teacher's B+tree semantics,
// which have no counterpart here.
package builder

import (
	"fmt"

	"github.com/graphrt/gds/csvio"
	"github.com/graphrt/gds/graphstore"
	"github.com/graphrt/gds/projection"
)

// GraphBuilder stages a CSV import before producing a graphstore.Store.
// Its zero value is not usable; obtain one via NewGraphBuilder.
type GraphBuilder struct {
	registry  *projection.Registry
	nodesPath string
	relsPaths []string
	err       error
}

// NewGraphBuilder returns a builder with a fresh projection.Registry.
func NewGraphBuilder() *GraphBuilder {
	return &GraphBuilder{registry: projection.NewRegistry()}
}

// WithRegistry replaces the builder's registry, for loading multiple
// graphs that must share label/type ids.
func (b *GraphBuilder) WithRegistry(r *projection.Registry) *GraphBuilder {
	b.registry = r
	return b
}

// Nodes sets the node CSV file's path.
func (b *GraphBuilder) Nodes(path string) *GraphBuilder {
	b.nodesPath = path
	return b
}

// Relationships adds a relationship CSV file's path. May be called
// more than once; every file's rows are merged before Build.
func (b *GraphBuilder) Relationships(path string) *GraphBuilder {
	b.relsPaths = append(b.relsPaths, path)
	return b
}

// Build reads every configured file and assembles a graphstore.Store.
// Returns the first error encountered; Build may be called only once
// per builder.
func (b *GraphBuilder) Build() (*graphstore.Store, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.nodesPath == "" {
		return nil, fmt.Errorf("builder: Nodes path is required")
	}

	nodeCount, labels, err := csvio.ReadNodes(b.nodesPath)
	if err != nil {
		return nil, err
	}

	var rels []csvio.Relationship
	for _, path := range b.relsPaths {
		rs, err := csvio.ReadRelationships(path)
		if err != nil {
			return nil, err
		}
		rels = append(rels, rs...)
	}

	return csvio.BuildStore(nodeCount, labels, rels, b.registry)
}
