// Package projection holds the value objects a graph loader attaches
// to nodes and relationships before they reach the core's huge arrays
// (spec.md section 6's "graph loader" collaborator): labels and
// relationship types, interned to small dense ids.
package projection

import "github.com/graphrt/gds/internal/idmap"

// NodeLabel is a dense id for a node label string ("Person", "City").
type NodeLabel int32

// RelationshipType is a dense id for a relationship type string
// ("FOLLOWS", "LIVES_IN").
type RelationshipType int32

// Registry interns label and relationship-type strings independently,
// so two projections loaded against the same registry share ids.
type Registry struct {
	labels *idmap.Map
	types  *idmap.Map
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{labels: idmap.New(), types: idmap.New()}
}

// Label interns name and returns its NodeLabel.
func (r *Registry) Label(name string) NodeLabel {
	return NodeLabel(r.labels.Intern(name))
}

// LabelName returns the string a NodeLabel was interned from.
func (r *Registry) LabelName(l NodeLabel) (string, bool) {
	return r.labels.NameOf(int64(l))
}

// Type interns name and returns its RelationshipType.
func (r *Registry) Type(name string) RelationshipType {
	return RelationshipType(r.types.Intern(name))
}

// TypeName returns the string a RelationshipType was interned from.
func (r *Registry) TypeName(rt RelationshipType) (string, bool) {
	return r.types.NameOf(int64(rt))
}

// LabelCount returns the number of distinct labels interned so far.
func (r *Registry) LabelCount() int { return r.labels.Len() }

// TypeCount returns the number of distinct relationship types interned
// so far.
func (r *Registry) TypeCount() int { return r.types.Len() }
