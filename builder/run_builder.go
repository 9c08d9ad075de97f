package builder

import (
	"fmt"

	"github.com/graphrt/gds"
	"github.com/graphrt/gds/algo"
	"github.com/graphrt/gds/config"
)

// RunBuilder stages an AlgorithmConfig one field at a time, validating
// each as it is set (the teacher's SetGeometry idiom: reject bad input
// immediately rather than at the terminal call), then runs one of the
// algo façades against it.
type RunBuilder struct {
	cfg *config.AlgorithmConfig
	err error
}

// NewRun returns a RunBuilder seeded with config.Default's algorithm
// parameters.
func NewRun() *RunBuilder {
	_, ac := config.Default()
	return &RunBuilder{cfg: ac}
}

// DampingFactor sets PageRank's damping factor; must be in (0, 1).
func (b *RunBuilder) DampingFactor(v float64) *RunBuilder {
	if b.err == nil && (v <= 0 || v >= 1) {
		b.err = fmt.Errorf("builder: damping factor must be in (0, 1), got %v", v)
		return b
	}
	b.cfg.DampingFactor = v
	return b
}

// MaxIterations bounds how many sweeps an iterative algorithm runs;
// must be >= 1.
func (b *RunBuilder) MaxIterations(n int) *RunBuilder {
	if b.err == nil && n < 1 {
		b.err = fmt.Errorf("builder: max iterations must be >= 1, got %d", n)
		return b
	}
	b.cfg.MaxIterations = n
	return b
}

// ConvergenceThreshold sets the early-stop tolerance; must be > 0.
func (b *RunBuilder) ConvergenceThreshold(v float64) *RunBuilder {
	if b.err == nil && v <= 0 {
		b.err = fmt.Errorf("builder: convergence threshold must be > 0, got %v", v)
		return b
	}
	b.cfg.ConvergenceThresh = v
	return b
}

// Concurrency bounds the worker pool width an algo façade fans out
// across; must be >= 1.
func (b *RunBuilder) Concurrency(n int) *RunBuilder {
	if b.err == nil && n < 1 {
		b.err = fmt.Errorf("builder: concurrency must be >= 1, got %d", n)
		return b
	}
	b.cfg.Concurrency = n
	return b
}

// Config returns the staged AlgorithmConfig, or the first validation
// error any setter accumulated.
func (b *RunBuilder) Config() (*config.AlgorithmConfig, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cfg, nil
}

// PageRank runs algo.PageRank against g using this builder's config.
func (b *RunBuilder) PageRank(g *algo.Graph) (*gds.DoubleArray, error) {
	cfg, err := b.Config()
	if err != nil {
		return nil, err
	}
	return algo.PageRank(g, cfg), nil
}

// Louvain runs algo.Louvain against g using this builder's config.
func (b *RunBuilder) Louvain(g *algo.Graph) (*gds.LongArray, error) {
	cfg, err := b.Config()
	if err != nil {
		return nil, err
	}
	return algo.Louvain(g, cfg), nil
}

// WeightedDegreeCentrality runs algo.WeightedDegreeCentrality against
// g using this builder's config.
func (b *RunBuilder) WeightedDegreeCentrality(g *algo.Graph, weights *gds.DoubleArray) (*gds.DoubleArray, error) {
	cfg, err := b.Config()
	if err != nil {
		return nil, err
	}
	return algo.WeightedDegreeCentrality(g, weights, cfg), nil
}
