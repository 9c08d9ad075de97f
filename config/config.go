// Package config loads the runtime feature toggles spec.md section 6
// names as the core's boundary to "the config/feature layer": a YAML
// file, overridable per-field by environment variables, the layering
// the rest of the pack's services use for their own config loading.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// RuntimeConfig holds the runtime toggles loaded from YAML and the
// environment. No package in this module reads them after loading.
type RuntimeConfig struct {
	// UseReorderedAdjacencyList is spec.md section 6's single feature
	// toggle. gds.Build does not read it: Build takes a doReorder
	// argument that the caller derives from this field. csvio.BuildStore
	// does not read it either and always builds with reordering off.
	UseReorderedAdjacencyList bool `yaml:"use_reordered_adjacency_list"`

	// PageShift is a page-size exponent; 0 stands for the core default.
	// It is loaded only: arrays and heaps always page with
	// gds.DefaultPageShift.
	PageShift uint `yaml:"page_shift"`

	// MaxConcurrentAllocators is a bound on bump Allocators per heap.
	// It is loaded only: csvio's loader opens a single
	// Allocator per heap and does not read it.
	MaxConcurrentAllocators int `yaml:"max_concurrent_allocators"`
}

// AlgorithmConfig holds per-run parameters for the algo package.
type AlgorithmConfig struct {
	DampingFactor     float64 `yaml:"damping_factor"`
	MaxIterations     int     `yaml:"max_iterations"`
	ConvergenceThresh float64 `yaml:"convergence_threshold"`

	// Concurrency bounds how many worker goroutines an algo façade
	// runs a superstep across. Must be >= 1.
	Concurrency int `yaml:"concurrency"`
}

// Default returns the zero-config baseline: reordering off, default
// page shift, one allocator, PageRank's conventional 0.85 damping,
// single-threaded algorithm execution.
func Default() (*RuntimeConfig, *AlgorithmConfig) {
	return &RuntimeConfig{MaxConcurrentAllocators: 1},
		&AlgorithmConfig{DampingFactor: 0.85, MaxIterations: 20, ConvergenceThresh: 1e-4, Concurrency: 1}
}

// Load reads a YAML file into a RuntimeConfig/AlgorithmConfig pair,
// then applies environment-variable overrides (prefix GDS_) on top.
func Load(path string) (*RuntimeConfig, *AlgorithmConfig, error) {
	rc, ac := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	doc := struct {
		Runtime   *RuntimeConfig   `yaml:"runtime"`
		Algorithm *AlgorithmConfig `yaml:"algorithm"`
	}{Runtime: rc, Algorithm: ac}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyEnvOverrides(doc.Runtime, doc.Algorithm)
	return doc.Runtime, doc.Algorithm, nil
}

func applyEnvOverrides(rc *RuntimeConfig, ac *AlgorithmConfig) {
	if v, ok := os.LookupEnv("GDS_USE_REORDERED_ADJACENCY_LIST"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			rc.UseReorderedAdjacencyList = b
		}
	}
	if v, ok := os.LookupEnv("GDS_PAGE_SHIFT"); ok {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			rc.PageShift = uint(n)
		}
	}
	if v, ok := os.LookupEnv("GDS_MAX_CONCURRENT_ALLOCATORS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			rc.MaxConcurrentAllocators = n
		}
	}
	if v, ok := os.LookupEnv("GDS_DAMPING_FACTOR"); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			ac.DampingFactor = f
		}
	}
	if v, ok := os.LookupEnv("GDS_MAX_ITERATIONS"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			ac.MaxIterations = n
		}
	}
	if v, ok := os.LookupEnv("GDS_CONCURRENCY"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			ac.Concurrency = n
		}
	}
}
