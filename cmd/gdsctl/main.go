// Command gdsctl is the CLI surface named in spec.md section 6 and
// expanded in SPEC_FULL.md's ambient stack: import a CSV graph, run an
// algorithm façade against it, or estimate the memory-estimation
// calculus for a prospective node/relationship count without loading
// any data.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
