package algo

import "sync"

// forEachNode runs fn over every node in [0, n) split across up to
// concurrency goroutines, each claiming a contiguous range. Grounded
// on the chunked-worker idiom in
// other_examples/junjiewwang-perf-analysis's parallel dominator-tree
// pass (split a node range into per-worker chunks, no shared mutable
// state inside a chunk), simplified to stdlib sync.WaitGroup since
// this package's fan-out needs no cancellation or result merging.
func forEachNode(n int64, concurrency int, fn func(node int64)) {
	if concurrency < 1 {
		concurrency = 1
	}
	if int64(concurrency) > n {
		concurrency = int(n)
	}
	if concurrency <= 1 {
		for i := int64(0); i < n; i++ {
			fn(i)
		}
		return
	}

	chunk := (n + int64(concurrency) - 1) / int64(concurrency)
	var wg sync.WaitGroup
	for w := 0; w < concurrency; w++ {
		start := int64(w) * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int64) {
			defer wg.Done()
			for i := start; i < end; i++ {
				fn(i)
			}
		}(start, end)
	}
	wg.Wait()
}
