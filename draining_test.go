package gds

import (
	"sync"
	"testing"
)

func TestDrainingIteratorSingleThreaded(t *testing.T) {
	pages := [][]int64{{1, 2}, {3, 4}, {5, 6}}
	it := NewDrainingIterator(pages, 2)
	var batch Batch[int64]
	var got []int64
	for it.Next(&batch) {
		got = append(got, batch.Page...)
	}
	if len(got) != 6 {
		t.Fatalf("got %v, want 6 elements", got)
	}
	if it.Next(&batch) {
		t.Error("Next after exhaustion should return false")
	}
}

func TestDrainingIteratorExactlyOncePerPageConcurrent(t *testing.T) {
	const numPages = 500
	pages := make([][]int, numPages)
	for i := range pages {
		pages[i] = []int{i}
	}
	it := NewDrainingIterator(pages, 1)

	const workers = 16
	seen := make([][]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		w := w
		go func() {
			defer wg.Done()
			var batch Batch[int]
			for it.Next(&batch) {
				seen[w] = append(seen[w], batch.Page[0])
			}
		}()
	}
	wg.Wait()

	count := make([]int, numPages)
	for _, s := range seen {
		for _, v := range s {
			count[v]++
		}
	}
	for i, c := range count {
		if c != 1 {
			t.Fatalf("page %d delivered %d times, want exactly 1", i, c)
		}
	}
}

func TestDrainingIteratorEmpty(t *testing.T) {
	it := NewDrainingIterator([][]int64{}, PageSize)
	var batch Batch[int64]
	if it.Next(&batch) {
		t.Error("an empty iterator should never yield")
	}
	if it.NumPages() != 0 {
		t.Errorf("NumPages() = %d, want 0", it.NumPages())
	}
}
