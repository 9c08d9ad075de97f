package gds

import "testing"

func newLongArrayVariants(size int64) map[string]*LongArray {
	return map[string]*LongArray{
		"auto":  NewLongArray(size),
		"paged": NewLongArrayPaged(size),
	}
}

func TestLongArrayGetSet(t *testing.T) {
	for name, a := range newLongArrayVariants(3 * PageSize) {
		t.Run(name, func(t *testing.T) {
			a.SetAll(func(i int64) int64 { return i * 2 })
			for _, i := range []int64{0, 1, PageSize - 1, PageSize, 3*PageSize - 1} {
				if got := a.Get(i); got != i*2 {
					t.Errorf("Get(%d) = %d, want %d", i, got, i*2)
				}
			}
		})
	}
}

func TestLongArrayOutOfBoundsPanics(t *testing.T) {
	for name, a := range newLongArrayVariants(10) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("Get out of bounds should panic")
				}
			}()
			a.Get(10)
		})
	}
}

func TestLongArrayFill(t *testing.T) {
	for name, a := range newLongArrayVariants(2 * PageSize) {
		t.Run(name, func(t *testing.T) {
			a.Fill(7)
			for _, i := range []int64{0, PageSize, 2*PageSize - 1} {
				if got := a.Get(i); got != 7 {
					t.Errorf("Get(%d) = %d, want 7", i, got)
				}
			}
		})
	}
}

func TestLongArrayAddToAndBitwise(t *testing.T) {
	for name, a := range newLongArrayVariants(4) {
		t.Run(name, func(t *testing.T) {
			a.Set(0, 5)
			if got := a.AddTo(0, 3); got != 8 {
				t.Errorf("AddTo = %d, want 8", got)
			}
			a.Set(1, 0b1010)
			a.Or(1, 0b0101)
			if got := a.Get(1); got != 0b1111 {
				t.Errorf("Or result = %b, want 1111", got)
			}
			a.And(1, 0b1100)
			if got := a.Get(1); got != 0b1100 {
				t.Errorf("And result = %b, want 1100", got)
			}
		})
	}
}

func TestLongArrayGetAndAddReturnsPriorValue(t *testing.T) {
	for name, a := range newLongArrayVariants(4) {
		t.Run(name, func(t *testing.T) {
			a.Set(0, 5)
			if got := a.GetAndAdd(0, 3); got != 5 {
				t.Errorf("GetAndAdd = %d, want prior value 5", got)
			}
			if got := a.Get(0); got != 8 {
				t.Errorf("Get after GetAndAdd = %d, want 8", got)
			}
		})
	}
}

func TestLongArrayCopyToAndCopyOf(t *testing.T) {
	for name, a := range newLongArrayVariants(2 * PageSize) {
		t.Run(name, func(t *testing.T) {
			a.SetAll(func(i int64) int64 { return i })

			dst := NewLongArray(2 * PageSize)
			a.CopyTo(dst, a.Size())
			for _, i := range []int64{0, PageSize, 2*PageSize - 1} {
				if got := dst.Get(i); got != i {
					t.Errorf("CopyTo mismatch at %d: got %d", i, got)
				}
			}

			shrunk := a.CopyOf(PageSize)
			if shrunk.Size() != PageSize {
				t.Fatalf("CopyOf size = %d, want %d", shrunk.Size(), PageSize)
			}
			if shrunk.Get(0) != 0 || shrunk.Get(PageSize-1) != PageSize-1 {
				t.Error("CopyOf shrink did not preserve the shared prefix")
			}

			grown := a.CopyOf(3 * PageSize)
			if grown.Get(2*PageSize + 1) != 0 {
				t.Error("CopyOf grow should zero-pad the new tail")
			}
		})
	}
}

func TestLongArrayToFlatRoundTrips(t *testing.T) {
	a := LongArrayOf(1, 2, 3, 4, 5)
	flat, err := a.ToFlat()
	if err != nil {
		t.Fatalf("ToFlat error: %v", err)
	}
	flat[0] = 999
	if a.Get(0) == 999 {
		t.Error("ToFlat must return a defensive copy, not an alias")
	}
}

func TestLongArrayCopyFromSlice(t *testing.T) {
	a := NewLongArray(5)
	n := a.CopyFromSlice([]int64{10, 20, 30}, 0, 3)
	if n != 3 {
		t.Fatalf("CopyFromSlice returned %d, want 3", n)
	}
	if a.Get(0) != 10 || a.Get(1) != 20 || a.Get(2) != 30 {
		t.Error("CopyFromSlice did not place the expected values")
	}
}

func TestLongArrayReleaseIsIdempotent(t *testing.T) {
	a := NewLongArray(PageSize + 1)
	freed := a.Release()
	if freed <= 0 {
		t.Error("first Release should report nonzero bytes freed")
	}
	if again := a.Release(); again != 0 {
		t.Errorf("second Release = %d, want 0", again)
	}
	if a.SizeOf() != 0 {
		t.Error("SizeOf after Release should be 0")
	}
}

func TestLongArrayReleasedPanicsOnAccess(t *testing.T) {
	a := NewLongArray(4)
	a.Release()
	defer func() {
		if recover() == nil {
			t.Fatal("Get after Release should panic")
		}
	}()
	a.Get(0)
}

func TestLongArrayBinarySearch(t *testing.T) {
	for _, n := range []int64{10, 100} {
		a := NewLongArray(n)
		a.SetAll(func(i int64) int64 { return i * 2 })
		if got := a.BinarySearch(0); got != 0 {
			t.Errorf("BinarySearch(0) on n=%d = %d, want 0", n, got)
		}
		if got := a.BinarySearch(1); got != 1 {
			t.Errorf("BinarySearch(1) on n=%d = %d, want 1 (first >= 1 is index 1)", n, got)
		}
		if got := a.BinarySearch(n * 2); got != n {
			t.Errorf("BinarySearch beyond range on n=%d = %d, want %d", n, got, n)
		}
	}
}

func TestLongArraySizeOfNeverDecreasesWithSize(t *testing.T) {
	prev := int64(-1)
	for _, n := range []int64{0, 1, PageSize, PageSize + 1} {
		a := NewLongArray(n)
		got := a.SizeOf()
		if got < prev {
			t.Errorf("SizeOf(%d) = %d should not be less than smaller size's %d", n, got, prev)
		}
		prev = got
	}
}
