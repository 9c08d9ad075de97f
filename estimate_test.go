package gds

import "testing"

func TestSizeOfPrimitiveArray(t *testing.T) {
	if got := SizeOfPrimitiveArray(0, 8); got != align8(arrayHeaderBytes) {
		t.Errorf("SizeOfPrimitiveArray(0, 8) = %d, want %d", got, align8(arrayHeaderBytes))
	}
	got := SizeOfPrimitiveArray(3, 8)
	want := align8(arrayHeaderBytes + 3*8)
	if got != want {
		t.Errorf("SizeOfPrimitiveArray(3, 8) = %d, want %d", got, want)
	}
}

func TestSizeOfPagedMonotonic(t *testing.T) {
	prev := int64(0)
	for _, n := range []int64{0, 1, PageSize, PageSize + 1, 10 * PageSize} {
		got := SizeOfPaged(n, 8)
		if got < prev {
			t.Errorf("SizeOfPaged(%d) = %d, should not decrease (prev %d)", n, got, prev)
		}
		prev = got
	}
}

func TestSizeOfPagedNeverUnderestimatesFlat(t *testing.T) {
	// A paged estimate must never be smaller than the bytes a flat
	// array of the same size would need, since the paged
	// representation pays page-vector overhead on top.
	for _, n := range []int64{1, PageSize, PageSize + 1} {
		paged := SizeOfPaged(n, 8)
		flat := SizeOfPrimitiveArray(n, 8)
		if paged < flat {
			t.Errorf("SizeOfPaged(%d) = %d < flat %d", n, paged, flat)
		}
	}
}

func TestNextPowerOfTwo(t *testing.T) {
	cases := map[int64]int64{0: 1, 1: 1, 2: 2, 3: 4, 4: 4, 5: 8, 1024: 1024, 1025: 2048}
	for n, want := range cases {
		if got := nextPowerOfTwo(n); got != want {
			t.Errorf("nextPowerOfTwo(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestSizeOfHashContainerCapacityFloor(t *testing.T) {
	if got := SizeOfHashContainer(0); got <= 0 {
		t.Errorf("SizeOfHashContainer(0) = %d, want > 0 (capacity floor of 2)", got)
	}
}

func TestHumanSize(t *testing.T) {
	if got := HumanSize(0); got == "" {
		t.Error("HumanSize(0) should not be empty")
	}
	if got := HumanSize(-1); got == "" {
		t.Error("HumanSize(-1) should clamp, not return empty")
	}
}
