package gds

import "testing"

func TestIntArraySetAllAndFill(t *testing.T) {
	a := NewIntArray(2*PageSize + 3)
	a.SetAll(func(i int64) int32 { return int32(i % 7) })
	if a.Get(10) != 10%7 {
		t.Errorf("Get(10) = %d, want %d", a.Get(10), 10%7)
	}
	a.Fill(99)
	if a.Get(2*PageSize + 2) != 99 {
		t.Error("Fill did not reach the last page")
	}
}

func TestIntArrayBitwiseOps(t *testing.T) {
	a := IntArrayOf(0b1010, 0, 0)
	a.Or(0, 0b0101)
	if a.Get(0) != 0b1111 {
		t.Errorf("Or result = %b, want 1111", a.Get(0))
	}
	a.And(0, 0b1100)
	if a.Get(0) != 0b1100 {
		t.Errorf("And result = %b, want 1100", a.Get(0))
	}
}

func TestIntArrayAddToWraps(t *testing.T) {
	a := IntArrayOf(2147483647) // math.MaxInt32
	got := a.AddTo(0, 1)
	if got != -2147483648 {
		t.Errorf("AddTo overflow = %d, want wraparound to MinInt32", got)
	}
}

func TestIntArrayGetAndAddReturnsPriorValue(t *testing.T) {
	a := IntArrayOf(5, 0, 0)
	if got := a.GetAndAdd(0, 3); got != 5 {
		t.Errorf("GetAndAdd = %d, want prior value 5", got)
	}
	if got := a.Get(0); got != 8 {
		t.Errorf("Get after GetAndAdd = %d, want 8", got)
	}
}

func TestIntArrayCopyOfZeroPadsGrowth(t *testing.T) {
	a := IntArrayOf(1, 2, 3)
	grown := a.CopyOf(5)
	if grown.Get(3) != 0 || grown.Get(4) != 0 {
		t.Error("CopyOf growth should zero-pad the new tail")
	}
}
