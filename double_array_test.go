package gds

import (
	"math"
	"testing"
)

func TestDoubleArrayPreservesBitPatterns(t *testing.T) {
	a := NewDoubleArray(4)
	nan := math.NaN()
	a.Set(0, nan)
	a.Set(1, math.Inf(1))
	a.Set(2, math.Inf(-1))
	a.Set(3, -0.0)

	if got := a.Get(0); !math.IsNaN(got) {
		t.Errorf("Get(0) = %v, want NaN", got)
	}
	if got := a.Get(1); got != math.Inf(1) {
		t.Errorf("Get(1) = %v, want +Inf", got)
	}
	if math.Signbit(a.Get(3)) != math.Signbit(-0.0) {
		t.Error("negative zero's sign bit was not preserved")
	}
}

func TestDoubleArrayAddTo(t *testing.T) {
	a := NewDoubleArray(1)
	a.Set(0, 1.5)
	if got := a.AddTo(0, 2.5); got != 4.0 {
		t.Errorf("AddTo = %v, want 4.0", got)
	}
}

func TestDoubleArrayGetAndAddReturnsPriorValue(t *testing.T) {
	a := NewDoubleArray(1)
	a.Set(0, 1.5)
	if got := a.GetAndAdd(0, 2.5); got != 1.5 {
		t.Errorf("GetAndAdd = %v, want prior value 1.5", got)
	}
	if got := a.Get(0); got != 4.0 {
		t.Errorf("Get after GetAndAdd = %v, want 4.0", got)
	}
}

func TestDoubleArrayToFlatIsDefensiveCopy(t *testing.T) {
	a := DoubleArrayOf(1, 2, 3)
	flat, err := a.ToFlat()
	if err != nil {
		t.Fatalf("ToFlat error: %v", err)
	}
	flat[0] = 999
	if a.Get(0) == 999 {
		t.Error("ToFlat must not alias the backing pages")
	}
}
