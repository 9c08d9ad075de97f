package gds

import (
	"errors"
	"testing"
)

func TestErrorPredicates(t *testing.T) {
	be := boundsError("op", 5, 3)
	if !IsBounds(be) {
		t.Error("IsBounds should be true for a bounds error")
	}
	if IsLifecycle(be) || IsInvariant(be) || IsCapacity(be) || IsTypeDomain(be) {
		t.Error("a bounds error should not match any other predicate")
	}

	le := lifecycleError("op", "closed")
	if !IsLifecycle(le) {
		t.Error("IsLifecycle should be true for a lifecycle error")
	}

	wrapped := &Error{Code: ErrCapacity, Op: "op", Err: be}
	if !IsCapacity(wrapped) {
		t.Error("IsCapacity should be true for the outer error")
	}
	if !errors.Is(wrapped, wrapped) {
		t.Error("an error should be errors.Is itself")
	}
	var target *Error
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should unwrap to *Error")
	}
	if target.Code != ErrCapacity {
		t.Errorf("target.Code = %v, want ErrCapacity", target.Code)
	}
}

func TestRaiseRecover(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("raise should panic")
		}
		e, ok := r.(*Error)
		if !ok {
			t.Fatalf("panic value is %T, want *Error", r)
		}
		if e.Code != ErrBounds {
			t.Errorf("e.Code = %v, want ErrBounds", e.Code)
		}
	}()
	raise(boundsError("LongArray.Get", 10, 5))
}
