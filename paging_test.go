package gds

import "testing"

func TestPageIndexAndInPage(t *testing.T) {
	cases := []struct {
		i        int64
		wantPage int64
		wantIn   int64
	}{
		{0, 0, 0},
		{1, 0, 1},
		{PageSize - 1, 0, PageSize - 1},
		{PageSize, 1, 0},
		{PageSize + 5, 1, 5},
		{3 * PageSize, 3, 0},
	}
	for _, c := range cases {
		if got := pageIndex(c.i); got != c.wantPage {
			t.Errorf("pageIndex(%d) = %d, want %d", c.i, got, c.wantPage)
		}
		if got := inPage(c.i); got != c.wantIn {
			t.Errorf("inPage(%d) = %d, want %d", c.i, got, c.wantIn)
		}
	}
}

func TestPagesFor(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{0, 0},
		{1, 1},
		{PageSize, 1},
		{PageSize + 1, 2},
		{2 * PageSize, 2},
	}
	for _, c := range cases {
		if got := pagesFor(c.n); got != c.want {
			t.Errorf("pagesFor(%d) = %d, want %d", c.n, got, c.want)
		}
	}
}

func TestTailLen(t *testing.T) {
	if got := tailLen(0); got != 0 {
		t.Errorf("tailLen(0) = %d, want 0", got)
	}
	if got := tailLen(PageSize); got != PageSize {
		t.Errorf("tailLen(PageSize) = %d, want PageSize", got)
	}
	if got := tailLen(PageSize + 7); got != 7 {
		t.Errorf("tailLen(PageSize+7) = %d, want 7", got)
	}
}

func TestAddrRoundTrip(t *testing.T) {
	for _, page := range []int64{0, 1, 17, 1000} {
		for _, off := range []int64{0, 1, PageSize - 1} {
			addr := makeAddr(page, off, DefaultPageShift)
			if got := addrPageIndex(addr, DefaultPageShift); got != page {
				t.Errorf("addrPageIndex round trip: got %d, want %d", got, page)
			}
			if got := addrInPage(addr, DefaultPageShift); got != off {
				t.Errorf("addrInPage round trip: got %d, want %d", got, off)
			}
		}
	}
}
