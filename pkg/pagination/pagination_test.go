package pagination

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	got := Params{Page: 0, PageSize: -3}.Normalize()
	if got.Page != DefaultPage || got.PageSize != DefaultPageSize {
		t.Fatalf("unexpected defaults: %+v", got)
	}
	if NormalizePageSize(500) != MaxPageSize {
		t.Fatalf("expected page size to be capped")
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 8, 0},
		{8, 8, 1},
		{9, 8, 2},
		{17, 8, 3},
		{5, math.MaxInt, 1},
	}
	for _, tc := range cases {
		if got := TotalPages(tc.total, tc.size); got != tc.want {
			t.Fatalf("TotalPages(%d,%d)=%d want %d", tc.total, tc.size, got, tc.want)
		}
	}
}

func TestBounds(t *testing.T) {
	start, end := Bounds(2, 8, 10)
	if start != 8 || end != 10 {
		t.Fatalf("unexpected bounds %d-%d", start, end)
	}
	start, end = Bounds(5, 8, 10)
	if start != 10 || end != 10 {
		t.Fatalf("expected empty window past the end, got %d-%d", start, end)
	}
}

func TestBoundsNeverOverflow(t *testing.T) {
	cases := []struct {
		page, size, total int
		start, end        int
	}{
		{math.MaxInt, 8, 8, 8, 8},
		{math.MaxInt, math.MaxInt, 8, 8, 8},
		{1, math.MaxInt, 8, 0, 8},
		{2, math.MaxInt / 2, 8, 8, 8},
		{0, 8, 10, 0, 8},
		{1, 8, 0, 0, 0},
	}
	for _, tc := range cases {
		start, end := Bounds(tc.page, tc.size, tc.total)
		if start != tc.start || end != tc.end {
			t.Fatalf("Bounds(%d,%d,%d)=%d-%d want %d-%d", tc.page, tc.size, tc.total, start, end, tc.start, tc.end)
		}
	}
}
