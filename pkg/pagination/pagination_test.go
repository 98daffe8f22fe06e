package pagination

import (
	"math"
	"testing"
)

func sequence(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

func TestPaginate_FirstPage(t *testing.T) {
	res := Paginate(sequence(25), 1, 10)

	if len(res.Items) != 10 {
		t.Fatalf("expected 10 items, got %d", len(res.Items))
	}
	if res.Items[0] != 1 || res.Items[9] != 10 {
		t.Fatalf("unexpected page contents: %v", res.Items)
	}
	if res.TotalCount != 25 {
		t.Fatalf("expected totalCount 25, got %d", res.TotalCount)
	}
	if res.TotalPages != 3 {
		t.Fatalf("expected totalPages 3, got %d", res.TotalPages)
	}
}

func TestPaginate_LastPartialPage(t *testing.T) {
	res := Paginate(sequence(25), 3, 10)

	if len(res.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(res.Items))
	}
	if res.Items[0] != 21 || res.Items[4] != 25 {
		t.Fatalf("unexpected page contents: %v", res.Items)
	}
}

func TestPaginate_PagePastEnd(t *testing.T) {
	res := Paginate(sequence(25), 99, 10)

	if len(res.Items) != 0 {
		t.Fatalf("expected empty items, got %v", res.Items)
	}
	if res.TotalCount != 25 || res.TotalPages != 3 {
		t.Fatalf("totals wrong for out-of-range page: %+v", res)
	}
}

func TestPaginate_ExtremeInputs(t *testing.T) {
	cases := []struct {
		name     string
		page     int
		pageSize int
		want     int // expected item count
		pages    int
	}{
		{"huge page size covers everything", 1, math.MaxInt, 120, 1},
		{"huge page size past the end", 2, math.MaxInt, 0, 1},
		{"huge page", math.MaxInt, 10, 0, 12},
		{"huge page and page size", math.MaxInt, math.MaxInt, 0, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := Paginate(sequence(120), tc.page, tc.pageSize)
			if len(res.Items) != tc.want {
				t.Fatalf("expected %d items, got %d", tc.want, len(res.Items))
			}
			if res.TotalCount != 120 || res.TotalPages != tc.pages {
				t.Fatalf("totals wrong: %d items, %d pages", res.TotalCount, res.TotalPages)
			}
		})
	}
}

func TestPaginate_EmptySequence(t *testing.T) {
	res := Paginate([]int{}, 1, 10)

	if len(res.Items) != 0 {
		t.Fatalf("expected empty items, got %v", res.Items)
	}
	if res.TotalCount != 0 || res.TotalPages != 0 {
		t.Fatalf("expected zero totals, got %+v", res)
	}
}

// Every element appears exactly once across all pages, for several sequence
// lengths and page sizes.
func TestPaginate_PagesCoverSequence(t *testing.T) {
	for _, length := range []int{0, 1, 9, 10, 11, 100} {
		for _, size := range []int{1, 3, 10, 50} {
			items := sequence(length)
			first := Paginate(items, 1, size)

			want := (length + size - 1) / size
			if first.TotalPages != want {
				t.Fatalf("length=%d size=%d: expected totalPages %d, got %d", length, size, want, first.TotalPages)
			}

			var collected []int
			for page := 1; page <= first.TotalPages; page++ {
				collected = append(collected, Paginate(items, page, size).Items...)
			}
			if len(collected) != length {
				t.Fatalf("length=%d size=%d: pages yielded %d items", length, size, len(collected))
			}
			for i, v := range collected {
				if v != i+1 {
					t.Fatalf("length=%d size=%d: item %d out of order: %d", length, size, i, v)
				}
			}
		}
	}
}

func TestPaginate_DoesNotAliasBackingArray(t *testing.T) {
	items := sequence(10)
	res := Paginate(items, 1, 5)

	res.Items[0] = 999
	if items[0] != 1 {
		t.Fatalf("page mutation leaked into source sequence")
	}
}
