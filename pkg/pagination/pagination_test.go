package pagination

import (
	"math"
	"reflect"
	"testing"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate_LastPartialPage(t *testing.T) {
	p := Paginate(seq(15), 7, 3)

	if len(p.Items) != 1 {
		t.Fatalf("expected 1 item on page 3, got %d", len(p.Items))
	}
	if p.Items[0] != 15 {
		t.Errorf("expected item 15, got %d", p.Items[0])
	}
	if p.TotalPages != 3 {
		t.Errorf("expected 3 total pages, got %d", p.TotalPages)
	}
	if p.From() != 15 || p.To() != 15 {
		t.Errorf("expected showing 15-15, got %d-%d", p.From(), p.To())
	}
	if p.HasNext() {
		t.Error("expected no next page on the last page")
	}
	if !p.HasPrevious() {
		t.Error("expected a previous page on the last page")
	}
}

func TestPaginate_FirstPage(t *testing.T) {
	p := Paginate(seq(15), 7, 1)

	if !reflect.DeepEqual(p.Items, []int{1, 2, 3, 4, 5, 6, 7}) {
		t.Errorf("unexpected first page: %v", p.Items)
	}
	if p.From() != 1 || p.To() != 7 {
		t.Errorf("expected showing 1-7, got %d-%d", p.From(), p.To())
	}
	if !p.HasNext() {
		t.Error("expected a next page")
	}
	if p.HasPrevious() {
		t.Error("expected no previous page")
	}
}

func TestPaginate_ConcatenationReproducesInput(t *testing.T) {
	for _, n := range []int{0, 1, 6, 7, 8, 14, 15, 50} {
		for _, size := range []int{1, 3, 7, 10} {
			items := seq(n)
			total := TotalPages(n, size)

			var joined []int
			for page := 1; page <= total; page++ {
				p := Paginate(items, size, page)
				if len(p.Items) > size {
					t.Fatalf("n=%d size=%d page=%d: page longer than size (%d)", n, size, page, len(p.Items))
				}
				joined = append(joined, p.Items...)
			}

			if len(joined) != n {
				t.Fatalf("n=%d size=%d: expected %d items after concatenation, got %d", n, size, n, len(joined))
			}
			for i, v := range joined {
				if v != items[i] {
					t.Fatalf("n=%d size=%d: position %d holds %d, want %d", n, size, i, v, items[i])
				}
			}
		}
	}
}

func TestPaginate_OutOfRangeIsEmpty(t *testing.T) {
	for _, page := range []int{-3, 0, 4, 100} {
		p := Paginate(seq(15), 7, page)
		if len(p.Items) != 0 {
			t.Errorf("page %d: expected empty page, got %v", page, p.Items)
		}
		if p.Items == nil {
			t.Errorf("page %d: expected non-nil empty slice", page)
		}
		if p.TotalPages != 3 {
			t.Errorf("page %d: expected total pages 3, got %d", page, p.TotalPages)
		}
		if p.From() != 0 || p.To() != 0 {
			t.Errorf("page %d: expected zero bounds, got %d-%d", page, p.From(), p.To())
		}
	}
}

func TestPaginate_HugePageIsEmpty(t *testing.T) {
	// (page-1)*7 wraps negative for the second value
	for _, page := range []int{math.MaxInt, 4611686018427387905, math.MaxInt/7 + 2} {
		p := Paginate(seq(15), 7, page)
		if len(p.Items) != 0 || p.Items == nil {
			t.Errorf("page %d: expected empty non-nil page, got %v", page, p.Items)
		}
		if p.From() != 0 || p.To() != 0 || p.HasNext() {
			t.Errorf("page %d: expected no bounds and no next page, got %d-%d next=%t", page, p.From(), p.To(), p.HasNext())
		}
		if !p.HasPrevious() {
			t.Errorf("page %d: expected a previous page", page)
		}
	}
}

func TestPaginate_EmptyInputReportsOnePage(t *testing.T) {
	p := Paginate([]string{}, 7, 1)

	if p.TotalPages != 1 {
		t.Errorf("expected one page for empty input, got %d", p.TotalPages)
	}
	if len(p.Items) != 0 {
		t.Errorf("expected no items, got %d", len(p.Items))
	}
	if p.TotalItems != 0 {
		t.Errorf("expected total items 0, got %d", p.TotalItems)
	}
}

func TestPaginate_NonPositiveSizeFallsBackToDefault(t *testing.T) {
	p := Paginate(seq(20), 0, 1)

	if p.PageSize != DefaultPageSize {
		t.Errorf("expected page size %d, got %d", DefaultPageSize, p.PageSize)
	}
	if len(p.Items) != DefaultPageSize {
		t.Errorf("expected %d items, got %d", DefaultPageSize, len(p.Items))
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total, size, want int
	}{
		{0, 7, 1},
		{1, 7, 1},
		{7, 7, 1},
		{8, 7, 2},
		{15, 7, 3},
		{21, 7, 3},
	}
	for _, c := range cases {
		if got := TotalPages(c.total, c.size); got != c.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", c.total, c.size, got, c.want)
		}
	}
}

func TestWindow(t *testing.T) {
	cases := []struct {
		name                  string
		current, total, width int
		want                  []int
	}{
		{"first page pins to start", 1, 5, 3, []int{1, 2, 3}},
		{"last page pins to end", 5, 5, 3, []int{3, 4, 5}},
		{"middle page is centred", 3, 5, 3, []int{2, 3, 4}},
		{"second page is centred", 2, 5, 3, []int{1, 2, 3}},
		{"fewer pages than width", 1, 2, 3, []int{1, 2}},
		{"last of two pages", 2, 2, 3, []int{1, 2}},
		{"single page", 1, 1, 3, []int{1}},
		{"current beyond total", 9, 3, 3, []int{1, 2, 3}},
		{"current below one", -2, 4, 3, []int{1, 2, 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := Window(c.current, c.total, c.width)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Window(%d, %d, %d) = %v, want %v", c.current, c.total, c.width, got, c.want)
			}
		})
	}
}

func TestWindow_StaysInRange(t *testing.T) {
	for total := 1; total <= 10; total++ {
		for current := -1; current <= total+2; current++ {
			for _, n := range Window(current, total, DefaultWindow) {
				if n < 1 || n > total {
					t.Fatalf("Window(%d, %d) produced out-of-range page %d", current, total, n)
				}
			}
		}
	}
}
