package pagination

const (
	DefaultPageSize = 7
	// DefaultWindow is how many page buttons the patients view renders
	DefaultWindow = 3
)

// Page is one contiguous slice of a sequence together with its position.
type Page[T any] struct {
	Items      []T
	Page       int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Paginate returns the 1-based page of items of the given size, i.e.
// items[(page-1)*size : page*size] clamped to the bounds of items.
// Pages outside [1, TotalPages] yield an empty slice. A non-positive
// size falls back to DefaultPageSize.
func Paginate[T any](items []T, size, page int) Page[T] {
	if size < 1 {
		size = DefaultPageSize
	}

	p := Page[T]{
		Items:      []T{},
		Page:       page,
		PageSize:   size,
		TotalItems: len(items),
		TotalPages: TotalPages(len(items), size),
	}
	// checked before multiplying so a huge page cannot wrap start negative
	if page < 1 || page > p.TotalPages {
		return p
	}

	start := (page - 1) * size
	if start >= len(items) {
		return p
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	p.Items = items[start:end]
	return p
}

// TotalPages returns ceil(total/size), reporting a single empty page when total is zero.
func TotalPages(total, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 1
	}
	return (total + size - 1) / size
}

// From returns the 1-based position of the first item on the page, or 0 when the page is empty.
func (p Page[T]) From() int {
	if len(p.Items) == 0 {
		return 0
	}
	return (p.Page-1)*p.PageSize + 1
}

// To returns the 1-based position of the last item on the page, or 0 when the page is empty.
func (p Page[T]) To() int {
	if len(p.Items) == 0 {
		return 0
	}
	return p.From() + len(p.Items) - 1
}

// HasNext returns true if there are pages after the current one.
func (p Page[T]) HasNext() bool {
	return p.Page >= 1 && p.Page < p.TotalPages
}

// HasPrevious returns true if there are pages before the current one.
func (p Page[T]) HasPrevious() bool {
	return p.Page > 1
}

// Window returns up to width page numbers to render as buttons. The window
// is pinned to the start on the first page, to the end on the last page, and
// centred on the current page otherwise. Only numbers in [1, total] are returned.
func Window(current, total, width int) []int {
	if total < 1 || width < 1 {
		return []int{}
	}
	if width > total {
		width = total
	}

	var first int
	switch {
	case current <= 1:
		first = 1
	case current >= total:
		first = total - width + 1
	default:
		first = current - (width-1)/2
	}
	if first < 1 {
		first = 1
	}
	if first+width-1 > total {
		first = total - width + 1
	}

	pages := make([]int, 0, width)
	for n := first; n < first+width; n++ {
		pages = append(pages, n)
	}
	return pages
}
