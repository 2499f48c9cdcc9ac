package repository

// DefaultPageSize is used whenever a caller asks for a non-positive page size.
const DefaultPageSize = 10

// Window describes one page of an ordered collection.
// Start and End are slice bounds: callers take items[Start:End].
type Window struct {
	Page       int `json:"page"`
	Size       int `json:"size"`
	TotalPages int `json:"total_pages"`
	Total      int `json:"total"`
	Start      int `json:"-"`
	End        int `json:"-"`
}

// Paginate computes the visible window for a collection of total items.
// Size falls back to DefaultPageSize, the page is clamped into [1, TotalPages]
// and there is always at least one page, even for an empty collection.
func Paginate(total, page, size int) Window {
	if total < 0 {
		total = 0
	}
	if size <= 0 {
		size = DefaultPageSize
	}

	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := clamp((page-1)*size, 0, total)
	end := clamp(start+size, 0, total)

	return Window{
		Page:       page,
		Size:       size,
		TotalPages: totalPages,
		Total:      total,
		Start:      start,
		End:        end,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (w Window) HasPrev() bool { return w.Page > 1 }
func (w Window) HasNext() bool { return w.Page < w.TotalPages }
func (w Window) PrevPage() int { return max(w.Page-1, 1) }
func (w Window) NextPage() int { return min(w.Page+1, w.TotalPages) }

// Pages lists every page number, used by the list view to render links.
func (w Window) Pages() []int {
	out := make([]int, w.TotalPages)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// PageResult carries one page of items plus the window it was cut with.
// I return the total so clients can render pagination without an extra round trip.
type PageResult[T any] struct {
	Items  []T    `json:"items"`
	Total  int    `json:"total"`
	Window Window `json:"page"`
}

// Slice cuts items with w, returning an empty non-nil slice for empty windows.
func Slice[T any](items []T, w Window) []T {
	if w.End > len(items) || w.Start > w.End {
		return []T{}
	}
	out := make([]T, w.End-w.Start)
	copy(out, items[w.Start:w.End])
	return out
}
