package grid

// Pagination is the host's current page window. Pages are 1-based.
type Pagination struct {
	CurrentPage  int `mapstructure:"current_page"`
	ItemsPerPage int `mapstructure:"items_per_page"`
	TotalItems   int `mapstructure:"total_items"`
}

// PageHandlers are called when the user changes page or page size.
type PageHandlers struct {
	OnPageChange         func(page int)
	OnItemsPerPageChange func(size int)
}

// Normalized clamps page and size to at least 1.
func (p Pagination) Normalized() Pagination {
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.ItemsPerPage < 1 {
		p.ItemsPerPage = 1
	}
	if p.TotalItems < 0 {
		p.TotalItems = 0
	}
	return p
}

// Offset is the number of records before the current page.
func (p Pagination) Offset() int {
	n := p.Normalized()
	return (n.CurrentPage - 1) * n.ItemsPerPage
}

// DisplayOrdinal turns a 0-based local row position into the 1-based
// ordinal shown in the row header. It is only a label; writes always
// address rows by local index and record ID.
func (p Pagination) DisplayOrdinal(local int) int {
	return p.Offset() + local + 1
}

// TotalPages returns the page count, at least 1.
func (p Pagination) TotalPages() int {
	n := p.Normalized()
	if n.TotalItems == 0 {
		return 1
	}
	return (n.TotalItems + n.ItemsPerPage - 1) / n.ItemsPerPage
}

func (p Pagination) HasNext() bool { return p.Normalized().CurrentPage < p.TotalPages() }
func (p Pagination) HasPrev() bool { return p.Normalized().CurrentPage > 1 }

// WithPage returns p moved to page, clamped to the valid range.
func (p Pagination) WithPage(page int) Pagination {
	p = p.Normalized()
	p.CurrentPage = min(max(page, 1), p.TotalPages())
	return p
}

// WithItemsPerPage changes the page size and keeps the first visible
// record on screen.
func (p Pagination) WithItemsPerPage(size int) Pagination {
	first := p.Offset()
	p = p.Normalized()
	p.ItemsPerPage = max(size, 1)
	p.CurrentPage = first/p.ItemsPerPage + 1
	return p
}
