package domain

// Pagination describes one page of a larger result set. A nil entry in the
// IterPages slice marks a gap, rendered as an ellipsis.
type Pagination struct {
	Page    int
	PerPage int
	Total   int
}

// Pages is the total number of pages.
func (p Pagination) Pages() int {
	if p.Total == 0 || p.PerPage == 0 {
		return 1
	}
	n := (p.Total + p.PerPage - 1) / p.PerPage
	if n < 1 {
		n = 1
	}
	return n
}

func (p Pagination) HasPrev() bool { return p.Page > 1 }
func (p Pagination) HasNext() bool { return p.Page < p.Pages() }
func (p Pagination) PrevNum() int  { return p.Page - 1 }
func (p Pagination) NextNum() int  { return p.Page + 1 }

// Offset is the SQL offset for the current page.
func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// IterPages yields the page numbers to render in the pager: the first two
// pages, a window of two around the current page, and the last two pages,
// with nil entries where pages were skipped.
func (p Pagination) IterPages() []*int {
	const (
		leftEdge     = 2
		leftCurrent  = 2
		rightCurrent = 2
		rightEdge    = 2
	)

	pages := p.Pages()
	var out []*int
	lastEmitted := 0
	for num := 1; num <= pages; num++ {
		inLeftEdge := num <= leftEdge
		inWindow := num >= p.Page-leftCurrent && num <= p.Page+rightCurrent
		inRightEdge := num > pages-rightEdge
		if !inLeftEdge && !inWindow && !inRightEdge {
			continue
		}
		if lastEmitted != 0 && num-lastEmitted > 1 {
			out = append(out, nil)
		}
		n := num
		out = append(out, &n)
		lastEmitted = num
	}
	return out
}
