package domain_test

import (
	"testing"

	"github.com/caloria/webadmin/internal/domain"
)

func TestPaginationPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		total, perPage, pages int
	}{
		{0, 20, 1},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{45, 20, 3},
		{500, 20, 25},
	}
	for _, tc := range tests {
		p := domain.Pagination{Page: 1, PerPage: tc.perPage, Total: tc.total}
		if got := p.Pages(); got != tc.pages {
			t.Fatalf("total=%d perPage=%d: expected %d pages, got %d", tc.total, tc.perPage, tc.pages, got)
		}
	}
}

// gap marks an ellipsis entry in the expected pager sequence.
const gap = 0

func TestPaginationIterPages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		total    int
		expected []int
	}{
		{"middle of many pages", 12, 500, []int{1, 2, gap, 10, 11, 12, 13, 14, gap, 24, 25}},
		{"first page", 1, 500, []int{1, 2, 3, gap, 24, 25}},
		{"last page", 25, 500, []int{1, 2, gap, 23, 24, 25}},
		{"few pages render without gaps", 2, 60, []int{1, 2, 3}},
		{"single page", 1, 5, []int{1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := domain.Pagination{Page: tc.page, PerPage: 20, Total: tc.total}
			got := p.IterPages()
			if len(got) != len(tc.expected) {
				t.Fatalf("expected %d entries, got %d", len(tc.expected), len(got))
			}
			for i, want := range tc.expected {
				switch {
				case want == gap && got[i] != nil:
					t.Fatalf("entry %d: expected an ellipsis, got page %d", i, *got[i])
				case want != gap && got[i] == nil:
					t.Fatalf("entry %d: expected page %d, got an ellipsis", i, want)
				case want != gap && *got[i] != want:
					t.Fatalf("entry %d: expected page %d, got %d", i, want, *got[i])
				}
			}
		})
	}
}

func TestPaginationNavigation(t *testing.T) {
	t.Parallel()

	first := domain.Pagination{Page: 1, PerPage: 20, Total: 100}
	if first.HasPrev() {
		t.Fatalf("first page should not have a previous page")
	}
	if !first.HasNext() {
		t.Fatalf("first page of five should have a next page")
	}
	if first.Offset() != 0 {
		t.Fatalf("expected offset 0, got %d", first.Offset())
	}

	last := domain.Pagination{Page: 5, PerPage: 20, Total: 100}
	if !last.HasPrev() {
		t.Fatalf("last page should have a previous page")
	}
	if last.HasNext() {
		t.Fatalf("last page should not have a next page")
	}
	if last.PrevNum() != 4 || last.NextNum() != 6 {
		t.Fatalf("expected prev=4 next=6, got prev=%d next=%d", last.PrevNum(), last.NextNum())
	}
	if last.Offset() != 80 {
		t.Fatalf("expected offset 80, got %d", last.Offset())
	}
}
