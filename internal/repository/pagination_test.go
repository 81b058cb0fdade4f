package repository

import "testing"

func TestNewPagination(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		total       int
		wantPages   int
		wantHasMore bool
	}{
		{"Empty Collection", 1, 10, 0, 0, false},
		{"Exact Fit", 1, 10, 10, 1, false},
		{"Partial Last Page", 1, 10, 11, 2, true},
		{"Middle Page", 2, 5, 12, 3, true},
		{"Last Page", 3, 5, 12, 3, false},
		{"Beyond Last Page", 5, 5, 12, 3, false},
		{"Limit One", 4, 1, 4, 4, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			if p.TotalPages != tc.wantPages {
				t.Errorf("totalPages: expected %d, got %d", tc.wantPages, p.TotalPages)
			}
			if p.HasMore != tc.wantHasMore {
				t.Errorf("hasMore: expected %v, got %v", tc.wantHasMore, p.HasMore)
			}
			if p.TotalItems != tc.total || p.CurrentPage != tc.page {
				t.Errorf("envelope echo mismatch: %+v", p)
			}
		})
	}
}

func TestPageBounds(t *testing.T) {
	page, limit, offset := PageBounds(0, 0)
	if page != 1 || limit != 10 || offset != 0 {
		t.Errorf("defaults: got page=%d limit=%d offset=%d", page, limit, offset)
	}
	page, limit, offset = PageBounds(3, 25)
	if page != 3 || limit != 25 || offset != 50 {
		t.Errorf("expected offset 50, got page=%d limit=%d offset=%d", page, limit, offset)
	}
}
