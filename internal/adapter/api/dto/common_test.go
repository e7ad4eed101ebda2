package dto

import (
	"testing"

	"github.com/hugohenrick/agro-dashboard/pkg/listing"
)

func TestListQueryToFilter(t *testing.T) {
	q := ListQuery{
		Query:    "milho",
		From:     "2025-01-01",
		To:       "2025-03-31",
		SeasonID: "season-1",
		Page:     3,
	}

	got := q.ToFilter()
	want := listing.Filter{
		Query:    "milho",
		From:     "2025-01-01",
		To:       "2025-03-31",
		SeasonID: "season-1",
	}

	if got != want {
		t.Errorf("ToFilter() = %+v, esperado %+v", got, want)
	}
}

func TestListQueryPageNumber(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{name: "página ausente", page: 0, want: 1},
		{name: "página negativa", page: -2, want: 1},
		{name: "primeira página", page: 1, want: 1},
		{name: "página posterior", page: 5, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := ListQuery{Page: tt.page}
			if got := q.PageNumber(); got != tt.want {
				t.Errorf("PageNumber() = %d, esperado %d", got, tt.want)
			}
		})
	}
}
