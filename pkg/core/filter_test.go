package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFiltersToStreamSet(t *testing.T) {
	categories := StreamCategories{
		"illuminate:firewall": {"fw-1", "fw-2"},
		"illuminate:dns":      {"dns-1", "fw-1"},
	}

	tests := []struct {
		name       string
		filter     Filter
		categories StreamCategoryResolver
		want       []string
	}{
		{
			name:   "nil filter",
			filter: nil,
			want:   []string{},
		},
		{
			name:   "single stream",
			filter: StreamFilter{ID: "s1"},
			want:   []string{"s1"},
		},
		{
			name: "or of streams keeps order",
			filter: OrFilter{Filters: []Filter{
				StreamFilter{ID: "s2"},
				StreamFilter{ID: "s1"},
			}},
			want: []string{"s2", "s1"},
		},
		{
			name: "duplicates removed",
			filter: OrFilter{Filters: []Filter{
				StreamFilter{ID: "s1"},
				AndFilter{Filters: []Filter{StreamFilter{ID: "s1"}, StreamFilter{ID: "s3"}}},
			}},
			want: []string{"s1", "s3"},
		},
		{
			name: "categories expanded",
			filter: OrFilter{Filters: []Filter{
				StreamFilter{ID: "s1"},
				StreamCategoryFilter{Category: "illuminate:firewall"},
				StreamCategoryFilter{Category: "illuminate:dns"},
			}},
			categories: categories,
			want:       []string{"s1", "fw-1", "fw-2", "dns-1"},
		},
		{
			name:       "unknown category contributes nothing",
			filter:     StreamCategoryFilter{Category: "missing"},
			categories: categories,
			want:       []string{},
		},
		{
			name:   "nil resolver ignores categories",
			filter: OrFilter{Filters: []Filter{StreamCategoryFilter{Category: "illuminate:dns"}, StreamFilter{ID: "s9"}}},
			want:   []string{"s9"},
		},
		{
			name: "non-stream filters ignored",
			filter: AndFilter{Filters: []Filter{
				QueryStringFilter{Query: "level:3"},
				UnknownFilter{Type: "index_set"},
				StreamFilter{ID: "s4"},
			}},
			want: []string{"s4"},
		},
		{
			name:   "empty stream id skipped",
			filter: StreamFilter{ID: ""},
			want:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FiltersToStreamSet(tt.filter, tt.categories)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnknownFilter_KeepsType(t *testing.T) {
	f := UnknownFilter{Type: "index_set"}
	assert.Equal(t, "index_set", f.FilterType())
}
