package core

// Filter type discriminators.
const (
	FilterTypeOr             = "or"
	FilterTypeAnd            = "and"
	FilterTypeStream         = "stream"
	FilterTypeStreamCategory = "stream_category"
	FilterTypeQueryString    = "query_string"
)

// Filter narrows the messages a query runs against.
// Concrete filters are discriminated by their type name.
type Filter interface {
	FilterType() string
}

// OrFilter matches messages matching any of its children.
type OrFilter struct {
	Filters []Filter
}

// FilterType implements Filter.
func (OrFilter) FilterType() string { return FilterTypeOr }

// AndFilter matches messages matching all of its children.
type AndFilter struct {
	Filters []Filter
}

// FilterType implements Filter.
func (AndFilter) FilterType() string { return FilterTypeAnd }

// StreamFilter restricts a query to a single stream.
type StreamFilter struct {
	ID string
}

// FilterType implements Filter.
func (StreamFilter) FilterType() string { return FilterTypeStream }

// StreamCategoryFilter restricts a query to every stream in a category.
type StreamCategoryFilter struct {
	Category string
}

// FilterType implements Filter.
func (StreamCategoryFilter) FilterType() string { return FilterTypeStreamCategory }

// QueryStringFilter restricts a query by an additional query string.
type QueryStringFilter struct {
	Query string
}

// FilterType implements Filter.
func (QueryStringFilter) FilterType() string { return FilterTypeQueryString }

// UnknownFilter holds a filter whose type is not understood.
// Only the type name is retained; it never contributes streams.
type UnknownFilter struct {
	Type string
}

// FilterType implements Filter.
func (f UnknownFilter) FilterType() string { return f.Type }

// StreamCategoryResolver maps a stream category to the streams it contains.
type StreamCategoryResolver interface {
	StreamsForCategory(category string) []string
}

// StreamCategories is a static StreamCategoryResolver.
type StreamCategories map[string][]string

// StreamsForCategory implements StreamCategoryResolver.
func (c StreamCategories) StreamsForCategory(category string) []string {
	return c[category]
}

// FiltersToStreamSet flattens a filter tree into the stream IDs it references.
// Streams appear in first-seen (depth-first) order without duplicates.
// Categories are expanded through categories; a nil resolver expands nothing.
// The result is never nil.
func FiltersToStreamSet(filter Filter, categories StreamCategoryResolver) []string {
	streams := []string{}
	seen := make(map[string]struct{})

	add := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		streams = append(streams, id)
	}

	var walk func(f Filter)
	walk = func(f Filter) {
		switch f := f.(type) {
		case OrFilter:
			for _, child := range f.Filters {
				walk(child)
			}
		case AndFilter:
			for _, child := range f.Filters {
				walk(child)
			}
		case StreamFilter:
			add(f.ID)
		case StreamCategoryFilter:
			if categories == nil {
				return
			}
			for _, id := range categories.StreamsForCategory(f.Category) {
				add(id)
			}
		}
	}

	if filter != nil {
		walk(filter)
	}
	return streams
}
