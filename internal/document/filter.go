package document

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
	"github.com/leapstack-labs/logviews/pkg/core"
)

// DecodeFilter converts a decoded filter object into a core.Filter.
// Filters of unknown type decode to core.UnknownFilter and keep only their type.
// A nil map decodes to a nil filter.
func DecodeFilter(raw map[string]any) (core.Filter, error) {
	if raw == nil {
		return nil, nil
	}
	typ, _ := raw["type"].(string)

	switch typ {
	case core.FilterTypeOr, core.FilterTypeAnd:
		var node struct {
			Filters []map[string]any `mapstructure:"filters"`
		}
		if err := decode(raw, &node); err != nil {
			return nil, fmt.Errorf("%s filter: %w", typ, err)
		}
		children := make([]core.Filter, 0, len(node.Filters))
		for i, child := range node.Filters {
			f, err := DecodeFilter(child)
			if err != nil {
				return nil, fmt.Errorf("%s filter: filters[%d]: %w", typ, i, err)
			}
			if f != nil {
				children = append(children, f)
			}
		}
		if typ == core.FilterTypeAnd {
			return core.AndFilter{Filters: children}, nil
		}
		return core.OrFilter{Filters: children}, nil

	case core.FilterTypeStream:
		var node struct {
			ID string `mapstructure:"id"`
		}
		if err := decode(raw, &node); err != nil {
			return nil, fmt.Errorf("stream filter: %w", err)
		}
		if node.ID == "" {
			return nil, fmt.Errorf("stream filter: id is required")
		}
		return core.StreamFilter{ID: node.ID}, nil

	case core.FilterTypeStreamCategory:
		var node struct {
			Category string `mapstructure:"category"`
		}
		if err := decode(raw, &node); err != nil {
			return nil, fmt.Errorf("stream_category filter: %w", err)
		}
		if node.Category == "" {
			return nil, fmt.Errorf("stream_category filter: category is required")
		}
		return core.StreamCategoryFilter{Category: node.Category}, nil

	case core.FilterTypeQueryString:
		var node struct {
			Query string `mapstructure:"query"`
		}
		if err := decode(raw, &node); err != nil {
			return nil, fmt.Errorf("query_string filter: %w", err)
		}
		return core.QueryStringFilter{Query: node.Query}, nil

	default:
		return core.UnknownFilter{Type: typ}, nil
	}
}

func decode(raw map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(raw)
}
