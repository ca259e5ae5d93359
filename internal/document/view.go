package document

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/leapstack-labs/logviews/internal/drilldown"
	"github.com/leapstack-labs/logviews/pkg/core"
)

// View is the on-disk form of the inputs of a drilldown resolution.
//
//	view_type: DASHBOARD
//	widget:
//	  streams: [stream-a]
//	  timerange: {type: relative, from: 3600}
//	  query: {type: elasticsearch, query_string: "action:login"}
//	global_override:
//	  query: {type: elasticsearch, query_string: "source:gateway"}
//	current_query:
//	  filter: {type: or, filters: [{type: stream, id: stream-a}]}
type View struct {
	ViewType       string    `json:"view_type" yaml:"view_type"`
	Widget         *Widget   `json:"widget,omitempty" yaml:"widget"`
	GlobalOverride *Override `json:"global_override,omitempty" yaml:"global_override"`
	CurrentQuery   *Query    `json:"current_query,omitempty" yaml:"current_query"`
}

// Widget is the on-disk form of core.Widget.
type Widget struct {
	ID        string           `json:"id" yaml:"id"`
	Type      string           `json:"type" yaml:"type"`
	Streams   []string         `json:"streams" yaml:"streams"`
	TimeRange core.TimeRange   `json:"timerange" yaml:"timerange"`
	Query     core.QueryString `json:"query" yaml:"query"`
}

// Override is the on-disk form of core.GlobalOverride.
type Override struct {
	TimeRange core.TimeRange   `json:"timerange" yaml:"timerange"`
	Query     core.QueryString `json:"query" yaml:"query"`
}

// Query is the on-disk form of core.Query.
type Query struct {
	ID        string           `json:"id" yaml:"id"`
	Filter    map[string]any   `json:"filter" yaml:"filter"`
	TimeRange core.TimeRange   `json:"timerange" yaml:"timerange"`
	Query     core.QueryString `json:"query" yaml:"query"`
}

// LoadView reads the view document at path into resolution inputs.
// Stream categories are not part of the document; callers set Input.Categories.
func LoadView(path string) (drilldown.Input, error) {
	var doc View
	if err := decodeFile(path, &doc); err != nil {
		return drilldown.Input{}, err
	}

	in, err := doc.Input()
	if err != nil {
		return drilldown.Input{}, fmt.Errorf("invalid view document %s: %w", path, err)
	}
	return in, nil
}

// Input converts the document into resolution inputs.
// Widgets and queries without an ID are assigned a random one.
func (v View) Input() (drilldown.Input, error) {
	if v.ViewType == "" {
		return drilldown.Input{}, errors.New("view_type is required")
	}
	viewType, err := core.ParseViewType(v.ViewType)
	if err != nil {
		return drilldown.Input{}, fmt.Errorf("view_type: %w", err)
	}

	in := drilldown.Input{ViewType: viewType}

	if v.Widget != nil {
		if err := validateRange("widget.timerange", v.Widget.TimeRange); err != nil {
			return drilldown.Input{}, err
		}
		in.Widget = core.Widget{
			ID:        idOrNew(v.Widget.ID),
			Type:      v.Widget.Type,
			Streams:   v.Widget.Streams,
			TimeRange: v.Widget.TimeRange,
			Query:     v.Widget.Query,
		}
	}

	if v.GlobalOverride != nil {
		if err := validateRange("global_override.timerange", v.GlobalOverride.TimeRange); err != nil {
			return drilldown.Input{}, err
		}
		in.GlobalOverride = &core.GlobalOverride{
			TimeRange: v.GlobalOverride.TimeRange,
			Query:     v.GlobalOverride.Query,
		}
	}

	if v.CurrentQuery != nil {
		if err := validateRange("current_query.timerange", v.CurrentQuery.TimeRange); err != nil {
			return drilldown.Input{}, err
		}
		filter, err := DecodeFilter(v.CurrentQuery.Filter)
		if err != nil {
			return drilldown.Input{}, fmt.Errorf("current_query.filter: %w", err)
		}
		in.CurrentQuery = &core.Query{
			ID:        idOrNew(v.CurrentQuery.ID),
			Filter:    filter,
			TimeRange: v.CurrentQuery.TimeRange,
			Query:     v.CurrentQuery.Query,
		}
	}

	return in, nil
}

// validateRange accepts an omitted range. A range with fields but no type is an error.
func validateRange(field string, tr core.TimeRange) error {
	if tr == (core.TimeRange{}) {
		return nil
	}
	if err := tr.Validate(); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	return nil
}

func idOrNew(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
