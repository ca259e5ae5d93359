package core

import (
	"fmt"
	"strings"
)

// ViewType distinguishes ad-hoc searches from saved dashboards.
type ViewType string

// View type constants.
const (
	ViewTypeSearch    ViewType = "SEARCH"
	ViewTypeDashboard ViewType = "DASHBOARD"
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	return string(v)
}

// ParseViewType converts a string to a ViewType value (case-insensitive).
func ParseViewType(s string) (ViewType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(ViewTypeSearch):
		return ViewTypeSearch, nil
	case string(ViewTypeDashboard):
		return ViewTypeDashboard, nil
	default:
		return "", fmt.Errorf("unknown view type %q (expected SEARCH or DASHBOARD)", s)
	}
}

// Widget is a single visualization on a view.
type Widget struct {
	ID        string      `json:"id"`
	Type      string      `json:"type,omitempty"`
	Streams   []string    `json:"streams"`
	TimeRange TimeRange   `json:"timerange"`
	Query     QueryString `json:"query"`
}

// GlobalOverride is a dashboard-wide override of the widget time range and query.
// Either field may be left empty.
type GlobalOverride struct {
	TimeRange TimeRange   `json:"timerange"`
	Query     QueryString `json:"query"`
}

// Query is a search query as executed on a search page.
type Query struct {
	ID        string      `json:"id"`
	Filter    Filter      `json:"-"`
	TimeRange TimeRange   `json:"timerange"`
	Query     QueryString `json:"query"`
}

// Drilldown is the resolved context used to scope a follow-up search.
type Drilldown struct {
	Streams   []string    `json:"streams"`
	TimeRange TimeRange   `json:"timerange"`
	Query     QueryString `json:"query"`
}

// EntityMetadata describes ownership and revision of a configuration entity.
type EntityMetadata struct {
	Scope     string `json:"scope" yaml:"scope"`
	Revision  int    `json:"revision" yaml:"revision"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}
