// Package drilldown resolves the context that interactive widget elements use
// to scope a follow-up search, and propagates it to descendants via context.Context.
package drilldown

import (
	"context"

	"github.com/leapstack-labs/logviews/pkg/core"
)

// Input holds every source a drilldown can be resolved from.
// GlobalOverride and CurrentQuery are optional.
type Input struct {
	ViewType       core.ViewType
	Widget         core.Widget
	GlobalOverride *core.GlobalOverride
	CurrentQuery   *core.Query
	Categories     core.StreamCategoryResolver
}

// Resolve computes the drilldown for in, or nil when no context is available.
//
// On dashboards, streams always come from the widget, while time range and query
// fall back from the global override to the widget to a default. Elsewhere the
// current query supplies everything. Resolve has no side effects and never
// aliases the slices in in.
func Resolve(in Input) *core.Drilldown {
	if in.ViewType == core.ViewTypeDashboard {
		return resolveDashboard(in.Widget, in.GlobalOverride)
	}

	if in.CurrentQuery != nil {
		q := in.CurrentQuery
		return &core.Drilldown{
			Streams:   core.FiltersToStreamSet(q.Filter, in.Categories),
			TimeRange: q.TimeRange,
			Query:     q.Query,
		}
	}

	return nil
}

func resolveDashboard(widget core.Widget, override *core.GlobalOverride) *core.Drilldown {
	timerange := widget.TimeRange
	if override != nil && !override.TimeRange.IsZero() {
		timerange = override.TimeRange
	}
	if timerange.IsZero() {
		timerange = core.DefaultTimeRange()
	}

	query := widget.Query
	if override != nil && !override.Query.IsEmpty() {
		query = override.Query
	}
	if query.IsEmpty() {
		query = core.ElasticsearchQueryString("")
	}

	return &core.Drilldown{
		Streams:   append([]string{}, widget.Streams...),
		TimeRange: timerange,
		Query:     query,
	}
}

// contextKey is used to store the drilldown in a context.
type contextKey struct{}

// WithDrilldown attaches d to ctx. A nil d leaves ctx untouched, so
// descendants see drill-down as disabled.
func WithDrilldown(ctx context.Context, d *core.Drilldown) context.Context {
	if d == nil {
		return ctx
	}
	return context.WithValue(ctx, contextKey{}, d)
}

// FromContext retrieves the drilldown attached to ctx.
func FromContext(ctx context.Context) (*core.Drilldown, bool) {
	d, ok := ctx.Value(contextKey{}).(*core.Drilldown)
	return d, ok && d != nil
}

// Provide resolves in and attaches the result to ctx.
func Provide(ctx context.Context, in Input) context.Context {
	return WithDrilldown(ctx, Resolve(in))
}
