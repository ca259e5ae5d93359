// Package core defines the shared language of the logviews system.
//
// This package contains:
//   - View entities (Widget, Query, GlobalOverride, ViewType)
//   - Search primitives (TimeRange, QueryString, Filter)
//   - Resolution output (Drilldown)
//   - Entity metadata shared by configuration screens (EntityMetadata)
//
// The Golden Rule: pkg/core imports ONLY stdlib.
// All other packages depend on core, not the reverse.
package core
