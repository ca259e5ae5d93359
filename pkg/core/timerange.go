package core

import (
	"errors"
	"fmt"
	"time"
)

// TimeRangeType identifies the variant of a TimeRange.
type TimeRangeType string

// Time range variants.
const (
	TimeRangeRelative TimeRangeType = "relative"
	TimeRangeAbsolute TimeRangeType = "absolute"
	TimeRangeKeyword  TimeRangeType = "keyword"
)

// DefaultRelativeSeconds is the range used when nothing else supplies one.
const DefaultRelativeSeconds = 300

// TimeRange is the time window of a search.
//
// Only the fields of the active variant are meaningful:
//   - relative: From (seconds back, 0 = all time), optionally To
//   - absolute: Start and End (RFC 3339)
//   - keyword: Keyword (e.g. "last five minutes")
type TimeRange struct {
	Type    TimeRangeType `json:"type,omitempty" yaml:"type" mapstructure:"type"`
	From    int           `json:"from,omitempty" yaml:"from" mapstructure:"from"`
	To      int           `json:"to,omitempty" yaml:"to" mapstructure:"to"`
	Start   string        `json:"start,omitempty" yaml:"start" mapstructure:"start"`
	End     string        `json:"end,omitempty" yaml:"end" mapstructure:"end"`
	Keyword string        `json:"keyword,omitempty" yaml:"keyword" mapstructure:"keyword"`
}

// RelativeRange returns a relative range covering the last seconds.
func RelativeRange(seconds int) TimeRange {
	return TimeRange{Type: TimeRangeRelative, From: seconds}
}

// DefaultTimeRange returns the fallback range of the last five minutes.
func DefaultTimeRange() TimeRange {
	return RelativeRange(DefaultRelativeSeconds)
}

// IsZero reports whether the range is unset.
// A relative range of 0 seconds is "all time" and is not zero.
func (t TimeRange) IsZero() bool {
	return t.Type == ""
}

// Validate checks that the fields of the active variant are well-formed.
func (t TimeRange) Validate() error {
	switch t.Type {
	case TimeRangeRelative:
		if t.From < 0 || t.To < 0 {
			return errors.New("relative range must not be negative")
		}
		if t.To != 0 && t.To >= t.From {
			return fmt.Errorf("relative range 'to' (%d) must be smaller than 'from' (%d)", t.To, t.From)
		}
	case TimeRangeAbsolute:
		start, err := time.Parse(time.RFC3339, t.Start)
		if err != nil {
			return fmt.Errorf("invalid absolute range start: %w", err)
		}
		end, err := time.Parse(time.RFC3339, t.End)
		if err != nil {
			return fmt.Errorf("invalid absolute range end: %w", err)
		}
		if end.Before(start) {
			return errors.New("absolute range ends before it starts")
		}
	case TimeRangeKeyword:
		if t.Keyword == "" {
			return errors.New("keyword range requires a keyword")
		}
	case "":
		return errors.New("time range type is required")
	default:
		return fmt.Errorf("unknown time range type %q", t.Type)
	}
	return nil
}

// String renders the range for humans.
func (t TimeRange) String() string {
	switch t.Type {
	case TimeRangeRelative:
		if t.From == 0 {
			return "all time"
		}
		if t.To != 0 {
			return fmt.Sprintf("from %ds ago to %ds ago", t.From, t.To)
		}
		return fmt.Sprintf("last %ds", t.From)
	case TimeRangeAbsolute:
		return fmt.Sprintf("%s to %s", t.Start, t.End)
	case TimeRangeKeyword:
		return t.Keyword
	default:
		return ""
	}
}
