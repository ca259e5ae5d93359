// Package aggregation provides the action catalog of the aggregation wizard
// and derives which actions can still be added to a widget.
package aggregation

import (
	"errors"
	"fmt"
)

// Errors returned by Select.
var (
	ErrUnknownAction    = errors.New("unknown aggregation action")
	ErrActionConfigured = errors.New("aggregation action already configured")
)

// Action is a section of the aggregation wizard that can be added once.
type Action struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Option is a selectable entry offered to the user.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// DefaultActions returns the wizard actions in display order.
func DefaultActions() []Action {
	return []Action{
		{Key: "metric", Label: "Metric"},
		{Key: "groupBy", Label: "Group By"},
		{Key: "sort", Label: "Sort"},
		{Key: "visualization", Label: "Visualization"},
	}
}

// AvailableOptions returns an option for every action that is not configured yet,
// in the order of actions. The result is never nil.
func AvailableOptions(actions []Action, configured []string) []Option {
	taken := make(map[string]struct{}, len(configured))
	for _, key := range configured {
		taken[key] = struct{}{}
	}

	options := make([]Option, 0, len(actions))
	for _, action := range actions {
		if _, ok := taken[action.Key]; ok {
			continue
		}
		options = append(options, Option{Value: action.Key, Label: action.Label})
	}
	return options
}

// Select validates the creation of the action identified by key.
func Select(actions []Action, configured []string, key string) (Action, error) {
	var found *Action
	for i := range actions {
		if actions[i].Key == key {
			found = &actions[i]
			break
		}
	}
	if found == nil {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, key)
	}

	for _, c := range configured {
		if c == key {
			return Action{}, fmt.Errorf("%w: %q", ErrActionConfigured, key)
		}
	}
	return *found, nil
}
