// Package lookup models lookup-table caches and the catalog of cache types
// that configuration screens render them with.
package lookup

import "github.com/leapstack-labs/logviews/pkg/core"

// Cache is a configured lookup-table cache.
type Cache struct {
	ID          string               `json:"id" yaml:"id"`
	Name        string               `json:"name" yaml:"name"`
	Title       string               `json:"title" yaml:"title"`
	Description string               `json:"description" yaml:"description"`
	Config      CacheConfig          `json:"config" yaml:"config"`
	Metadata    *core.EntityMetadata `json:"_metadata,omitempty" yaml:"_metadata,omitempty"`
}

// CacheConfig holds the type discriminator and the type-specific settings of a cache.
type CacheConfig map[string]any

// Type returns the cache type discriminator, or "" when missing.
func (c CacheConfig) Type() string {
	t, _ := c["type"].(string)
	return t
}

// Scope returns the entity scope of the cache, defaulting to DEFAULT.
func (c Cache) Scope() string {
	if c.Metadata == nil || c.Metadata.Scope == "" {
		return ScopeDefault
	}
	return c.Metadata.Scope
}

// CacheView is everything a configuration screen shows for one cache.
type CacheView struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Type            string        `json:"type"`
	TypeDisplayName string        `json:"type_display_name"`
	Summary         []SummaryLine `json:"summary"`
	Scope           string        `json:"scope"`
	Editable        bool          `json:"editable"`
	Deletable       bool          `json:"deletable"`
}
