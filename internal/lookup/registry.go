package lookup

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrRegistrySealed is returned when registering into a sealed registry.
var ErrRegistrySealed = errors.New("cache type registry is sealed")

// SummaryLine is one labelled value of a cache summary.
type SummaryLine struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SummaryFunc renders the type-specific settings of a cache config.
type SummaryFunc func(cfg CacheConfig) ([]SummaryLine, error)

// CacheType describes a cache implementation that caches can be configured with.
type CacheType struct {
	Type        string
	DisplayName string
	Summary     SummaryFunc
}

// Registry maps cache type names to their descriptors.
// It is filled at start-up and sealed before use.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]CacheType
	sealed bool
}

// NewRegistry creates an empty, unsealed registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]CacheType)}
}

// Register adds a cache type.
func (r *Registry) Register(ct CacheType) error {
	if ct.Type == "" {
		return errors.New("cache type name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, ct.Type)
	}
	if _, ok := r.types[ct.Type]; ok {
		return fmt.Errorf("cache type %q already registered", ct.Type)
	}
	r.types[ct.Type] = ct
	return nil
}

// Seal makes the registry read-only.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sealed = true
}

// Sealed reports whether the registry is read-only.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Get retrieves a cache type by name.
func (r *Registry) Get(typ string) (CacheType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ct, ok := r.types[typ]
	return ct, ok
}

// Types returns all registered cache types sorted by name.
func (r *Registry) Types() []CacheType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]CacheType, 0, len(r.types))
	for _, ct := range r.types {
		types = append(types, ct)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].Type < types[j].Type })
	return types
}

// Names returns all registered cache type names (sorted).
func (r *Registry) Names() []string {
	types := r.Types()
	names := make([]string, len(types))
	for i, ct := range types {
		names[i] = ct.Type
	}
	return names
}

// Describe builds the view of a cache using its registered type and the scope rules.
func (r *Registry) Describe(c Cache, scopes Scopes) (CacheView, error) {
	typ := c.Config.Type()
	ct, ok := r.Get(typ)
	if !ok {
		return CacheView{}, &UnknownCacheTypeError{
			Cache:     c.Name,
			Type:      typ,
			Available: r.Names(),
		}
	}

	summary := []SummaryLine{}
	if ct.Summary != nil {
		lines, err := ct.Summary(c.Config)
		if err != nil {
			return CacheView{}, fmt.Errorf("cache %q: invalid %s config: %w", c.Name, typ, err)
		}
		summary = lines
	}

	scope := c.Scope()
	return CacheView{
		ID:              c.ID,
		Name:            c.Name,
		Title:           c.Title,
		Description:     c.Description,
		Type:            typ,
		TypeDisplayName: ct.DisplayName,
		Summary:         summary,
		Scope:           scope,
		Editable:        scopes.IsMutable(scope),
		Deletable:       scopes.IsDeletable(scope),
	}, nil
}

// UnknownCacheTypeError is returned when a cache uses an unregistered type.
type UnknownCacheTypeError struct {
	Cache     string
	Type      string
	Available []string
}

func (e *UnknownCacheTypeError) Error() string {
	return fmt.Sprintf("cache %q has unknown cache type %q\nAvailable cache types: %v\nHint: Check config.type in the cache definition", e.Cache, e.Type, e.Available)
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// DefaultRegistry returns the sealed registry of built-in cache types.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		for _, ct := range builtinTypes() {
			if err := r.Register(ct); err != nil {
				panic(err)
			}
		}
		r.Seal()
		defaultRegistry = r
	})
	return defaultRegistry
}

func builtinTypes() []CacheType {
	return []CacheType{
		{
			Type:        TypeGuavaCache,
			DisplayName: "Node-local, in-memory cache",
			Summary:     GuavaCacheSummary,
		},
		{
			Type:        TypeNullCache,
			DisplayName: "Do not cache values",
		},
	}
}
