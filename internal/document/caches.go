package document

import (
	"fmt"

	"github.com/leapstack-labs/logviews/internal/lookup"
)

// Caches is the on-disk form of a set of lookup-table caches.
type Caches struct {
	Caches []lookup.Cache `json:"caches" yaml:"caches"`
}

// LoadCaches reads the cache definitions at path.
func LoadCaches(path string) ([]lookup.Cache, error) {
	var doc Caches
	if err := decodeFile(path, &doc); err != nil {
		return nil, err
	}

	for i, c := range doc.Caches {
		if c.Name == "" {
			return nil, fmt.Errorf("invalid cache document %s: caches[%d]: name is required", path, i)
		}
		if c.Config.Type() == "" {
			return nil, fmt.Errorf("invalid cache document %s: cache %q: config.type is required", path, c.Name)
		}
	}
	return doc.Caches, nil
}
