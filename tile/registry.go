package tile

import (
	"fmt"
	"log"
	"sort"

	"gopkg.in/yaml.v3"
)

// Registry resolves tile keys to definitions.
type Registry struct {
	defs    map[string]Definition
	missing map[string]struct{}
}

func NewRegistry(defs map[string]Definition) *Registry {
	r := &Registry{
		defs:    make(map[string]Definition, len(defs)),
		missing: make(map[string]struct{}),
	}
	for key, def := range defs {
		r.Set(key, def)
	}
	return r
}

// ParseRegistry decodes a YAML document mapping tile keys to definitions.
func ParseRegistry(data []byte) (*Registry, error) {
	var defs map[string]Definition
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("tile: unmarshal definitions: %w", err)
	}
	return NewRegistry(defs), nil
}

// Set registers or replaces a definition.
func (r *Registry) Set(key string, def Definition) {
	if def.Name == "" {
		def.Name = key
	}
	def.Dimens = def.Footprint()
	if r.defs == nil {
		r.defs = make(map[string]Definition)
	}
	r.defs[key] = def
	delete(r.missing, key)
}

// Lookup returns the definition for key. Unknown keys resolve to Fallback and
// are logged once.
func (r *Registry) Lookup(key string) Definition {
	if r != nil {
		if def, ok := r.defs[key]; ok {
			return def
		}
		if _, seen := r.missing[key]; !seen {
			if r.missing == nil {
				r.missing = make(map[string]struct{})
			}
			r.missing[key] = struct{}{}
			log.Printf("tile: missing definition %q, using fallback", key)
		}
	}
	return Fallback()
}

func (r *Registry) Has(key string) bool {
	if r == nil {
		return false
	}
	_, ok := r.defs[key]
	return ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	if r == nil {
		return nil
	}
	keys := make([]string, 0, len(r.defs))
	for key := range r.defs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
