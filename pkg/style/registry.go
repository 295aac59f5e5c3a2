package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// Registry holds theme manifests and answers selections over them. It
// satisfies theme.ThemeSelector so anything accepting a selector can run
// against locally registered themes.
type Registry struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*Registry)(nil)

// NewRegistry returns an empty theme registry.
func NewRegistry() *Registry {
	return &Registry{manifests: make(map[string]*theme.Manifest)}
}

// Register stores a manifest under its name. Re-registering a name is an
// error; themes are identities, not layers.
func (r *Registry) Register(m *theme.Manifest) error {
	if m == nil {
		return errors.New("style: manifest is nil")
	}
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return errors.New("style: manifest name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.manifests[name]; exists {
		return fmt.Errorf("style: theme %q already registered", name)
	}
	r.manifests[name] = m
	return nil
}

// MustRegister panics when Register fails.
func (r *Registry) MustRegister(m *theme.Manifest) {
	if err := r.Register(m); err != nil {
		panic(err)
	}
}

// Has reports whether a theme name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.manifests[name]
	return ok
}

// Names lists registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.manifests))
	for name := range r.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves a theme and optional variant into a Selection. The
// variant must exist in the manifest when named.
func (r *Registry) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	r.mu.RLock()
	manifest, ok := r.manifests[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("style: theme %q not registered", name)
	}
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("style: theme %q has no variant %q", name, variant)
		}
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}
