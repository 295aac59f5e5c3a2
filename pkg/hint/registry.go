package hint

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Formatter turns one hint into display text. Returning ok=false suppresses
// the hint from output entirely; blank text is treated the same way by
// Render.
type Formatter func(Hint) (text string, ok bool)

// Registry maps hint keys to formatters and holds the fallback used for keys
// nobody registered. Prompter sessions clone a registry so per-session
// overrides never leak across sessions.
type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
	fallback   Formatter
}

// NewRegistry creates an empty registry whose fallback is DebugFormatter.
func NewRegistry() *Registry {
	return &Registry{
		formatters: make(map[string]Formatter),
		fallback:   DebugFormatter,
	}
}

// SetFormatter registers or replaces the formatter for key.
func (r *Registry) SetFormatter(key string, fn Formatter) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("hint: formatter key is required")
	}
	if fn == nil {
		return fmt.Errorf("hint: formatter for %q is required", key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.formatters[key] = fn
	return nil
}

// MustSetFormatter panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustSetFormatter(key string, fn Formatter) {
	if err := r.SetFormatter(key, fn); err != nil {
		panic(err)
	}
}

// SetFallback replaces the handler used when no formatter matches a key.
func (r *Registry) SetFallback(fn Formatter) error {
	if fn == nil {
		return fmt.Errorf("hint: fallback formatter is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.fallback = fn
	return nil
}

// Formatter retrieves the formatter registered for key.
func (r *Registry) Formatter(key string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.formatters[key]
	return fn, ok
}

// Has reports whether a formatter is registered for key.
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.formatters[key]
	return ok
}

// Keys returns the sorted list of registered formatter keys.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.formatters))
	for key := range r.formatters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Render formats hints in their original order. Each hint resolves through its
// registered formatter or the fallback; suppressed and blank results are
// dropped. The input order is preserved and duplicates are kept.
func (r *Registry) Render(hints []Hint) []string {
	if len(hints) == 0 {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(hints))
	for _, h := range hints {
		fn, ok := r.formatters[h.Key()]
		if !ok {
			fn = r.fallback
		}
		text, keep := fn(h)
		if !keep || strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, text)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Clone returns an independent copy sharing no state with the receiver.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &Registry{
		formatters: make(map[string]Formatter, len(r.formatters)),
		fallback:   r.fallback,
	}
	for key, fn := range r.formatters {
		out.formatters[key] = fn
	}
	return out
}
